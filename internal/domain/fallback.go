package domain

// Hardcoded fallback content substituted whenever a public fetch comes back
// empty, so the site never renders blank. The projects page is the
// exception: it shows an empty-state message instead of fallback rows.

func FallbackServices() []Service {
	return []Service{
		{
			Title:       "تطوير مواقع الويب",
			Description: "تصميم وتطوير مواقع ويب عصرية وتفاعلية تناسب احتياجاتك الشخصية أو التجارية، مع التركيز على تجربة المستخدم وسرعة التحميل وتحسين محركات البحث.",
			Icon:        string(IconCode),
		},
		{
			Title:       "تصميم واجهات المستخدم",
			Description: "تصميم واجهات مستخدم جذابة وسهلة الاستخدام لتحسين تجربة المستخدم وزيادة معدلات التحويل، مع مراعاة أحدث اتجاهات التصميم والمعايير.",
			Icon:        string(IconPenTool),
		},
		{
			Title:       "تطوير الخلفية",
			Description: "بناء أنظمة خلفية قوية وقابلة للتوسع لدعم تطبيقات الويب والموبايل، باستخدام أحدث التقنيات وأفضل الممارسات.",
			Icon:        string(IconServer),
		},
		{
			Title:       "إدارة قواعد البيانات",
			Description: "تصميم وإدارة قواعد بيانات فعالة وآمنة لتخزين ومعالجة البيانات، مع ضمان الأداء الأمثل والنسخ الاحتياطي والاسترداد.",
			Icon:        string(IconDatabase),
		},
	}
}

func FallbackSkills() []Skill {
	return []Skill{
		{Name: "HTML/CSS", Level: 95, Category: "تطوير الواجهة الأمامية"},
		{Name: "JavaScript", Level: 90, Category: "تطوير الواجهة الأمامية"},
		{Name: "React", Level: 85, Category: "تطوير الواجهة الأمامية"},
		{Name: "Flutter", Level: 90, Category: "تطوير الواجهة الأمامية"},
		{Name: "Node.js", Level: 85, Category: "تطوير الخلفية"},
		{Name: "PHP & Laravel", Level: 90, Category: "تطوير الخلفية"},
		{Name: "Oracle", Level: 95, Category: "قواعد البيانات"},
		{Name: "MySQL", Level: 90, Category: "قواعد البيانات"},
		{Name: "Git & Github", Level: 90, Category: "أدوات وتقنيات"},
		{Name: "Figma & Adobe xd", Level: 85, Category: "أدوات وتقنيات"},
		{Name: "++C", Level: 95, Category: "لغات البرمجة"},
		{Name: "#C", Level: 95, Category: "لغات البرمجة"},
		{Name: "Python", Level: 90, Category: "لغات البرمجة"},
		{Name: "Dart", Level: 85, Category: "لغات البرمجة"},
		{Name: "TypeScript", Level: 90, Category: "لغات البرمجة"},
	}
}

func FallbackEducation() []CVSection {
	end := "2026-05-01"
	return []CVSection{
		{
			Type:         SectionEducation,
			Title:        "بكالوريوس تكنولوجيا المعلومات",
			Organization: "جامعة سبأ",
			Location:     "اليمن - صنعاء",
			StartDate:    "2022-09-01",
			EndDate:      &end,
			Description:  "دراسة متخصصة في مجال تكنولوجيا المعلومات وعلوم الحاسوب. تضمنت المناهج البرمجية، قواعد البيانات، شبكات الحاسوب، وهندسة البرمجيات.",
		},
	}
}

func FallbackExperience() []CVSection {
	end := "2022-07-31"
	return []CVSection{
		{
			Type:         SectionExperience,
			Title:        "مطور واجهات أمامية",
			Organization: "شركة تقنية المعلومات",
			Location:     "اليمن",
			StartDate:    "2022-08-01",
			EndDate:      nil, // ongoing
			Description:  "تطوير واجهات المستخدم باستخدام React.js وNext.js. العمل على مشاريع متعددة وتطبيق أفضل الممارسات في تطوير الويب.",
		},
		{
			Type:         SectionExperience,
			Title:        "مطور ويب متكامل",
			Organization: "شركة البرمجيات المتطورة",
			Location:     "اليمن",
			StartDate:    "2021-06-01",
			EndDate:      &end,
			Description:  "تطوير تطبيقات الويب باستخدام MERN Stack (MongoDB, Express.js, React.js, Node.js). تصميم وتنفيذ واجهات المستخدم وتطوير خدمات الواجهة الخلفية.",
		},
	}
}

func FallbackCertifications() []CVSection {
	fullStackEnd := "2023-03-01"
	reactEnd := "2022-08-01"
	return []CVSection{
		{
			Type:         SectionCertification,
			Title:        "Full Stack Web Development",
			Organization: "Udemy",
			Location:     "عبر الإنترنت",
			StartDate:    "2023-01-01",
			EndDate:      &fullStackEnd,
			Description:  "شهادة متخصصة في تطوير الويب المتكامل باستخدام أحدث التقنيات والأدوات.",
		},
		{
			Type:         SectionCertification,
			Title:        "React & Node.js Development",
			Organization: "Coursera",
			Location:     "عبر الإنترنت",
			StartDate:    "2022-05-01",
			EndDate:      &reactEnd,
			Description:  "شهادة متخصصة في تطوير تطبيقات الويب باستخدام React.js وNode.js.",
		},
	}
}
