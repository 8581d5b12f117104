package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/domain/dto"
)

var errStoreDown = errors.New("store unreachable")

// In-memory service fakes for handler tests. Each serves a fixed list and
// can be switched into a failing mode.
type fakeProjects struct {
	list []domain.Project
	fail bool
}

func (f *fakeProjects) List(context.Context) ([]domain.Project, error) {
	if f.fail {
		return nil, errStoreDown
	}
	return f.list, nil
}

func (f *fakeProjects) Save(_ context.Context, req *dto.ProjectSaveRequest) ([]domain.Project, error) {
	if f.fail {
		return nil, errStoreDown
	}
	project := req.ToProject()
	project.BeforeSave()
	if err := project.Validate(); err != nil {
		return nil, err
	}
	project.ID = uuid.New()
	f.list = append(f.list, *project)
	return f.list, nil
}

func (f *fakeProjects) Remove(_ context.Context, id uuid.UUID) ([]domain.Project, error) {
	if f.fail {
		return nil, errStoreDown
	}
	kept := f.list[:0]
	for _, p := range f.list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.list = kept
	return f.list, nil
}

type fakeOfferings struct {
	list []domain.Service
	fail bool
}

func (f *fakeOfferings) List(context.Context) ([]domain.Service, error) {
	if f.fail {
		return nil, errStoreDown
	}
	return f.list, nil
}

func (f *fakeOfferings) Save(_ context.Context, req *dto.ServiceSaveRequest) ([]domain.Service, error) {
	if f.fail {
		return nil, errStoreDown
	}
	offering := req.ToService()
	offering.BeforeSave()
	if err := offering.Validate(); err != nil {
		return nil, err
	}
	offering.ID = uuid.New()
	f.list = append(f.list, *offering)
	return f.list, nil
}

func (f *fakeOfferings) Remove(_ context.Context, id uuid.UUID) ([]domain.Service, error) {
	if f.fail {
		return nil, errStoreDown
	}
	kept := f.list[:0]
	for _, s := range f.list {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	f.list = kept
	return f.list, nil
}

func (f *fakeOfferings) IconNames() []string {
	return domain.ServiceIconNames()
}

type fakeSkills struct {
	list []domain.Skill
	fail bool
}

func (f *fakeSkills) List(context.Context) ([]domain.Skill, error) {
	if f.fail {
		return nil, errStoreDown
	}
	return f.list, nil
}

func (f *fakeSkills) Save(_ context.Context, req *dto.SkillSaveRequest) ([]domain.Skill, error) {
	if f.fail {
		return nil, errStoreDown
	}
	skill := req.ToSkill()
	skill.BeforeSave()
	if err := skill.Validate(); err != nil {
		return nil, err
	}
	skill.ID = uuid.New()
	f.list = append(f.list, *skill)
	return f.list, nil
}

func (f *fakeSkills) Remove(_ context.Context, id uuid.UUID) ([]domain.Skill, error) {
	if f.fail {
		return nil, errStoreDown
	}
	kept := f.list[:0]
	for _, s := range f.list {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	f.list = kept
	return f.list, nil
}

type fakeCV struct {
	sections []domain.CVSection
	info     *domain.PersonalInfo
	fail     bool
}

func (f *fakeCV) ListSections(_ context.Context, userID uuid.UUID) ([]domain.CVSection, error) {
	if f.fail {
		return nil, errStoreDown
	}
	return f.sections, nil
}

func (f *fakeCV) PublicSections(context.Context) ([]domain.CVSection, error) {
	if f.fail {
		return nil, errStoreDown
	}
	return f.sections, nil
}

func (f *fakeCV) PersonalInfo(_ context.Context, userID uuid.UUID) (domain.PersonalInfo, error) {
	if f.fail {
		return domain.PersonalInfo{}, errStoreDown
	}
	if f.info == nil {
		return domain.DefaultPersonalInfo(userID), nil
	}
	return *f.info, nil
}

func (f *fakeCV) PublicPersonalInfo(ctx context.Context) (domain.PersonalInfo, error) {
	return f.PersonalInfo(ctx, uuid.Nil)
}

func (f *fakeCV) NewSection(sectionType string, userID uuid.UUID) (*domain.CVSection, error) {
	if !domain.IsValidSectionType(sectionType) {
		return nil, domain.NewValidationError("type", "unknown section type", domain.ErrInvalidField)
	}
	return domain.NewCVSection(sectionType, userID), nil
}

func (f *fakeCV) SaveSection(_ context.Context, accessToken string, userID uuid.UUID, req *dto.CVSectionSaveRequest) ([]domain.CVSection, error) {
	if f.fail {
		return nil, errStoreDown
	}
	section := req.ToSection(userID)
	section.BeforeSave()
	if err := section.Validate(); err != nil {
		return nil, err
	}
	section.ID = uuid.New()
	f.sections = append(f.sections, *section)
	return f.sections, nil
}

func (f *fakeCV) RemoveSection(_ context.Context, accessToken string, userID uuid.UUID, id uuid.UUID) ([]domain.CVSection, error) {
	if f.fail {
		return nil, errStoreDown
	}
	kept := f.sections[:0]
	for _, s := range f.sections {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	f.sections = kept
	return f.sections, nil
}

func (f *fakeCV) SavePersonalInfo(_ context.Context, accessToken string, userID uuid.UUID, req *dto.PersonalInfoSaveRequest) (domain.PersonalInfo, error) {
	if f.fail {
		return domain.PersonalInfo{}, errStoreDown
	}
	info := req.ToPersonalInfo(userID)
	info.BeforeSave()
	if err := info.Validate(); err != nil {
		return domain.PersonalInfo{}, err
	}
	info.ID = uuid.New()
	f.info = info
	return *info, nil
}
