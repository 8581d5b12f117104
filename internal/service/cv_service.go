package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/domain/dto"
	"github.com/mubarakmsm/myweb/internal/store"
)

const (
	cvSectionsTable   = "cv_sections"
	personalInfoTable = "personal_info"
)

// CVService manages cv_sections and the single personal_info row. All
// writes are user-scoped: the current session's user id is attached on
// insert and the session's access token authorizes the store call.
type CVService interface {
	// Dashboard reads, scoped to the owning user.
	ListSections(ctx context.Context, userID uuid.UUID) ([]domain.CVSection, error)
	PersonalInfo(ctx context.Context, userID uuid.UUID) (domain.PersonalInfo, error)

	// Public CV page reads, no session.
	PublicSections(ctx context.Context) ([]domain.CVSection, error)
	PublicPersonalInfo(ctx context.Context) (domain.PersonalInfo, error)

	// NewSection seeds the add form: empty fields, today's start date and
	// the session's user id.
	NewSection(sectionType string, userID uuid.UUID) (*domain.CVSection, error)

	SaveSection(ctx context.Context, accessToken string, userID uuid.UUID, req *dto.CVSectionSaveRequest) ([]domain.CVSection, error)
	RemoveSection(ctx context.Context, accessToken string, userID uuid.UUID, id uuid.UUID) ([]domain.CVSection, error)
	SavePersonalInfo(ctx context.Context, accessToken string, userID uuid.UUID, req *dto.PersonalInfoSaveRequest) (domain.PersonalInfo, error)
}

type cvService struct {
	store *store.Client
}

func NewCVService(storeClient *store.Client) CVService {
	return &cvService{store: storeClient}
}

func (s *cvService) ListSections(ctx context.Context, userID uuid.UUID) ([]domain.CVSection, error) {
	return s.listSections(ctx, store.NewQuery().Eq("user_id", userID).Order("start_date", false))
}

func (s *cvService) PublicSections(ctx context.Context) ([]domain.CVSection, error) {
	return s.listSections(ctx, store.NewQuery().Order("start_date", false))
}

func (s *cvService) listSections(ctx context.Context, query *store.QueryOptions) ([]domain.CVSection, error) {
	var sections []domain.CVSection
	if err := s.store.Query(ctx, cvSectionsTable, query, &sections); err != nil {
		return nil, fmt.Errorf("listing cv sections: %w", err)
	}
	if sections == nil {
		sections = []domain.CVSection{}
	}
	return sections, nil
}

func (s *cvService) PersonalInfo(ctx context.Context, userID uuid.UUID) (domain.PersonalInfo, error) {
	return s.personalInfo(ctx, store.NewQuery().Eq("user_id", userID), userID)
}

func (s *cvService) PublicPersonalInfo(ctx context.Context) (domain.PersonalInfo, error) {
	return s.personalInfo(ctx, store.NewQuery(), uuid.Nil)
}

// personalInfo resolves the single profile row. The no-single-row sentinel
// means "use the default profile", not failure.
func (s *cvService) personalInfo(ctx context.Context, query *store.QueryOptions, userID uuid.UUID) (domain.PersonalInfo, error) {
	var info domain.PersonalInfo
	err := s.store.QuerySingle(ctx, personalInfoTable, query, &info)
	if errors.Is(err, store.ErrNoSingleRow) {
		return domain.DefaultPersonalInfo(userID), nil
	}
	if err != nil {
		return domain.PersonalInfo{}, fmt.Errorf("fetching personal info: %w", err)
	}
	return info, nil
}

func (s *cvService) NewSection(sectionType string, userID uuid.UUID) (*domain.CVSection, error) {
	if !domain.IsValidSectionType(sectionType) {
		return nil, domain.NewValidationError("type", "unknown section type", domain.ErrInvalidField)
	}
	return domain.NewCVSection(sectionType, userID), nil
}

func (s *cvService) SaveSection(ctx context.Context, accessToken string, userID uuid.UUID, req *dto.CVSectionSaveRequest) ([]domain.CVSection, error) {
	section := req.ToSection(userID)
	section.BeforeSave()
	if err := section.Validate(); err != nil {
		return nil, err
	}

	scoped := s.store.WithToken(accessToken)
	if req.ID != nil {
		if err := scoped.Update(ctx, cvSectionsTable, req.ID.String(), req.Patch(section)); err != nil {
			return nil, fmt.Errorf("updating cv section: %w", err)
		}
	} else {
		rows := []map[string]any{dto.InsertCVSectionRow(section)}
		if err := scoped.Insert(ctx, cvSectionsTable, rows); err != nil {
			return nil, fmt.Errorf("creating cv section: %w", err)
		}
	}

	return s.ListSections(ctx, userID)
}

func (s *cvService) RemoveSection(ctx context.Context, accessToken string, userID uuid.UUID, id uuid.UUID) ([]domain.CVSection, error) {
	if err := s.store.WithToken(accessToken).Delete(ctx, cvSectionsTable, id.String()); err != nil {
		return nil, fmt.Errorf("deleting cv section: %w", err)
	}
	return s.ListSections(ctx, userID)
}

func (s *cvService) SavePersonalInfo(ctx context.Context, accessToken string, userID uuid.UUID, req *dto.PersonalInfoSaveRequest) (domain.PersonalInfo, error) {
	info := req.ToPersonalInfo(userID)
	info.BeforeSave()
	if err := info.Validate(); err != nil {
		return domain.PersonalInfo{}, err
	}

	scoped := s.store.WithToken(accessToken)
	if req.ID != nil {
		if err := scoped.Update(ctx, personalInfoTable, req.ID.String(), req.Patch(info)); err != nil {
			return domain.PersonalInfo{}, fmt.Errorf("updating personal info: %w", err)
		}
	} else {
		rows := []map[string]any{dto.InsertPersonalInfoRow(info)}
		if err := scoped.Insert(ctx, personalInfoTable, rows); err != nil {
			return domain.PersonalInfo{}, fmt.Errorf("creating personal info: %w", err)
		}
	}

	return s.PersonalInfo(ctx, userID)
}
