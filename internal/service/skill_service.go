package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/domain/dto"
	"github.com/mubarakmsm/myweb/internal/store"
)

const skillsTable = "skills"

// SkillService manages the skills table. Listing orders by category then
// level descending, the order the public page renders in.
type SkillService interface {
	List(ctx context.Context) ([]domain.Skill, error)
	Save(ctx context.Context, req *dto.SkillSaveRequest) ([]domain.Skill, error)
	Remove(ctx context.Context, id uuid.UUID) ([]domain.Skill, error)
}

type skillService struct {
	store *store.Client
}

func NewSkillService(storeClient *store.Client) SkillService {
	return &skillService{store: storeClient}
}

func (s *skillService) List(ctx context.Context) ([]domain.Skill, error) {
	var skills []domain.Skill
	query := store.NewQuery().Order("category", true).Order("level", false)
	if err := s.store.Query(ctx, skillsTable, query, &skills); err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	if skills == nil {
		skills = []domain.Skill{}
	}
	return skills, nil
}

func (s *skillService) Save(ctx context.Context, req *dto.SkillSaveRequest) ([]domain.Skill, error) {
	skill := req.ToSkill()
	skill.BeforeSave()
	if err := skill.Validate(); err != nil {
		return nil, err
	}

	if req.ID != nil {
		if err := s.store.Update(ctx, skillsTable, req.ID.String(), req.Patch(skill)); err != nil {
			return nil, fmt.Errorf("updating skill: %w", err)
		}
	} else {
		rows := []map[string]any{dto.InsertSkillRow(skill)}
		if err := s.store.Insert(ctx, skillsTable, rows); err != nil {
			return nil, fmt.Errorf("creating skill: %w", err)
		}
	}

	return s.List(ctx)
}

func (s *skillService) Remove(ctx context.Context, id uuid.UUID) ([]domain.Skill, error) {
	if err := s.store.Delete(ctx, skillsTable, id.String()); err != nil {
		return nil, fmt.Errorf("deleting skill: %w", err)
	}
	return s.List(ctx)
}
