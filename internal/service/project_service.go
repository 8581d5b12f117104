package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/domain/dto"
	"github.com/mubarakmsm/myweb/internal/store"
)

const projectsTable = "projects"

// ProjectService is the projects entity manager: one listing query ordered
// by creation time descending, and save/remove that re-fetch the full list
// after every successful mutation so the view always reflects store truth.
type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Save(ctx context.Context, req *dto.ProjectSaveRequest) ([]domain.Project, error)
	Remove(ctx context.Context, id uuid.UUID) ([]domain.Project, error)
}

type projectService struct {
	store *store.Client
}

func NewProjectService(storeClient *store.Client) ProjectService {
	return &projectService{store: storeClient}
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	query := store.NewQuery().Order("created_at", false)
	if err := s.store.Query(ctx, projectsTable, query, &projects); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

func (s *projectService) Save(ctx context.Context, req *dto.ProjectSaveRequest) ([]domain.Project, error) {
	project := req.ToProject()
	project.BeforeSave()
	if err := project.Validate(); err != nil {
		return nil, err
	}

	if req.ID != nil {
		if err := s.store.Update(ctx, projectsTable, req.ID.String(), req.Patch(project)); err != nil {
			return nil, fmt.Errorf("updating project: %w", err)
		}
	} else {
		rows := []map[string]any{dto.InsertProjectRow(project)}
		if err := s.store.Insert(ctx, projectsTable, rows); err != nil {
			return nil, fmt.Errorf("creating project: %w", err)
		}
	}

	return s.List(ctx)
}

func (s *projectService) Remove(ctx context.Context, id uuid.UUID) ([]domain.Project, error) {
	if err := s.store.Delete(ctx, projectsTable, id.String()); err != nil {
		return nil, fmt.Errorf("deleting project: %w", err)
	}
	return s.List(ctx)
}
