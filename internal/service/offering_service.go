package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/domain/dto"
	"github.com/mubarakmsm/myweb/internal/store"
)

const servicesTable = "services"

// OfferingService manages the services table (the offerings marketed on the
// public services page). Same fetch/save/remove shape as the other entity
// managers.
type OfferingService interface {
	List(ctx context.Context) ([]domain.Service, error)
	Save(ctx context.Context, req *dto.ServiceSaveRequest) ([]domain.Service, error)
	Remove(ctx context.Context, id uuid.UUID) ([]domain.Service, error)
	IconNames() []string
}

type offeringService struct {
	store *store.Client
}

func NewOfferingService(storeClient *store.Client) OfferingService {
	return &offeringService{store: storeClient}
}

func (s *offeringService) List(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	query := store.NewQuery().Order("created_at", false)
	if err := s.store.Query(ctx, servicesTable, query, &services); err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}
	if services == nil {
		services = []domain.Service{}
	}
	return services, nil
}

func (s *offeringService) Save(ctx context.Context, req *dto.ServiceSaveRequest) ([]domain.Service, error) {
	offering := req.ToService()
	offering.BeforeSave()
	if err := offering.Validate(); err != nil {
		return nil, err
	}

	if req.ID != nil {
		if err := s.store.Update(ctx, servicesTable, req.ID.String(), req.Patch(offering)); err != nil {
			return nil, fmt.Errorf("updating service: %w", err)
		}
	} else {
		rows := []map[string]any{dto.InsertServiceRow(offering)}
		if err := s.store.Insert(ctx, servicesTable, rows); err != nil {
			return nil, fmt.Errorf("creating service: %w", err)
		}
	}

	return s.List(ctx)
}

func (s *offeringService) Remove(ctx context.Context, id uuid.UUID) ([]domain.Service, error) {
	if err := s.store.Delete(ctx, servicesTable, id.String()); err != nil {
		return nil, fmt.Errorf("deleting service: %w", err)
	}
	return s.List(ctx)
}

func (s *offeringService) IconNames() []string {
	return domain.ServiceIconNames()
}
