package banners

import (
	"context"
	"fmt"
	"strings"

	"github.com/bannerhub/bannerhub/internal/shared"
)

// Service exposes banner upsert and lookup.
type Service struct {
	repo Repository
}

// NewService builds Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert creates the banner when absent, otherwise replaces all of its fields.
func (s *Service) Upsert(ctx context.Context, banner Banner) (UpsertResult, error) {
	if err := validate(banner); err != nil {
		return UpsertResult{}, err
	}
	created, err := s.repo.Upsert(ctx, banner)
	if err != nil {
		return UpsertResult{}, err
	}
	status := StatusUpdated
	if created {
		status = StatusCreated
	}
	return UpsertResult{ID: banner.ID, Status: status}, nil
}

// Get returns the public view of the banner with the given id.
func (s *Service) Get(ctx context.Context, id string) (View, error) {
	if strings.TrimSpace(id) == "" {
		return View{}, fmt.Errorf("%w: banner id is required", shared.ErrValidation)
	}
	banner, err := s.repo.Get(ctx, id)
	if err != nil {
		return View{}, err
	}
	return banner.view(), nil
}
