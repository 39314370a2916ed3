package service

import (
	"context"
	"fmt"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/repository"
)

var (
	ErrOrganizerEmailExists = repository.ErrOrganizerEmailExists
	ErrOrganizerNotFound    = repository.ErrOrganizerNotFound
)

type OrganizerRepository interface {
	Create(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error)
	FindByID(ctx context.Context, id uint) (domain.Organizer, error)
	List(ctx context.Context, limit, offset int) ([]domain.Organizer, int64, error)
	Update(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error)
	Delete(ctx context.Context, id uint) error
}

type OrganizerService struct {
	repo OrganizerRepository
}

func NewOrganizerService(repo OrganizerRepository) *OrganizerService {
	return &OrganizerService{
		repo: repo,
	}
}

func (s *OrganizerService) List(ctx context.Context, limit, offset int) ([]domain.Organizer, int64, error) {
	organizers, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.List -> %w", err)
	}

	return organizers, total, nil
}

func (s *OrganizerService) Get(ctx context.Context, id uint) (domain.Organizer, error) {
	organizer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return organizer, nil
}

func (s *OrganizerService) Create(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	if organizer.Status == "" {
		organizer.Status = "active"
	}

	created, err := s.repo.Create(ctx, organizer)
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *OrganizerService) Update(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	existing, err := s.repo.FindByID(ctx, organizer.ID)
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	existing.Name = organizer.Name
	existing.Email = organizer.Email
	existing.PhoneNumber = organizer.PhoneNumber
	if organizer.LogoAssetID != nil {
		existing.LogoAssetID = organizer.LogoAssetID
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *OrganizerService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
