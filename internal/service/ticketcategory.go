package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/repository"
)

var (
	ErrTicketCategoryNotFound  = repository.ErrTicketCategoryNotFound
	ErrRejectedFieldsUnchanged = domain.ErrRejectedFieldsUnchanged
	ErrTicketCategoryLocked    = errors.New("ticket category can no longer be edited")
)

type TicketCategoryRepository interface {
	Create(ctx context.Context, category domain.TicketCategory) (domain.TicketCategory, error)
	FindByID(ctx context.Context, id uint) (domain.TicketCategory, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.TicketCategory, error)
	Update(ctx context.Context, category domain.TicketCategory) (domain.TicketCategory, error)
	Delete(ctx context.Context, id uint) error
}

type TicketCategoryService struct {
	repo      TicketCategoryRepository
	eventRepo EventRepository
}

func NewTicketCategoryService(repo TicketCategoryRepository, eventRepo EventRepository) *TicketCategoryService {
	return &TicketCategoryService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *TicketCategoryService) ListByEvent(ctx context.Context, eventID uint) ([]domain.TicketCategory, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	categories, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return categories, nil
}

func (s *TicketCategoryService) Create(ctx context.Context, eventID uint, sub domain.TicketCategorySubmission) (domain.TicketCategory, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return domain.TicketCategory{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	category := domain.TicketCategory{EventID: eventID}
	if err := category.Apply(sub); err != nil {
		return domain.TicketCategory{}, fmt.Errorf("category.Apply -> %w", err)
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return domain.TicketCategory{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update saves an edited category. A category that moderation rejected
// must pass the rejected-fields gate first; an approved category of a
// live event is locked entirely.
func (s *TicketCategoryService) Update(ctx context.Context, id uint, sub domain.TicketCategorySubmission) (domain.TicketCategory, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.TicketCategory{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	event, err := s.eventRepo.FindByID(ctx, category.EventID)
	if err != nil {
		return domain.TicketCategory{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	if category.Locked(event.Status) {
		return domain.TicketCategory{}, ErrTicketCategoryLocked
	}

	if err = category.ReviewResubmission(event.Status, sub); err != nil {
		return domain.TicketCategory{}, err
	}

	if err = category.Apply(sub); err != nil {
		return domain.TicketCategory{}, fmt.Errorf("category.Apply -> %w", err)
	}

	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		return domain.TicketCategory{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *TicketCategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	event, err := s.eventRepo.FindByID(ctx, category.EventID)
	if err != nil {
		return fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	if category.Locked(event.Status) {
		return ErrTicketCategoryLocked
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
