package service

import (
	"context"
	"fmt"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/repository"
)

var ErrEventNotFound = repository.ErrEventNotFound

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Event, int64, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
	Duplicate(ctx context.Context, event domain.Event, categories []domain.TicketCategory) (domain.Event, error)
}

type EventService struct {
	repo         EventRepository
	categoryRepo TicketCategoryRepository
}

func NewEventService(repo EventRepository, categoryRepo TicketCategoryRepository) *EventService {
	return &EventService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

func (s *EventService) List(ctx context.Context, status string, limit, offset int) ([]domain.Event, int64, error) {
	events, total, err := s.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.List -> %w", err)
	}

	return events, total, nil
}

func (s *EventService) Get(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.Status == "" {
		event.Status = domain.EventDraft
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	existing, err := s.repo.FindByID(ctx, event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	existing.Name = event.Name
	existing.Description = event.Description
	existing.City = event.City
	existing.Venue = event.Venue
	existing.Address = event.Address
	if event.Status != "" {
		existing.Status = event.Status
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Duplicate copies an event and its ticket categories into a fresh
// draft. Copied categories restart moderation from pending with any
// rejection record cleared.
func (s *EventService) Duplicate(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	categories, err := s.categoryRepo.FindByEventID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.categoryRepo.FindByEventID -> %w", err)
	}

	copied := event
	copied.ID = 0
	copied.Name = event.Name + " (Copy)"
	copied.Status = domain.EventDraft

	for i := range categories {
		categories[i].Status = domain.TicketCategoryPending
		categories[i].RejectedFields = nil
		categories[i].RejectedReason = ""
		categories[i].OriginalSalesStartDate = ""
		categories[i].OriginalSalesEndDate = ""
		categories[i].OriginalTicketStartDate = ""
		categories[i].OriginalTicketEndDate = ""
	}

	created, err := s.repo.Duplicate(ctx, copied, categories)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Duplicate -> %w", err)
	}

	return created, nil
}
