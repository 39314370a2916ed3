package repository

import (
	"context"
	"fmt"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	List(ctx context.Context, status string, limit, offset int) ([]dao.Event, int64, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	Delete(ctx context.Context, id uint) error
	InsertCopy(ctx context.Context, event dao.Event, categories []dao.TicketCategory) (dao.Event, error)
}

type EventRepository struct {
	dao         EventDAO
	categoryDAO TicketCategoryDAO
}

func NewEventRepository(dao EventDAO, categoryDAO TicketCategoryDAO) *EventRepository {
	return &EventRepository{
		dao:         dao,
		categoryDAO: categoryDAO,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Event, int64, error) {
	found, total, err := r.dao.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, total, nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

// Duplicate copies an event and its ticket categories as a fresh draft.
func (r *EventRepository) Duplicate(ctx context.Context, event domain.Event, categories []domain.TicketCategory) (domain.Event, error) {
	daoEvent := r.domainToDAO(event)
	daoEvent.ID = 0

	daoCategories := make([]dao.TicketCategory, 0, len(categories))
	for _, c := range categories {
		daoCategories = append(daoCategories, categoryDomainToDAO(c))
	}

	created, err := r.dao.InsertCopy(ctx, daoEvent, daoCategories)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.InsertCopy -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		OrganizerID: e.OrganizerID,
		Name:        e.Name,
		Description: e.Description,
		City:        e.City,
		Venue:       e.Venue,
		Address:     e.Address,
		Status:      domain.EventStatus(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *EventRepository) domainToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:          e.ID,
		OrganizerID: e.OrganizerID,
		Name:        e.Name,
		Description: e.Description,
		City:        e.City,
		Venue:       e.Venue,
		Address:     e.Address,
		Status:      string(e.Status),
	}
}
