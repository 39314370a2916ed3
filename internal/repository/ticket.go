package repository

import (
	"context"
	"fmt"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/repository/dao"
)

var ErrTicketNotFound = dao.ErrTicketNotFound

type TicketDAO interface {
	Insert(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	FindByID(ctx context.Context, id uint) (dao.Ticket, error)
	ListByEventID(ctx context.Context, eventID uint, limit, offset int) ([]dao.Ticket, int64, error)
	Update(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (domain.Ticket, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TicketRepository) ListByEventID(ctx context.Context, eventID uint, limit, offset int) ([]domain.Ticket, int64, error) {
	found, total, err := r.dao.ListByEventID(ctx, eventID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.ListByEventID -> %w", err)
	}

	tickets := make([]domain.Ticket, 0, len(found))
	for _, t := range found {
		tickets = append(tickets, r.daoToDomain(t))
	}

	return tickets, total, nil
}

func (r *TicketRepository) Update(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	updated, err := r.dao.Update(ctx, dao.Ticket{
		ID:               ticket.ID,
		EventID:          ticket.EventID,
		TicketCategoryID: ticket.TicketCategoryID,
		TicketNumber:     ticket.TicketNumber,
		AttendeeName:     ticket.AttendeeName,
		AttendeeEmail:    ticket.AttendeeEmail,
		Status:           string(ticket.Status),
		RedeemedAt:       ticket.RedeemedAt,
	})
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TicketRepository) daoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:               t.ID,
		EventID:          t.EventID,
		TicketCategoryID: t.TicketCategoryID,
		TicketNumber:     t.TicketNumber,
		AttendeeName:     t.AttendeeName,
		AttendeeEmail:    t.AttendeeEmail,
		Status:           domain.TicketStatus(t.Status),
		RedeemedAt:       t.RedeemedAt,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
