package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/repository"
)

var (
	ErrTicketNotFound        = repository.ErrTicketNotFound
	ErrTicketAlreadyRedeemed = errors.New("ticket has already been redeemed")
	ErrTicketNotRedeemable   = errors.New("ticket is not redeemable")
)

type TicketRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Ticket, error)
	ListByEventID(ctx context.Context, eventID uint, limit, offset int) ([]domain.Ticket, int64, error)
	Update(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
}

// AttendeeService covers the check-in side of the dashboard: listing
// issued tickets per event and redeeming them at the gate.
type AttendeeService struct {
	repo      TicketRepository
	eventRepo EventRepository
}

func NewAttendeeService(repo TicketRepository, eventRepo EventRepository) *AttendeeService {
	return &AttendeeService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *AttendeeService) ListByEvent(ctx context.Context, eventID uint, limit, offset int) ([]domain.Ticket, int64, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, 0, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	tickets, total, err := s.repo.ListByEventID(ctx, eventID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.ListByEventID -> %w", err)
	}

	return tickets, total, nil
}

// Redeem marks an active ticket as redeemed. Redemption happens at most
// once; a second scan reports ErrTicketAlreadyRedeemed.
func (s *AttendeeService) Redeem(ctx context.Context, ticketID uint) (domain.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	switch ticket.Status {
	case domain.TicketRedeemed:
		return domain.Ticket{}, ErrTicketAlreadyRedeemed
	case domain.TicketActive:
	default:
		return domain.Ticket{}, ErrTicketNotRedeemable
	}

	now := time.Now()
	ticket.Status = domain.TicketRedeemed
	ticket.RedeemedAt = &now

	updated, err := s.repo.Update(ctx, ticket)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
