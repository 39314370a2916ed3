package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
)

type stubTicketRepo struct {
	tickets map[uint]domain.Ticket
}

func (r *stubTicketRepo) FindByID(_ context.Context, id uint) (domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return domain.Ticket{}, ErrTicketNotFound
	}
	return ticket, nil
}

func (r *stubTicketRepo) ListByEventID(_ context.Context, eventID uint, limit, offset int) ([]domain.Ticket, int64, error) {
	var out []domain.Ticket
	for _, t := range r.tickets {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubTicketRepo) Update(_ context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	r.tickets[ticket.ID] = ticket
	return ticket, nil
}

func newAttendeeFixture(status domain.TicketStatus) (*stubTicketRepo, *stubEventRepo) {
	ticketRepo := &stubTicketRepo{
		tickets: map[uint]domain.Ticket{
			1: {
				ID:           1,
				EventID:      7,
				TicketNumber: "WK-0001",
				AttendeeName: "Sun Wukong",
				Status:       status,
			},
		},
	}

	eventRepo := &stubEventRepo{
		events: map[uint]domain.Event{
			7: {ID: 7, Name: "Wukong Fest", Status: domain.EventOnGoing},
		},
	}

	return ticketRepo, eventRepo
}

func TestAttendeeServiceRedeem(t *testing.T) {
	ticketRepo, eventRepo := newAttendeeFixture(domain.TicketActive)
	svc := NewAttendeeService(ticketRepo, eventRepo)

	before := time.Now()
	ticket, err := svc.Redeem(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.TicketRedeemed, ticket.Status)
	require.NotNil(t, ticket.RedeemedAt)
	assert.False(t, ticket.RedeemedAt.Before(before))
}

func TestAttendeeServiceRedeemTwiceConflicts(t *testing.T) {
	ticketRepo, eventRepo := newAttendeeFixture(domain.TicketActive)
	svc := NewAttendeeService(ticketRepo, eventRepo)

	_, err := svc.Redeem(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.Redeem(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTicketAlreadyRedeemed)
}

func TestAttendeeServiceRedeemCancelledTicket(t *testing.T) {
	ticketRepo, eventRepo := newAttendeeFixture(domain.TicketCanceled)
	svc := NewAttendeeService(ticketRepo, eventRepo)

	_, err := svc.Redeem(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTicketNotRedeemable)
}

func TestAttendeeServiceRedeemUnknownTicket(t *testing.T) {
	ticketRepo, eventRepo := newAttendeeFixture(domain.TicketActive)
	svc := NewAttendeeService(ticketRepo, eventRepo)

	_, err := svc.Redeem(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestAttendeeServiceListByEvent(t *testing.T) {
	ticketRepo, eventRepo := newAttendeeFixture(domain.TicketActive)
	svc := NewAttendeeService(ticketRepo, eventRepo)

	tickets, total, err := svc.ListByEvent(context.Background(), 7, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, tickets, 1)
}

func TestAttendeeServiceListByEventUnknownEvent(t *testing.T) {
	ticketRepo, eventRepo := newAttendeeFixture(domain.TicketActive)
	svc := NewAttendeeService(ticketRepo, eventRepo)

	_, _, err := svc.ListByEvent(context.Background(), 99, 10, 0)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
