package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
)

type recordingEventRepo struct {
	stubEventRepo
	duplicatedEvent      domain.Event
	duplicatedCategories []domain.TicketCategory
}

func (r *recordingEventRepo) Duplicate(ctx context.Context, event domain.Event, categories []domain.TicketCategory) (domain.Event, error) {
	r.duplicatedEvent = event
	r.duplicatedCategories = categories
	return r.stubEventRepo.Duplicate(ctx, event, categories)
}

func TestEventServiceDuplicate(t *testing.T) {
	eventRepo := &recordingEventRepo{
		stubEventRepo: stubEventRepo{
			events: map[uint]domain.Event{
				7: {ID: 7, Name: "Wukong Fest", City: "Jakarta", Status: domain.EventApproved},
			},
		},
	}

	categoryRepo := &stubCategoryRepo{
		categories: map[uint]domain.TicketCategory{
			1: {
				ID:                     1,
				EventID:                7,
				Name:                   "Early Bird",
				Status:                 domain.TicketCategoryRejected,
				RejectedFields:         []string{domain.FieldName},
				RejectedReason:         "naming clash",
				OriginalSalesStartDate: "2024-01-15T14:30:00+07:00",
			},
		},
	}

	svc := NewEventService(eventRepo, categoryRepo)

	copied, err := svc.Duplicate(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Wukong Fest (Copy)", copied.Name)
	assert.Equal(t, domain.EventDraft, copied.Status)
	assert.Equal(t, "Jakarta", eventRepo.duplicatedEvent.City)
	assert.Zero(t, eventRepo.duplicatedEvent.ID)

	require.Len(t, eventRepo.duplicatedCategories, 1)
	cat := eventRepo.duplicatedCategories[0]
	assert.Equal(t, domain.TicketCategoryPending, cat.Status)
	assert.Nil(t, cat.RejectedFields)
	assert.Empty(t, cat.RejectedReason)
	assert.Empty(t, cat.OriginalSalesStartDate)
}

func TestEventServiceDuplicateUnknownEvent(t *testing.T) {
	eventRepo := &recordingEventRepo{stubEventRepo: stubEventRepo{events: map[uint]domain.Event{}}}
	categoryRepo := &stubCategoryRepo{categories: map[uint]domain.TicketCategory{}}

	svc := NewEventService(eventRepo, categoryRepo)

	_, err := svc.Duplicate(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventServiceCreateDefaultsToDraft(t *testing.T) {
	eventRepo := &recordingEventRepo{stubEventRepo: stubEventRepo{events: map[uint]domain.Event{}}}
	categoryRepo := &stubCategoryRepo{categories: map[uint]domain.TicketCategory{}}

	svc := NewEventService(eventRepo, categoryRepo)

	created, err := svc.Create(context.Background(), domain.Event{Name: "New Event"})
	require.NoError(t, err)
	assert.Equal(t, domain.EventDraft, created.Status)
}

func TestEventServiceUpdatePreservesStatusWhenOmitted(t *testing.T) {
	eventRepo := &recordingEventRepo{
		stubEventRepo: stubEventRepo{
			events: map[uint]domain.Event{
				7: {ID: 7, Name: "Wukong Fest", Status: domain.EventOnGoing},
			},
		},
	}
	categoryRepo := &stubCategoryRepo{categories: map[uint]domain.TicketCategory{}}

	svc := NewEventService(eventRepo, categoryRepo)

	updated, err := svc.Update(context.Background(), domain.Event{ID: 7, Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, domain.EventOnGoing, updated.Status)
}
