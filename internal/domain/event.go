package domain

import (
	"strings"
	"time"
)

type EventStatus string

const (
	EventDraft    EventStatus = "draft"
	EventPending  EventStatus = "pending"
	EventRejected EventStatus = "rejected"
	EventApproved EventStatus = "approved"
	EventOnGoing  EventStatus = "on_going"
	EventDone     EventStatus = "done"
	EventArchived EventStatus = "archived"
)

type Event struct {
	ID          uint        `json:"id"`
	OrganizerID uint        `json:"organizerId"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	City        string      `json:"city"`
	Venue       string      `json:"venue"`
	Address     string      `json:"address"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// StatusDisplay maps a raw status onto the badge label the dashboard
// renders. Matching is case-insensitive and anything unrecognized falls
// back to Draft.
func StatusDisplay(status string) string {
	switch strings.ToLower(status) {
	case "approved", "on_going", "ongoing":
		return "Ongoing"
	case "pending":
		return "Pending"
	case "rejected":
		return "Rejected"
	case "done":
		return "Done"
	case "archived":
		return "Archived"
	default:
		return "Draft"
	}
}
