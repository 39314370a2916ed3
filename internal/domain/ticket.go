package domain

import "time"

type TicketStatus string

const (
	TicketActive   TicketStatus = "active"
	TicketRedeemed TicketStatus = "redeemed"
	TicketCanceled TicketStatus = "cancelled"
)

// Ticket is one issued attendee ticket, the unit scanned at the gate.
type Ticket struct {
	ID               uint         `json:"id"`
	EventID          uint         `json:"eventId"`
	TicketCategoryID uint         `json:"ticketCategoryId"`
	TicketNumber     string       `json:"ticketNumber"`
	AttendeeName     string       `json:"attendeeName"`
	AttendeeEmail    string       `json:"attendeeEmail"`
	Status           TicketStatus `json:"ticketStatus"`
	RedeemedAt       *time.Time   `json:"redeemedAt,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// CheckinEvent is broadcast to connected dashboards when a ticket is
// redeemed at the gate.
type CheckinEvent struct {
	TicketID     uint      `json:"ticketId"`
	EventID      uint      `json:"eventId"`
	TicketNumber string    `json:"ticketNumber"`
	AttendeeName string    `json:"attendeeName"`
	RedeemedAt   time.Time `json:"redeemedAt"`
}
