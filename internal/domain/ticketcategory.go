package domain

import (
	"errors"
	"strconv"
	"time"

	"github.com/Liku-id/wukong-admin-api/internal/pkg/datewindow"
)

type TicketCategoryStatus string

const (
	TicketCategoryPending  TicketCategoryStatus = "pending"
	TicketCategoryApproved TicketCategoryStatus = "approved"
	TicketCategoryRejected TicketCategoryStatus = "rejected"
)

// Field identifiers used by moderation when rejecting a submission.
// The mixed naming is the review service's wire vocabulary and must
// match it verbatim.
const (
	FieldName             = "name"
	FieldDescription      = "description"
	FieldPrice            = "price"
	FieldQuantity         = "quantity"
	FieldMaxOrderQuantity = "max_order_quantity"
	FieldSalesStartDate   = "sales_start_date"
	FieldSalesEndDate     = "sales_end_date"
	FieldTicketStartDate  = "ticketStartDate"
	FieldTicketEndDate    = "ticketEndDate"
)

// ErrRejectedFieldsUnchanged carries the exact message the dashboard
// shows when a rejected category is resubmitted without changes.
var ErrRejectedFieldsUnchanged = errors.New("Please fix all rejected fields before saving. Rejected fields must be changed.")

// TicketCategory is a configurable class of ticket sold under an event.
// Price is in the smallest currency unit. The Original* fields hold the
// canonical timestamps of the last moderated submission and are owned
// by the review service; the client only reads them.
type TicketCategory struct {
	ID               uint                 `json:"id"`
	EventID          uint                 `json:"eventId"`
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	ColorHex         string               `json:"colorHex"`
	Price            int64                `json:"price"`
	Quantity         int                  `json:"quantity"`
	MaxOrderQuantity int                  `json:"maxOrderQuantity"`
	IsGroup          bool                 `json:"isGroup"`
	GroupSize        int                  `json:"groupSize,omitempty"`
	SalesStartDate   datewindow.Value     `json:"salesStartDate"`
	SalesEndDate     datewindow.Value     `json:"salesEndDate"`
	TicketStartDate  datewindow.Value     `json:"ticketStartDate"`
	TicketEndDate    datewindow.Value     `json:"ticketEndDate"`
	Status           TicketCategoryStatus `json:"status"`
	RejectedFields   []string             `json:"rejectedFields,omitempty"`
	RejectedReason   string               `json:"rejectedReason,omitempty"`

	OriginalSalesStartDate  string `json:"originalSalesStartDate,omitempty"`
	OriginalSalesEndDate    string `json:"originalSalesEndDate,omitempty"`
	OriginalTicketStartDate string `json:"originalTicketStartDate,omitempty"`
	OriginalTicketEndDate   string `json:"originalTicketEndDate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketCategorySubmission holds the raw values of one save attempt.
// Numeric fields stay strings here because that is what the form
// submits; they are digits-validated before they reach the domain.
type TicketCategorySubmission struct {
	Name             string
	Description      string
	ColorHex         string
	Price            string
	Quantity         string
	MaxOrderQuantity string
	IsGroup          bool
	GroupSize        int
	SalesStartDate   datewindow.Value
	SalesEndDate     datewindow.Value
	TicketStartDate  datewindow.Value
	TicketEndDate    datewindow.Value
}

// NeedsResubmissionReview reports whether a save of this category must
// pass the rejected-fields gate. The gate only arms while the owning
// event is still editable by its organizer.
func (tc TicketCategory) NeedsResubmissionReview(eventStatus EventStatus) bool {
	switch eventStatus {
	case EventRejected, EventDraft, EventOnGoing:
	default:
		return false
	}

	return tc.Status == TicketCategoryRejected && len(tc.RejectedFields) > 0
}

// ReviewResubmission blocks a resubmission unless at least one
// previously-rejected field materially changed. It returns
// ErrRejectedFieldsUnchanged when every rejected field is identical to
// the value moderation already saw, and nil when the save may proceed.
func (tc TicketCategory) ReviewResubmission(eventStatus EventStatus, sub TicketCategorySubmission) error {
	if !tc.NeedsResubmissionReview(eventStatus) {
		return nil
	}

	for _, field := range tc.RejectedFields {
		if tc.fieldChanged(field, sub) {
			return nil
		}
	}

	return ErrRejectedFieldsUnchanged
}

func (tc TicketCategory) fieldChanged(field string, sub TicketCategorySubmission) bool {
	switch field {
	case FieldName:
		return sub.Name != tc.Name
	case FieldDescription:
		return sub.Description != tc.Description
	case FieldPrice:
		return numberChanged(sub.Price, tc.Price)
	case FieldQuantity:
		return numberChanged(sub.Quantity, int64(tc.Quantity))
	case FieldMaxOrderQuantity:
		return numberChanged(sub.MaxOrderQuantity, int64(tc.MaxOrderQuantity))
	case FieldSalesStartDate:
		return dateChanged(sub.SalesStartDate, tc.SalesStartDate, tc.OriginalSalesStartDate)
	case FieldSalesEndDate:
		return dateChanged(sub.SalesEndDate, tc.SalesEndDate, tc.OriginalSalesEndDate)
	case FieldTicketStartDate:
		return dateChanged(sub.TicketStartDate, tc.TicketStartDate, tc.OriginalTicketStartDate)
	case FieldTicketEndDate:
		return dateChanged(sub.TicketEndDate, tc.TicketEndDate, tc.OriginalTicketEndDate)
	}

	// Unknown identifiers never satisfy the gate.
	return false
}

func numberChanged(submitted string, original int64) bool {
	n, err := strconv.ParseInt(submitted, 10, 64)
	if err != nil {
		// A value that no longer parses is not the value moderation saw.
		return true
	}

	return n != original
}

// dateChanged compares the submitted window edge against the one
// moderation reviewed. The submitted side prefers the raw picker parts
// over the display string; the original side prefers the stored
// canonical timestamp over the display string. Unresolvable values
// count as changed.
func dateChanged(submitted, display datewindow.Value, originalCanonical string) bool {
	subT, err := submitted.Canonical(datewindow.DefaultOffset)
	if err != nil {
		return true
	}

	var origT time.Time
	if originalCanonical != "" {
		origT, err = datewindow.ParseCanonical(originalCanonical)
	} else {
		origT, err = datewindow.ParseDisplay(display.Display, datewindow.DefaultOffset)
	}
	if err != nil {
		return true
	}

	return !subT.Equal(origT)
}

// Apply writes the submitted values onto the category and resets the
// moderation state: a successful resubmission goes back to pending with
// its rejection record cleared.
func (tc *TicketCategory) Apply(sub TicketCategorySubmission) error {
	price, err := strconv.ParseInt(sub.Price, 10, 64)
	if err != nil {
		return err
	}
	quantity, err := strconv.Atoi(sub.Quantity)
	if err != nil {
		return err
	}
	maxOrder, err := strconv.Atoi(sub.MaxOrderQuantity)
	if err != nil {
		return err
	}

	tc.Name = sub.Name
	tc.Description = sub.Description
	tc.ColorHex = sub.ColorHex
	tc.Price = price
	tc.Quantity = quantity
	tc.MaxOrderQuantity = maxOrder
	tc.IsGroup = sub.IsGroup
	tc.GroupSize = sub.GroupSize
	tc.SalesStartDate = sub.SalesStartDate
	tc.SalesEndDate = sub.SalesEndDate
	tc.TicketStartDate = sub.TicketStartDate
	tc.TicketEndDate = sub.TicketEndDate

	tc.Status = TicketCategoryPending
	tc.RejectedFields = nil
	tc.RejectedReason = ""

	return nil
}

// Locked reports whether edit/delete is withheld: once the owning event
// is live and the category itself is approved, the row actions
// disappear on the dashboard.
func (tc TicketCategory) Locked(eventStatus EventStatus) bool {
	switch eventStatus {
	case EventOnGoing, EventApproved:
		return tc.Status == TicketCategoryApproved
	}

	return false
}
