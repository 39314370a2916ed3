package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// RedeemTicketRequest matches the dashboard call
// redeemTicket(id, {ticketStatus: "redeemed"}).
type RedeemTicketRequest struct {
	TicketStatus string `json:"ticketStatus"`
}

func (req *RedeemTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TicketStatus, validation.Required, validation.In("redeemed")),
	)
}
