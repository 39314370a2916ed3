package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SaveEventRequest struct {
	OrganizerID uint   `json:"organizerId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	City        string `json:"city"`
	Venue       string `json:"venue"`
	Address     string `json:"address"`
	Status      string `json:"status"`
}

func (req *SaveEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.OrganizerID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.City, validation.Required),
		validation.Field(&req.Status, validation.In(
			"", "draft", "pending", "rejected", "approved", "on_going", "done", "archived",
		)),
	)
}
