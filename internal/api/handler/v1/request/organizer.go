package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var phoneExp = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

type SaveOrganizerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	LogoAssetID *uint  `json:"logoAssetId"`
}

func (req *SaveOrganizerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.PhoneNumber, validation.Match(phoneExp)),
	)
}
