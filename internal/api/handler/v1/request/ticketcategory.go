package request

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/pkg/datewindow"
)

var (
	hexColorExp = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
	digitsExp   = regexp.MustCompile(`^[0-9]+$`)

	errWindowRequired   = errors.New("all sales and ticket dates are required")
	errGroupSizeMissing = errors.New("group size is required for group ticket categories")
)

// Window mirrors what the dashboard's date/time modal reports: the raw
// parts plus the formatted display string.
type Window struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	TimeZone      string `json:"timeZone"`
	FormattedDate string `json:"formattedDate"`
}

func (w Window) toValue() datewindow.Value {
	return datewindow.Value{
		Date:     w.Date,
		Time:     w.Time,
		TimeZone: w.TimeZone,
		Display:  w.FormattedDate,
	}
}

func (w Window) empty() bool {
	return w.Date == "" && w.FormattedDate == ""
}

// SaveTicketCategoryRequest is shared by create and edit. Numeric
// fields are digits-only strings, exactly as the form submits them.
type SaveTicketCategoryRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ColorHex         string `json:"colorHex"`
	Price            string `json:"price"`
	Quantity         string `json:"quantity"`
	MaxOrderQuantity string `json:"maxOrderQuantity"`
	IsGroup          bool   `json:"isGroup"`
	GroupSize        int    `json:"groupSize"`
	SalesStartDate   Window `json:"salesStartDate"`
	SalesEndDate     Window `json:"salesEndDate"`
	TicketStartDate  Window `json:"ticketStartDate"`
	TicketEndDate    Window `json:"ticketEndDate"`
}

func (req *SaveTicketCategoryRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Description, validation.Required, validation.Length(0, 500)),
		validation.Field(&req.ColorHex, validation.Required, validation.Match(hexColorExp)),
		validation.Field(&req.Price, validation.Required, validation.Match(digitsExp)),
		validation.Field(&req.Quantity, validation.Required, validation.Match(digitsExp)),
		validation.Field(&req.MaxOrderQuantity, validation.Required, validation.Match(digitsExp)),
	)
	if err != nil {
		return err
	}

	for _, w := range []Window{req.SalesStartDate, req.SalesEndDate, req.TicketStartDate, req.TicketEndDate} {
		if w.empty() {
			return errWindowRequired
		}
	}

	if req.IsGroup && req.GroupSize < 1 {
		return errGroupSizeMissing
	}

	return nil
}

// ToSubmission converts the request into the domain's save-attempt
// shape.
func (req *SaveTicketCategoryRequest) ToSubmission() domain.TicketCategorySubmission {
	return domain.TicketCategorySubmission{
		Name:             req.Name,
		Description:      req.Description,
		ColorHex:         req.ColorHex,
		Price:            req.Price,
		Quantity:         req.Quantity,
		MaxOrderQuantity: req.MaxOrderQuantity,
		IsGroup:          req.IsGroup,
		GroupSize:        req.GroupSize,
		SalesStartDate:   req.SalesStartDate.toValue(),
		SalesEndDate:     req.SalesEndDate.toValue(),
		TicketStartDate:  req.TicketStartDate.toValue(),
		TicketEndDate:    req.TicketEndDate.toValue(),
	}
}
