package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSaveRequest() SaveTicketCategoryRequest {
	window := Window{
		Date:          "2024-01-15",
		Time:          "14:30",
		TimeZone:      "+07:00",
		FormattedDate: "Jan 15, 2024 14:30 WIB",
	}

	return SaveTicketCategoryRequest{
		Name:             "Early Bird",
		Description:      "Limited early access",
		ColorHex:         "FF00AA",
		Price:            "150000",
		Quantity:         "200",
		MaxOrderQuantity: "4",
		SalesStartDate:   window,
		SalesEndDate:     window,
		TicketStartDate:  window,
		TicketEndDate:    window,
	}
}

func TestSaveTicketCategoryRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validSaveRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("color must be six hex digits", func(t *testing.T) {
		for _, hex := range []string{"12345", "GGGGGG", "#FF00AA", "FF00AA0"} {
			req := validSaveRequest()
			req.ColorHex = hex
			assert.Error(t, req.Validate(), "colorHex %q should be rejected", hex)
		}

		for _, hex := range []string{"FF00AA", "ff00aa", "000000"} {
			req := validSaveRequest()
			req.ColorHex = hex
			assert.NoError(t, req.Validate(), "colorHex %q should be accepted", hex)
		}
	})

	t.Run("numeric fields are digits only", func(t *testing.T) {
		req := validSaveRequest()
		req.Price = "150,000"
		assert.Error(t, req.Validate())

		req = validSaveRequest()
		req.Quantity = "-5"
		assert.Error(t, req.Validate())

		req = validSaveRequest()
		req.MaxOrderQuantity = ""
		assert.Error(t, req.Validate())
	})

	t.Run("all four windows are required", func(t *testing.T) {
		req := validSaveRequest()
		req.TicketEndDate = Window{}

		err := req.Validate()
		assert.ErrorIs(t, err, errWindowRequired)
	})

	t.Run("display-only window is enough", func(t *testing.T) {
		req := validSaveRequest()
		req.SalesEndDate = Window{FormattedDate: "Jan 20, 2024"}

		assert.NoError(t, req.Validate())
	})

	t.Run("group category needs a group size", func(t *testing.T) {
		req := validSaveRequest()
		req.IsGroup = true
		assert.ErrorIs(t, req.Validate(), errGroupSizeMissing)

		req.GroupSize = 5
		assert.NoError(t, req.Validate())
	})

	t.Run("description capped at 500 characters", func(t *testing.T) {
		req := validSaveRequest()
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'a'
		}
		req.Description = string(long)

		assert.Error(t, req.Validate())
	})
}

func TestSaveTicketCategoryRequestToSubmission(t *testing.T) {
	req := validSaveRequest()
	req.IsGroup = true
	req.GroupSize = 5

	sub := req.ToSubmission()

	assert.Equal(t, "Early Bird", sub.Name)
	assert.Equal(t, "150000", sub.Price)
	assert.True(t, sub.IsGroup)
	assert.Equal(t, 5, sub.GroupSize)
	assert.Equal(t, "2024-01-15", sub.SalesStartDate.Date)
	assert.Equal(t, "Jan 15, 2024 14:30 WIB", sub.SalesStartDate.Display)
}
