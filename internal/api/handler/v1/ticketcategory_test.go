package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/service"
)

type stubTicketCategoryService struct {
	updateErr   error
	updateCalls int
}

func (s *stubTicketCategoryService) ListByEvent(context.Context, uint) ([]domain.TicketCategory, error) {
	return nil, nil
}

func (s *stubTicketCategoryService) Create(_ context.Context, eventID uint, _ domain.TicketCategorySubmission) (domain.TicketCategory, error) {
	return domain.TicketCategory{EventID: eventID}, nil
}

func (s *stubTicketCategoryService) Update(_ context.Context, id uint, sub domain.TicketCategorySubmission) (domain.TicketCategory, error) {
	s.updateCalls++
	if s.updateErr != nil {
		return domain.TicketCategory{}, s.updateErr
	}

	return domain.TicketCategory{ID: id, Name: sub.Name, Status: domain.TicketCategoryPending}, nil
}

func (s *stubTicketCategoryService) Delete(context.Context, uint) error {
	return nil
}

func newCategoryRouter(svc TicketCategoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewTicketCategoryHandler(svc)
	router.PUT("/ticket-categories/:categoryID", handler.HandleUpdateTicketCategory)

	return router
}

func saveRequestBody(t *testing.T) []byte {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"name":             "Early Bird",
		"description":      "Limited early access",
		"colorHex":         "FF00AA",
		"price":            "150000",
		"quantity":         "200",
		"maxOrderQuantity": "4",
		"salesStartDate":   map[string]string{"formattedDate": "Jan 15, 2024 14:30 WIB"},
		"salesEndDate":     map[string]string{"formattedDate": "Jan 20, 2024 14:30 WIB"},
		"ticketStartDate":  map[string]string{"formattedDate": "Feb 1, 2024"},
		"ticketEndDate":    map[string]string{"formattedDate": "Feb 2, 2024"},
	})
	require.NoError(t, err)

	return body
}

func TestHandleUpdateTicketCategoryGateBlocks(t *testing.T) {
	svc := &stubTicketCategoryService{updateErr: service.ErrRejectedFieldsUnchanged}
	router := newCategoryRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/ticket-categories/1", bytes.NewReader(saveRequestBody(t)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.JSONEq(t,
		`{"error":"Please fix all rejected fields before saving. Rejected fields must be changed."}`,
		resp.Body.String())
}

func TestHandleUpdateTicketCategoryLocked(t *testing.T) {
	svc := &stubTicketCategoryService{updateErr: service.ErrTicketCategoryLocked}
	router := newCategoryRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/ticket-categories/1", bytes.NewReader(saveRequestBody(t)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHandleUpdateTicketCategorySuccess(t *testing.T) {
	svc := &stubTicketCategoryService{}
	router := newCategoryRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/ticket-categories/5", bytes.NewReader(saveRequestBody(t)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var got domain.TicketCategory
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, uint(5), got.ID)
	assert.Equal(t, domain.TicketCategoryPending, got.Status)
}

func TestHandleUpdateTicketCategoryInvalidBody(t *testing.T) {
	svc := &stubTicketCategoryService{}
	router := newCategoryRouter(svc)

	// Color fails the six-hex-digit rule; validation rejects before the
	// service runs.
	body, err := json.Marshal(map[string]any{
		"name":             "Early Bird",
		"description":      "Limited early access",
		"colorHex":         "12345",
		"price":            "150000",
		"quantity":         "200",
		"maxOrderQuantity": "4",
		"salesStartDate":   map[string]string{"formattedDate": "Jan 15, 2024 14:30 WIB"},
		"salesEndDate":     map[string]string{"formattedDate": "Jan 20, 2024 14:30 WIB"},
		"ticketStartDate":  map[string]string{"formattedDate": "Feb 1, 2024"},
		"ticketEndDate":    map[string]string{"formattedDate": "Feb 2, 2024"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/ticket-categories/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Zero(t, svc.updateCalls)
}

func TestHandleUpdateTicketCategoryBadID(t *testing.T) {
	svc := &stubTicketCategoryService{}
	router := newCategoryRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/ticket-categories/abc", bytes.NewReader(saveRequestBody(t)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Zero(t, svc.updateCalls)
}
