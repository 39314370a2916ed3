package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Liku-id/wukong-admin-api/internal/service"
)

type stubCityService struct {
	body json.RawMessage
	err  error
}

func (s *stubCityService) FetchCities(context.Context) (json.RawMessage, error) {
	return s.body, s.err
}

func newCityRouter(svc CityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.GET("/list/cities", NewCityHandler(svc).HandleListCities)

	return router
}

func TestHandleListCitiesPassthrough(t *testing.T) {
	const payload = `{"body":{"cities":[{"id":1,"name":"Jakarta"}]}}`
	router := newCityRouter(&stubCityService{body: json.RawMessage(payload)})

	req := httptest.NewRequest(http.MethodGet, "/list/cities", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
	assert.JSONEq(t, payload, resp.Body.String())
}

func TestHandleListCitiesUpstreamError(t *testing.T) {
	router := newCityRouter(&stubCityService{
		err: &service.UpstreamError{
			StatusCode: http.StatusServiceUnavailable,
			Body:       json.RawMessage(`{"detail":"maintenance window"}`),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/list/cities", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.JSONEq(t,
		`{"message":"Failed to fetch cities","detail":"maintenance window"}`,
		resp.Body.String())
}

func TestHandleListCitiesTransportError(t *testing.T) {
	router := newCityRouter(&stubCityService{err: errors.New("dial tcp: connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/list/cities", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Error fetching cities", body["message"])
	assert.Contains(t, body["error"], "connection refused")
}

func TestHandleListCitiesMethodNotAllowed(t *testing.T) {
	router := newCityRouter(&stubCityService{body: json.RawMessage(`{}`)})

	req := httptest.NewRequest(http.MethodPost, "/list/cities", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}
