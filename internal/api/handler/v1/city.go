package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Liku-id/wukong-admin-api/internal/service"
)

type CityService interface {
	FetchCities(ctx context.Context) (json.RawMessage, error)
}

// CityHandler proxies the consumer backend's city list so the
// dashboard never talks to that backend directly.
type CityHandler struct {
	svc CityService
}

func NewCityHandler(svc CityService) *CityHandler {
	return &CityHandler{
		svc: svc,
	}
}

// HandleListCities godoc
// @Summary      List cities from the consumer backend
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /list/cities [get]
func (h *CityHandler) HandleListCities(ctx *gin.Context) {
	body, err := h.svc.FetchCities(ctx.Request.Context())
	if err != nil {
		var upstreamErr *service.UpstreamError
		if errors.As(err, &upstreamErr) {
			payload := gin.H{"message": "Failed to fetch cities"}
			var backendBody map[string]any
			if jsonErr := json.Unmarshal(upstreamErr.Body, &backendBody); jsonErr == nil {
				for k, v := range backendBody {
					payload[k] = v
				}
			}

			ctx.JSON(upstreamErr.StatusCode, payload)
			return
		}

		zap.L().Error("city proxy failed", zap.Error(fmt.Errorf("HandleListCities -> h.svc.FetchCities -> %w", err)))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error fetching cities",
			"error":   err.Error(),
		})
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}
