package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Liku-id/wukong-admin-api/internal/api/handler/v1/response"
	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/service"
)

type AssetService interface {
	Upload(ctx context.Context, fileName, contentType string, size int64, reader io.Reader) (domain.Asset, error)
	Get(ctx context.Context, id uint) (domain.Asset, error)
}

type AssetHandler struct {
	svc AssetService
}

func NewAssetHandler(svc AssetService) *AssetHandler {
	return &AssetHandler{
		svc: svc,
	}
}

// HandleUploadAsset godoc
// @Summary      Upload an image asset
// @Description  Accepts a multipart file of at most 1MB.
// @Tags         assets
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /assets [post]
// @Security BearerAuth
func (h *AssetHandler) HandleUploadAsset(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("missing file: %w", err)))
		return
	}

	if fileHeader.Size > service.MaxAssetSize {
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrAssetTooLarge))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("unreadable file: %w", err)))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	asset, err := h.svc.Upload(ctx.Request.Context(), fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		if errors.Is(err, service.ErrAssetTooLarge) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleUploadAsset -> h.svc.Upload -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"body": gin.H{
			"asset": asset,
		},
	})
}

// HandleGetAsset godoc
// @Summary      Get asset metadata
// @Tags         assets
// @Produce      json
// @Param        assetID  path      int  true  "Asset ID"
// @Success      200      {object}  domain.Asset
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /assets/{assetID} [get]
// @Security BearerAuth
func (h *AssetHandler) HandleGetAsset(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "assetID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	asset, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssetNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("asset", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGetAsset -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, asset)
}
