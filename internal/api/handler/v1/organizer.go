package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Liku-id/wukong-admin-api/internal/api/handler/v1/request"
	"github.com/Liku-id/wukong-admin-api/internal/api/handler/v1/response"
	"github.com/Liku-id/wukong-admin-api/internal/domain"
	"github.com/Liku-id/wukong-admin-api/internal/service"
)

type OrganizerService interface {
	List(ctx context.Context, limit, offset int) ([]domain.Organizer, int64, error)
	Get(ctx context.Context, id uint) (domain.Organizer, error)
	Create(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error)
	Update(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error)
	Delete(ctx context.Context, id uint) error
}

type OrganizerHandler struct {
	svc OrganizerService
}

func NewOrganizerHandler(svc OrganizerService) *OrganizerHandler {
	return &OrganizerHandler{
		svc: svc,
	}
}

// HandleListOrganizers godoc
// @Summary      List organizers
// @Tags         organizers
// @Produce      json
// @Param        page      query     int  false  "0-based page"
// @Param        pageSize  query     int  false  "page size"
// @Success      200       {object}  map[string]interface{}
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /organizers [get]
// @Security BearerAuth
func (h *OrganizerHandler) HandleListOrganizers(ctx *gin.Context) {
	page := parsePageQuery(ctx)

	organizers, total, err := h.svc.List(ctx.Request.Context(), page.Limit(), page.Offset())
	if err != nil {
		err = fmt.Errorf("HandleListOrganizers -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	page.Total = int(total)
	ctx.JSON(http.StatusOK, gin.H{
		"organizers": organizers,
		"pagination": response.NewPagination(page),
	})
}

// HandleGetOrganizer godoc
// @Summary      Get an organizer
// @Tags         organizers
// @Produce      json
// @Param        organizerID  path      int  true  "Organizer ID"
// @Success      200          {object}  domain.Organizer
// @Failure      404          {object}  response.Err
// @Router       /organizers/{organizerID} [get]
// @Security BearerAuth
func (h *OrganizerHandler) HandleGetOrganizer(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "organizerID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	organizer, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrganizerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organizer", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGetOrganizer -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, organizer)
}

// HandleCreateOrganizer godoc
// @Summary      Create an organizer
// @Tags         organizers
// @Accept       json
// @Produce      json
// @Param        input  body      request.SaveOrganizerRequest  true  "Organizer details"
// @Success      201    {object}  domain.Organizer
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /organizers [post]
// @Security BearerAuth
func (h *OrganizerHandler) HandleCreateOrganizer(ctx *gin.Context) {
	var req request.SaveOrganizerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	organizer, err := h.svc.Create(ctx.Request.Context(), domain.Organizer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		LogoAssetID: req.LogoAssetID,
	})
	if err != nil {
		if errors.Is(err, service.ErrOrganizerEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("HandleCreateOrganizer -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, organizer)
}

// HandleUpdateOrganizer godoc
// @Summary      Update an organizer
// @Tags         organizers
// @Accept       json
// @Produce      json
// @Param        organizerID  path      int                           true  "Organizer ID"
// @Param        input        body      request.SaveOrganizerRequest  true  "Organizer details"
// @Success      200          {object}  domain.Organizer
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /organizers/{organizerID} [put]
// @Security BearerAuth
func (h *OrganizerHandler) HandleUpdateOrganizer(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "organizerID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SaveOrganizerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	organizer, err := h.svc.Update(ctx.Request.Context(), domain.Organizer{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		LogoAssetID: req.LogoAssetID,
	})
	if err != nil {
		if errors.Is(err, service.ErrOrganizerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organizer", "ID", id))
			return
		}

		err = fmt.Errorf("HandleUpdateOrganizer -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, organizer)
}

// HandleDeleteOrganizer godoc
// @Summary      Delete an organizer
// @Tags         organizers
// @Param        organizerID  path  int  true  "Organizer ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /organizers/{organizerID} [delete]
// @Security BearerAuth
func (h *OrganizerHandler) HandleDeleteOrganizer(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "organizerID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrganizerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organizer", "ID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteOrganizer -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
