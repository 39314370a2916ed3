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

type TicketCategoryService interface {
	ListByEvent(ctx context.Context, eventID uint) ([]domain.TicketCategory, error)
	Create(ctx context.Context, eventID uint, sub domain.TicketCategorySubmission) (domain.TicketCategory, error)
	Update(ctx context.Context, id uint, sub domain.TicketCategorySubmission) (domain.TicketCategory, error)
	Delete(ctx context.Context, id uint) error
}

type TicketCategoryHandler struct {
	svc TicketCategoryService
}

func NewTicketCategoryHandler(svc TicketCategoryService) *TicketCategoryHandler {
	return &TicketCategoryHandler{
		svc: svc,
	}
}

// HandleListTicketCategories godoc
// @Summary      List ticket categories of an event
// @Tags         ticket-categories
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200      {array}   domain.TicketCategory
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/ticket-categories [get]
// @Security BearerAuth
func (h *TicketCategoryHandler) HandleListTicketCategories(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	categories, err := h.svc.ListByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleListTicketCategories -> h.svc.ListByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleCreateTicketCategory godoc
// @Summary      Create a ticket category under an event
// @Tags         ticket-categories
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                                true  "Event ID"
// @Param        input    body      request.SaveTicketCategoryRequest  true  "Ticket category details"
// @Success      201      {object}  domain.TicketCategory
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/ticket-categories [post]
// @Security BearerAuth
func (h *TicketCategoryHandler) HandleCreateTicketCategory(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SaveTicketCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category, err := h.svc.Create(ctx.Request.Context(), eventID, req.ToSubmission())
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleCreateTicketCategory -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// HandleUpdateTicketCategory godoc
// @Summary      Update a ticket category
// @Description  Saving a category that moderation rejected requires at least one rejected field to change.
// @Tags         ticket-categories
// @Accept       json
// @Produce      json
// @Param        categoryID  path      int                                true  "Ticket category ID"
// @Param        input       body      request.SaveTicketCategoryRequest  true  "Ticket category details"
// @Success      200         {object}  domain.TicketCategory
// @Failure      400         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      422         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /ticket-categories/{categoryID} [put]
// @Security BearerAuth
func (h *TicketCategoryHandler) HandleUpdateTicketCategory(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "categoryID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SaveTicketCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category, err := h.svc.Update(ctx.Request.Context(), id, req.ToSubmission())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRejectedFieldsUnchanged):
			response.RenderErr(ctx, response.ErrUnprocessable(err))
		case errors.Is(err, service.ErrTicketCategoryLocked):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrTicketCategoryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket category", "ID", id))
		default:
			err = fmt.Errorf("HandleUpdateTicketCategory -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleDeleteTicketCategory godoc
// @Summary      Delete a ticket category
// @Tags         ticket-categories
// @Param        categoryID  path  int  true  "Ticket category ID"
// @Success      204
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /ticket-categories/{categoryID} [delete]
// @Security BearerAuth
func (h *TicketCategoryHandler) HandleDeleteTicketCategory(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "categoryID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrTicketCategoryLocked):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrTicketCategoryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket category", "ID", id))
		default:
			err = fmt.Errorf("HandleDeleteTicketCategory -> h.svc.Delete -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
