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

type EventService interface {
	List(ctx context.Context, status string, limit, offset int) ([]domain.Event, int64, error)
	Get(ctx context.Context, id uint) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
	Duplicate(ctx context.Context, id uint) (domain.Event, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// eventRow adds the dashboard's badge label to an event.
type eventRow struct {
	domain.Event
	StatusDisplay string `json:"statusDisplay"`
}

func toEventRow(e domain.Event) eventRow {
	return eventRow{
		Event:         e,
		StatusDisplay: domain.StatusDisplay(string(e.Status)),
	}
}

// HandleListEvents godoc
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        status    query     string  false  "filter by status"
// @Param        page      query     int     false  "0-based page"
// @Param        pageSize  query     int     false  "page size"
// @Success      200       {object}  map[string]interface{}
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /events [get]
// @Security BearerAuth
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	page := parsePageQuery(ctx)
	status := ctx.Query("status")

	events, total, err := h.svc.List(ctx.Request.Context(), status, page.Limit(), page.Offset())
	if err != nil {
		err = fmt.Errorf("HandleListEvents -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	rows := make([]eventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, toEventRow(e))
	}

	page.Total = int(total)
	ctx.JSON(http.StatusOK, gin.H{
		"events":     rows,
		"pagination": response.NewPagination(page),
	})
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200      {object}  domain.Event
// @Failure      404      {object}  response.Err
// @Router       /events/{eventID} [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("HandleGetEvent -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, toEventRow(event))
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        input  body      request.SaveEventRequest  true  "Event details"
// @Success      201    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.SaveEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.Create(ctx.Request.Context(), domain.Event{
		OrganizerID: req.OrganizerID,
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Venue:       req.Venue,
		Address:     req.Address,
		Status:      domain.EventStatus(req.Status),
	})
	if err != nil {
		err = fmt.Errorf("HandleCreateEvent -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, toEventRow(event))
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                       true  "Event ID"
// @Param        input    body      request.SaveEventRequest  true  "Event details"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [put]
// @Security BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SaveEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.Update(ctx.Request.Context(), domain.Event{
		ID:          id,
		OrganizerID: req.OrganizerID,
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Venue:       req.Venue,
		Address:     req.Address,
		Status:      domain.EventStatus(req.Status),
	})
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("HandleUpdateEvent -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, toEventRow(event))
}

// HandleDeleteEvent godoc
// @Summary      Delete an event and its ticket categories
// @Tags         events
// @Param        eventID  path  int  true  "Event ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [delete]
// @Security BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteEvent -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDuplicateEvent godoc
// @Summary      Duplicate an event as a draft
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      201      {object}  domain.Event
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/duplicate [post]
// @Security BearerAuth
func (h *EventHandler) HandleDuplicateEvent(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.Duplicate(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("HandleDuplicateEvent -> h.svc.Duplicate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, toEventRow(event))
}
