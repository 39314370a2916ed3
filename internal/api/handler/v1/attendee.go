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
	"github.com/Liku-id/wukong-admin-api/internal/monitoring"
	"github.com/Liku-id/wukong-admin-api/internal/service"
)

type AttendeeService interface {
	ListByEvent(ctx context.Context, eventID uint, limit, offset int) ([]domain.Ticket, int64, error)
	Redeem(ctx context.Context, ticketID uint) (domain.Ticket, error)
}

// CheckinPublisher fans a redemption out to connected dashboards.
type CheckinPublisher interface {
	Publish(ev domain.CheckinEvent)
}

type AttendeeHandler struct {
	svc  AttendeeService
	feed CheckinPublisher
}

func NewAttendeeHandler(svc AttendeeService, feed CheckinPublisher) *AttendeeHandler {
	return &AttendeeHandler{
		svc:  svc,
		feed: feed,
	}
}

// HandleListAttendees godoc
// @Summary      List attendee tickets of an event
// @Tags         attendees
// @Produce      json
// @Param        eventID   path      int  true   "Event ID"
// @Param        page      query     int  false  "Page number, 0-based"
// @Param        pageSize  query     int  false  "Page size"
// @Success      200       {object}  map[string]interface{}
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /events/{eventID}/attendees [get]
// @Security BearerAuth
func (h *AttendeeHandler) HandleListAttendees(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	page := parsePageQuery(ctx)

	tickets, total, err := h.svc.ListByEvent(ctx.Request.Context(), eventID, page.Limit(), page.Offset())
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleListAttendees -> h.svc.ListByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	page.Total = int(total)

	ctx.JSON(http.StatusOK, gin.H{
		"attendees":  tickets,
		"pagination": response.NewPagination(page),
	})
}

// HandleRedeemTicket godoc
// @Summary      Redeem a ticket at the gate
// @Description  Flips an active ticket to redeemed. A ticket redeems at most once.
// @Tags         attendees
// @Accept       json
// @Produce      json
// @Param        ticketID  path      int                          true  "Ticket ID"
// @Param        input     body      request.RedeemTicketRequest  true  "Redemption"
// @Success      200       {object}  domain.Ticket
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /tickets/{ticketID}/redeem [patch]
// @Security BearerAuth
func (h *AttendeeHandler) HandleRedeemTicket(ctx *gin.Context) {
	ticketID, respErr := parseIDParam(ctx, "ticketID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RedeemTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, err := h.svc.Redeem(ctx.Request.Context(), ticketID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketAlreadyRedeemed):
			response.RenderErr(ctx, response.ErrConflict(err))
		case errors.Is(err, service.ErrTicketNotRedeemable):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrTicketNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket", "ID", ticketID))
		default:
			err = fmt.Errorf("HandleRedeemTicket -> h.svc.Redeem -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	monitoring.CountRedemption()

	if h.feed != nil && ticket.RedeemedAt != nil {
		h.feed.Publish(domain.CheckinEvent{
			TicketID:     ticket.ID,
			EventID:      ticket.EventID,
			TicketNumber: ticket.TicketNumber,
			AttendeeName: ticket.AttendeeName,
			RedeemedAt:   *ticket.RedeemedAt,
		})
	}

	ctx.JSON(http.StatusOK, ticket)
}
