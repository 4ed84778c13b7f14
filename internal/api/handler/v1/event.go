package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zidepeople/runevents-api/internal/api/handler/v1/request"
	"github.com/zidepeople/runevents-api/internal/api/handler/v1/response"
	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event, organizerID uint) (domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	ListPublicEvents(ctx context.Context) ([]domain.Event, error)
	ListOrganizerEvents(ctx context.Context, organizerID uint) ([]service.OrganizerEvent, error)
	UpdateEvent(ctx context.Context, id uint, patch domain.EventPatch, callerID uint) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint, callerID uint) error
	RecommendVendors(ctx context.Context, category string, budget int, tier domain.PackageTier, tags []string) ([]domain.Vendor, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleCreateEvent godoc
// @Summary      Create a new event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest  true  "request body"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), req.ToDomain(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleListPublicEvents godoc
// @Summary      List public events
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListPublicEvents(ctx *gin.Context) {
	events, err := h.svc.ListPublicEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPublicEvents -> h.svc.ListPublicEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleListMyEvents godoc
// @Summary      List the authenticated organizer's events with vendor statuses
// @Tags         events
// @Produce      json
// @Success      200  {array}   service.OrganizerEvent
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/mine [get]
// @Security     BearerAuth
func (h *EventHandler) HandleListMyEvents(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	events, err := h.svc.ListOrganizerEvents(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMyEvents -> h.svc.ListOrganizerEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event by ID
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("event ID must be an integer")))
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Description  Allowed for the event owner and accepted collaborators.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                         true  "event ID"
// @Param        request  body      request.UpdateEventRequest  true  "request body"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [patch]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("event ID must be an integer")))
		return
	}

	var req request.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), uint(eventID), req.ToPatch(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPatch):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrEmptyPatch))
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrNoEditRights):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNoEditRights))
		default:
			err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Description  Owner only. Refused while tickets or payments reference the event.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [delete]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("event ID must be an integer")))
		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), uint(eventID), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrNotEventOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
		case errors.Is(err, service.ErrEventHasReferences):
			response.RenderErr(ctx, response.ErrConflict(service.ErrEventHasReferences))
		default:
			err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRecommendVendors godoc
// @Summary      Recommend vendors for a category and budget
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.RecommendVendorsRequest  true  "request body"
// @Success      200      {array}   domain.Vendor
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/recommend-vendors [post]
// @Security     BearerAuth
func (h *EventHandler) HandleRecommendVendors(ctx *gin.Context) {
	var req request.RecommendVendorsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	vendors, err := h.svc.RecommendVendors(ctx.Request.Context(), req.Category, req.Budget, domain.PackageTier(req.Package), req.Tags)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTier) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidTier))
			return
		}

		err = fmt.Errorf("v1.HandleRecommendVendors -> h.svc.RecommendVendors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, vendors)
}
