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

type ParticipationService interface {
	RequestVendor(ctx context.Context, eventID, vendorID uint, serviceToRender string, price int, requesterID uint) (domain.VendorParticipation, error)
	RespondToRequest(ctx context.Context, eventID, vendorID uint, accepted bool) (domain.VendorParticipation, error)
	ListEventRequests(ctx context.Context, eventID, requesterID uint) ([]domain.ParticipationStatus, error)
	ListPendingRequests(ctx context.Context, vendorID uint) ([]domain.PendingRequest, error)
}

type ParticipationHandler struct {
	svc ParticipationService
}

func NewParticipationHandler(svc ParticipationService) *ParticipationHandler {
	return &ParticipationHandler{
		svc: svc,
	}
}

// HandleRequestVendor godoc
// @Summary      Request a vendor's services for an event
// @Tags         participations
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                           true  "event ID"
// @Param        request  body      request.RequestVendorRequest  true  "request body"
// @Success      201      {object}  domain.VendorParticipation
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/vendors [post]
// @Security     BearerAuth
func (h *ParticipationHandler) HandleRequestVendor(ctx *gin.Context) {
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

	var req request.RequestVendorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participation, err := h.svc.RequestVendor(ctx.Request.Context(), uint(eventID), req.VendorID, req.Service, req.Price, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVendorNotFound):
			response.RenderErr(ctx, response.ErrNotFound("vendor", "ID", req.VendorID))
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrNotEventOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
		case errors.Is(err, service.ErrParticipationExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrParticipationExists))
		default:
			err = fmt.Errorf("v1.HandleRequestVendor -> h.svc.RequestVendor -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, participation)
}

// HandleListEventRequests godoc
// @Summary      List an event's vendor requests and their statuses
// @Tags         participations
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {array}   domain.ParticipationStatus
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/vendors [get]
// @Security     BearerAuth
func (h *ParticipationHandler) HandleListEventRequests(ctx *gin.Context) {
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

	statuses, err := h.svc.ListEventRequests(ctx.Request.Context(), uint(eventID), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrNotEventOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
		default:
			err = fmt.Errorf("v1.HandleListEventRequests -> h.svc.ListEventRequests -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, statuses)
}

// HandleListPendingRequests godoc
// @Summary      List the authenticated vendor's pending requests
// @Tags         participations
// @Produce      json
// @Success      200  {array}   domain.PendingRequest
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /vendors/requests [get]
// @Security     BearerAuth
func (h *ParticipationHandler) HandleListPendingRequests(ctx *gin.Context) {
	vendorID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	pending, err := h.svc.ListPendingRequests(ctx.Request.Context(), vendorID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPendingRequests -> h.svc.ListPendingRequests -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, pending)
}

// HandleRespondToRequest godoc
// @Summary      Accept or decline a participation request
// @Description  One response per request. Accepting appends the agreed price to the event's budget breakdown.
// @Tags         participations
// @Accept       json
// @Produce      json
// @Param        request  body      request.RespondToRequestRequest  true  "request body"
// @Success      200      {object}  domain.VendorParticipation
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /vendors/requests/respond [post]
// @Security     BearerAuth
func (h *ParticipationHandler) HandleRespondToRequest(ctx *gin.Context) {
	vendorID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RespondToRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participation, err := h.svc.RespondToRequest(ctx.Request.Context(), req.EventID, vendorID, req.Accepted)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("participation request", "event ID", req.EventID))
		case errors.Is(err, service.ErrAlreadyResponded):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyResponded))
		default:
			err = fmt.Errorf("v1.HandleRespondToRequest -> h.svc.RespondToRequest -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, participation)
}
