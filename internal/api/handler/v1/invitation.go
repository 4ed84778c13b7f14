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

type InvitationService interface {
	Invite(ctx context.Context, eventID uint, invitees []domain.InviteeInput, message string, requesterID uint) (domain.InviteResult, error)
	AcceptInvite(ctx context.Context, eventID uint, email string) (domain.InviteReply, error)
	RejectInvite(ctx context.Context, eventID uint, email string) (domain.InviteReply, error)
	ListInvitees(ctx context.Context, eventID uint, requesterID uint) ([]domain.Invitee, error)
	InviteCollaborator(ctx context.Context, eventID uint, email string, organizerID uint) (domain.Collaborator, error)
	RespondToCollaboration(ctx context.Context, eventID, userID uint, accepted bool) (domain.Collaborator, error)
}

type InvitationHandler struct {
	svc InvitationService
}

func NewInvitationHandler(svc InvitationService) *InvitationHandler {
	return &InvitationHandler{
		svc: svc,
	}
}

// HandleInviteGuests godoc
// @Summary      Invite guests to an event
// @Description  Persists one invitee per guest and emails them best-effort. Guests of public events get a ticket minted with their invite.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                          true  "event ID"
// @Param        request  body      request.InviteGuestsRequest  true  "request body"
// @Success      200      {object}  domain.InviteResult
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/invites [post]
// @Security     BearerAuth
func (h *InvitationHandler) HandleInviteGuests(ctx *gin.Context) {
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

	var req request.InviteGuestsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Invite(ctx.Request.Context(), uint(eventID), req.ToDomain(), req.Message, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrNoEditRights):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNoEditRights))
		default:
			err = fmt.Errorf("v1.HandleInviteGuests -> h.svc.Invite -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleListInvitees godoc
// @Summary      List an event's invitees
// @Tags         invitations
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {array}   domain.Invitee
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/invites [get]
// @Security     BearerAuth
func (h *InvitationHandler) HandleListInvitees(ctx *gin.Context) {
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

	invitees, err := h.svc.ListInvitees(ctx.Request.Context(), uint(eventID), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrNotEventOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
		default:
			err = fmt.Errorf("v1.HandleListInvitees -> h.svc.ListInvitees -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, invitees)
}

// HandleAcceptInvite godoc
// @Summary      Accept a guest invitation
// @Description  Reached from the emailed link. Replays of a decided invitation return the recorded outcome.
// @Tags         invitations
// @Produce      json
// @Param        event_id  query     int     true  "event ID"
// @Param        email     query     string  true  "invitee email"
// @Success      200       {object}  domain.InviteReply
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /invites/accept [get]
func (h *InvitationHandler) HandleAcceptInvite(ctx *gin.Context) {
	h.respondToInvite(ctx, true)
}

// HandleRejectInvite godoc
// @Summary      Decline a guest invitation
// @Tags         invitations
// @Produce      json
// @Param        event_id  query     int     true  "event ID"
// @Param        email     query     string  true  "invitee email"
// @Success      200       {object}  domain.InviteReply
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /invites/reject [get]
func (h *InvitationHandler) HandleRejectInvite(ctx *gin.Context) {
	h.respondToInvite(ctx, false)
}

func (h *InvitationHandler) respondToInvite(ctx *gin.Context, accepted bool) {
	eventID, err := strconv.ParseUint(ctx.Query("event_id"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("event_id must be an integer")))
		return
	}

	email := ctx.Query("email")
	if email == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("email is required")))
		return
	}

	var reply domain.InviteReply
	if accepted {
		reply, err = h.svc.AcceptInvite(ctx.Request.Context(), uint(eventID), email)
	} else {
		reply, err = h.svc.RejectInvite(ctx.Request.Context(), uint(eventID), email)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("invitation", "email", email))
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		default:
			err = fmt.Errorf("v1.respondToInvite -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, reply)
}

// HandleInviteCollaborator godoc
// @Summary      Invite a co-organizer to an event
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                                true  "event ID"
// @Param        request  body      request.InviteCollaboratorRequest  true  "request body"
// @Success      201      {object}  domain.Collaborator
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/collaborators [post]
// @Security     BearerAuth
func (h *InvitationHandler) HandleInviteCollaborator(ctx *gin.Context) {
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

	var req request.InviteCollaboratorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	collaborator, err := h.svc.InviteCollaborator(ctx.Request.Context(), uint(eventID), req.Email, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "email", req.Email))
		case errors.Is(err, service.ErrNotEventOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
		case errors.Is(err, service.ErrSelfCollaboration):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrSelfCollaboration))
		case errors.Is(err, service.ErrCollaboratorExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrCollaboratorExists))
		default:
			err = fmt.Errorf("v1.HandleInviteCollaborator -> h.svc.InviteCollaborator -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, collaborator)
}

// HandleRespondToCollaboration godoc
// @Summary      Accept or decline a collaboration invitation
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                                    true  "event ID"
// @Param        request  body      request.RespondToCollaborationRequest  true  "request body"
// @Success      200      {object}  domain.Collaborator
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /collaborations/{eventID}/respond [post]
// @Security     BearerAuth
func (h *InvitationHandler) HandleRespondToCollaboration(ctx *gin.Context) {
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

	var req request.RespondToCollaborationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	collaborator, err := h.svc.RespondToCollaboration(ctx.Request.Context(), uint(eventID), userID, req.Accepted)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCollaboratorNotFound):
			response.RenderErr(ctx, response.ErrNotFound("collaboration invitation", "event ID", eventID))
		case errors.Is(err, service.ErrAlreadyResponded):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyResponded))
		default:
			err = fmt.Errorf("v1.HandleRespondToCollaboration -> h.svc.RespondToCollaboration -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, collaborator)
}
