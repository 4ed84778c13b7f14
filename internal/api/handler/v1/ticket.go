package v1

import (
	"context"
	"encoding/base64"
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

type TicketService interface {
	IssueTicket(ctx context.Context, eventID uint, email string) (domain.Ticket, []byte, error)
	ValidateAndScan(ctx context.Context, code string, scannerID uint) (domain.ScanResult, error)
	GetLogs(ctx context.Context, eventID, requesterID uint) ([]domain.TicketLog, error)
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandleIssueTicket godoc
// @Summary      Issue a ticket for an event
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body      request.IssueTicketRequest  true  "request body"
// @Success      201      {object}  response.IssueTicketResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tickets [post]
func (h *TicketHandler) HandleIssueTicket(ctx *gin.Context) {
	var req request.IssueTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, png, err := h.svc.IssueTicket(ctx.Request.Context(), req.EventID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
		default:
			err = fmt.Errorf("v1.HandleIssueTicket -> h.svc.IssueTicket -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.IssueTicketResponse{
		TicketID:   ticket.ID,
		TicketCode: ticket.Code,
		EventID:    ticket.EventID,
		Email:      ticket.Email,
		QRCode:     base64.StdEncoding.EncodeToString(png),
	})
}

// HandleScanTicket godoc
// @Summary      Validate and consume a ticket
// @Description  Only the event's organizer may scan. An already consumed ticket returns an invalid scan result.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body      request.ScanTicketRequest  true  "request body"
// @Success      200      {object}  domain.ScanResult
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tickets/scan [post]
// @Security     BearerAuth
func (h *TicketHandler) HandleScanTicket(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ScanTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.ValidateAndScan(ctx.Request.Context(), req.TicketCode, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket", "code", req.TicketCode))
		case errors.Is(err, service.ErrNotEventOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
		default:
			err = fmt.Errorf("v1.HandleScanTicket -> h.svc.ValidateAndScan -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleGetTicketLogs godoc
// @Summary      Get an event's scan logs
// @Tags         tickets
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {array}   domain.TicketLog
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/ticket-logs [get]
// @Security     BearerAuth
func (h *TicketHandler) HandleGetTicketLogs(ctx *gin.Context) {
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

	logs, err := h.svc.GetLogs(ctx.Request.Context(), uint(eventID), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrNotEventOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotEventOwner))
		default:
			err = fmt.Errorf("v1.HandleGetTicketLogs -> h.svc.GetLogs -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, logs)
}
