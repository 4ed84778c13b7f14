package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zidepeople/runevents-api/internal/api/handler/v1/request"
	"github.com/zidepeople/runevents-api/internal/api/handler/v1/response"
	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/service"
)

type PaymentService interface {
	InitializePayment(ctx context.Context, payerID, vendorID uint, tier domain.PackageTier, eventID *uint) (service.InitializedPayment, error)
	VerifyPayment(ctx context.Context, reference string, payerID uint) (domain.Payment, error)
	GetHistory(ctx context.Context, payerID uint) ([]domain.PaymentRecord, error)
	GetVendorHistory(ctx context.Context, vendorID uint) ([]domain.PaymentRecord, error)
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleInitializePayment godoc
// @Summary      Initialize a payment to a vendor
// @Description  Opens a gateway checkout routed to the vendor's subaccount and records a pending payment.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.InitializePaymentRequest  true  "request body"
// @Success      200      {object}  service.InitializedPayment
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /payments/initialize [post]
// @Security     BearerAuth
func (h *PaymentHandler) HandleInitializePayment(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.InitializePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	initialized, err := h.svc.InitializePayment(ctx.Request.Context(), userID, req.VendorID, domain.PackageTier(req.Package), req.EventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTier):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidTier))
		case errors.Is(err, service.ErrVendorNotFound):
			response.RenderErr(ctx, response.ErrNotFound("vendor", "ID", req.VendorID))
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
		case errors.Is(err, service.ErrNoSubaccount):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNoSubaccount))
		case errors.Is(err, service.ErrTierUnavailable):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTierUnavailable))
		case errors.Is(err, service.ErrGatewayFailure):
			response.RenderErr(ctx, response.ErrBadGateway(service.ErrGatewayFailure))
		default:
			err = fmt.Errorf("v1.HandleInitializePayment -> h.svc.InitializePayment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, initialized)
}

// HandleVerifyPayment godoc
// @Summary      Verify a payment's outcome with the gateway
// @Description  Promotes the local record to success exactly once. Re-verifying a settled payment returns it unchanged.
// @Tags         payments
// @Produce      json
// @Param        reference  path      string  true  "payment reference"
// @Success      200        {object}  domain.Payment
// @Failure      401        {object}  response.Err
// @Failure      402        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      502        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /payments/verify/{reference} [get]
// @Security     BearerAuth
func (h *PaymentHandler) HandleVerifyPayment(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	reference := ctx.Param("reference")
	if reference == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("reference is required")))
		return
	}

	payment, err := h.svc.VerifyPayment(ctx.Request.Context(), reference, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("payment", "reference", reference))
		case errors.Is(err, service.ErrPaymentIncomplete):
			response.RenderErr(ctx, response.ErrPaymentRequired(service.ErrPaymentIncomplete))
		case errors.Is(err, service.ErrGatewayFailure):
			response.RenderErr(ctx, response.ErrBadGateway(service.ErrGatewayFailure))
		default:
			err = fmt.Errorf("v1.HandleVerifyPayment -> h.svc.VerifyPayment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, payment)
}

// HandleGetHistory godoc
// @Summary      Get the authenticated organizer's payment history
// @Tags         payments
// @Produce      json
// @Success      200  {array}   domain.PaymentRecord
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/history [get]
// @Security     BearerAuth
func (h *PaymentHandler) HandleGetHistory(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	records, err := h.svc.GetHistory(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetHistory -> h.svc.GetHistory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// HandleGetVendorHistory godoc
// @Summary      Get the authenticated vendor's received payments
// @Tags         payments
// @Produce      json
// @Success      200  {array}   domain.PaymentRecord
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /vendors/payments [get]
// @Security     BearerAuth
func (h *PaymentHandler) HandleGetVendorHistory(ctx *gin.Context) {
	vendorID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	records, err := h.svc.GetVendorHistory(ctx.Request.Context(), vendorID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetVendorHistory -> h.svc.GetVendorHistory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, records)
}
