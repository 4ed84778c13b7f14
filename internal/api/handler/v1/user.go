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

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	GetVendor(ctx context.Context, id uint) (domain.Vendor, error)
}

type ProfileService interface {
	UpdateProfile(ctx context.Context, id uint, patch domain.UserPatch) (domain.User, error)
	UpdateVendorProfile(ctx context.Context, id uint, patch domain.VendorPatch) (domain.Vendor, error)
}

type UserHandler struct {
	svc     UserService
	profile ProfileService
}

func NewUserHandler(svc UserService, profile ProfileService) *UserHandler {
	return &UserHandler{
		svc:     svc,
		profile: profile,
	}
}

// HandleGetProfile godoc
// @Summary      Get the authenticated organizer's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetProfile(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetProfile -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateProfile godoc
// @Summary      Update the authenticated organizer's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateProfileRequest  true  "request body"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/me [patch]
// @Security     BearerAuth
func (h *UserHandler) HandleUpdateProfile(ctx *gin.Context) {
	userID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.profile.UpdateProfile(ctx.Request.Context(), userID, domain.UserPatch{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPatch):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrEmptyPatch))
		case errors.Is(err, service.ErrUserEmailExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
		default:
			err = fmt.Errorf("v1.HandleUpdateProfile -> h.profile.UpdateProfile -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleGetVendorProfile godoc
// @Summary      Get the authenticated vendor's profile
// @Tags         vendors
// @Produce      json
// @Success      200  {object}  domain.Vendor
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /vendors/me [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetVendorProfile(ctx *gin.Context) {
	vendorID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	vendor, err := h.svc.GetVendor(ctx.Request.Context(), vendorID)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("vendor", "ID", vendorID))
			return
		}

		err = fmt.Errorf("v1.HandleGetVendorProfile -> h.svc.GetVendor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, vendor)
}

// HandleUpdateVendorProfile godoc
// @Summary      Update the authenticated vendor's profile
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateVendorRequest  true  "request body"
// @Success      200      {object}  domain.Vendor
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /vendors/me [patch]
// @Security     BearerAuth
func (h *UserHandler) HandleUpdateVendorProfile(ctx *gin.Context) {
	vendorID, respErr := currentUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateVendorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	vendor, err := h.profile.UpdateVendorProfile(ctx.Request.Context(), vendorID, domain.VendorPatch{
		BusinessName:  req.BusinessName,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		Tags:          req.Tags,
		PriceSmall:    req.PriceSmall,
		PriceMedium:   req.PriceMedium,
		PriceLarge:    req.PriceLarge,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPatch):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrEmptyPatch))
		case errors.Is(err, service.ErrVendorNotFound):
			response.RenderErr(ctx, response.ErrNotFound("vendor", "ID", vendorID))
		default:
			err = fmt.Errorf("v1.HandleUpdateVendorProfile -> h.profile.UpdateVendorProfile -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, vendor)
}
