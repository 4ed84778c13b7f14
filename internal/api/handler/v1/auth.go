package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zidepeople/runevents-api/internal/api/handler/v1/request"
	"github.com/zidepeople/runevents-api/internal/api/handler/v1/response"
	"github.com/zidepeople/runevents-api/internal/config"
	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/pkg/jwthelper"
	"github.com/zidepeople/runevents-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	SignupVendor(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error)
	LoginVendor(ctx context.Context, email, password string) (domain.Vendor, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Signup a new organizer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.SignupRequest  true  "request body"
// @Success      201      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleLogin godoc
// @Summary      Login an organizer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("email or password is incorrect")))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.renderToken(ctx, user.ID, jwthelper.RoleOrganizer)
}

// HandleVendorSignup godoc
// @Summary      Signup a new service provider
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.VendorSignupRequest  true  "request body"
// @Success      201      {object}  domain.Vendor
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/vendors/signup [post]
func (h *AuthHandler) HandleVendorSignup(ctx *gin.Context) {
	var req request.VendorSignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	vendor, err := h.svc.SignupVendor(ctx.Request.Context(), domain.Vendor{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		BusinessName:  req.BusinessName,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		Category:      req.Category,
		PriceSmall:    req.PriceSmall,
		PriceMedium:   req.PriceMedium,
		PriceLarge:    req.PriceLarge,
		Tags:          req.Tags,
	})
	if err != nil {
		if errors.Is(err, service.ErrVendorEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrVendorEmailExists))
			return
		}
		if errors.Is(err, service.ErrGatewayFailure) {
			response.RenderErr(ctx, response.ErrBadGateway(service.ErrGatewayFailure))
			return
		}

		err = fmt.Errorf("v1.HandleVendorSignup -> h.svc.SignupVendor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, vendor)
}

// HandleVendorLogin godoc
// @Summary      Login a service provider
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/vendors/login [post]
func (h *AuthHandler) HandleVendorLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	vendor, err := h.svc.LoginVendor(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("email or password is incorrect")))
			return
		}

		err = fmt.Errorf("v1.HandleVendorLogin -> h.svc.LoginVendor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.renderToken(ctx, vendor.ID, jwthelper.RoleVendor)
}

func (h *AuthHandler) renderToken(ctx *gin.Context, userID uint, role string) {
	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), userID, role, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.renderToken -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
	})
}
