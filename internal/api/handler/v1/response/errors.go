package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error envelope every endpoint renders on failure.
type Err struct {
	StatusCode int    `json:"status_code"`
	ErrorMsg   string `json:"error_msg"`
}

func (e *Err) Error() string {
	return e.ErrorMsg
}

func NewErr(statusCode int, err error) *Err {
	return &Err{
		StatusCode: statusCode,
		ErrorMsg:   err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err)
}

func ErrUnauthorized(err error) *Err {
	return NewErr(http.StatusUnauthorized, err)
}

func ErrPermissionDenied(err error) *Err {
	return NewErr(http.StatusForbidden, err)
}

func ErrNotFound(resource, key string, value any) *Err {
	return NewErr(http.StatusNotFound, fmt.Errorf("%v with %v %v is not found", resource, key, value))
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, err)
}

func ErrPaymentRequired(err error) *Err {
	return NewErr(http.StatusPaymentRequired, err)
}

func ErrBadGateway(err error) *Err {
	return NewErr(http.StatusBadGateway, err)
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return NewErr(http.StatusInternalServerError, fmt.Errorf("internal server error"))
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
