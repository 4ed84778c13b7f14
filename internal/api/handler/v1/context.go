package v1

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/zidepeople/runevents-api/internal/api/middleware"
	"github.com/zidepeople/runevents-api/internal/api/handler/v1/response"
)

var errNotAuthenticated = errors.New("request is not authenticated")

// currentUserID reads the caller's ID stored by the JWT middleware.
func currentUserID(ctx *gin.Context) (uint, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return 0, response.ErrUnauthorized(errNotAuthenticated)
	}

	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, response.ErrUnauthorized(errNotAuthenticated)
	}

	return userID, nil
}
