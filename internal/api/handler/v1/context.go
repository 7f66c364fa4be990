package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/MuchYouth/otgil-Re-Thread/internal/api/handler/v1/response"
	"github.com/MuchYouth/otgil-Re-Thread/internal/api/middleware"
	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/service"
)

// getUserFromContext resolves the authenticated user from the ID the JWT
// middleware stored in the gin context.
func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	userID := ctx.GetString(middleware.ContextKeyUserID)
	if userID == "" {
		return domain.User{}, response.ErrWrongCredentials(errors.New("missing authentication"))
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrNotFound("user", "ID", userID)
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("v1.getUserFromContext -> svc.GetUser -> %w", err))
	}

	return user, nil
}
