package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andrKonan/ProjectAutomate-server/internal/http/response"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/apierr"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/ctxutil"
	"github.com/andrKonan/ProjectAutomate-server/internal/platform/logger"
	"github.com/andrKonan/ProjectAutomate-server/internal/services"
)

var errMissingToken = errors.New("missing or invalid token")

type AuthMiddleware struct {
	log     *logger.Logger
	clients services.ClientService
}

func NewAuthMiddleware(log *logger.Logger, clients services.ClientService) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), clients: clients}
}

// RequireAuth resolves the bearer token to a client and stores it on the request context.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Abort()
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", errMissingToken)
			return
		}
		ctx, err := am.clients.SetContextFromToken(c.Request.Context(), token)
		if err != nil {
			if status, _ := apierr.StatusOf(err); status >= http.StatusInternalServerError {
				am.log.Error("token lookup failed", "error", err)
			}
			c.Abort()
			response.RespondErr(c, err)
			return
		}
		cd := ctxutil.GetClientData(ctx)
		if cd == nil || cd.ClientID == uuid.Nil {
			c.Abort()
			response.RespondError(c, http.StatusForbidden, "forbidden", nil)
			return
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
