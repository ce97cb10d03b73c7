package middleware

import (
	"strings"

	"github.com/contractorpro/contractorpro/internal/auth"
	"github.com/contractorpro/contractorpro/internal/config"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// AuthenticateMiddleware resolves the caller from either:
// 1. an API key in the configured header
// 2. a JWT in the Authorization header as a Bearer token
// and stores the user id in the request context.
func AuthenticateMiddleware(cfg *config.Configuration, provider auth.Provider, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader(cfg.Auth.APIKey.Header); apiKey != "" {
			claims, valid := provider.ValidateAPIKey(apiKey)
			if !valid || claims.UserID == "" {
				logger.Debugw("invalid api key", "path", c.FullPath())
				abortUnauthorized(c, "Invalid API key")
				return
			}
			setUser(c, claims.UserID)
			c.Next()
			return
		}

		authHeader := c.GetHeader(types.HeaderAuthorization)
		if authHeader == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := provider.ValidateToken(c.Request.Context(), strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			logger.Debugw("failed to validate token", "error", err)
			abortUnauthorized(c, "Invalid or expired token")
			return
		}
		if claims == nil || claims.UserID == "" {
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		setUser(c, claims.UserID)
		c.Next()
	}
}

func setUser(c *gin.Context, userID string) {
	c.Request = c.Request.WithContext(types.SetUserID(c.Request.Context(), userID))
}

func abortUnauthorized(c *gin.Context, hint string) {
	c.Error(ierr.NewError("unauthorized").
		WithHint(hint).
		Mark(ierr.ErrUnauthorized))
	c.Abort()
}
