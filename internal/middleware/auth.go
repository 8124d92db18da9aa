package middleware

import (
	"context"
	"strings"

	"github.com/JonnyWalker81/workwell/backend/internal/apierror"
	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/JonnyWalker81/workwell/backend/pkg/supabase"
	"github.com/gin-gonic/gin"
)

// Gin context keys set by Auth
const (
	ContextUserID    = "user_id"
	ContextUserRole  = "user_role"
	ContextUserToken = "user_token"
)

// RoleAdmin may query predictions for arbitrary subjects
const RoleAdmin = "admin"

// TokenVerifier resolves a bearer token to a user
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*supabase.User, error)
}

// Auth middleware to verify JWT tokens
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("authentication failed: missing authorization header")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			log.Debug("authentication failed: invalid authorization format")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		token := parts[1]

		user, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			log.Warn("authentication failed: token verification error",
				logger.Err(err),
			)
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role())
		c.Set(ContextUserToken, token)

		// The token rides along so Supabase queries run under the caller's RLS policies
		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		ctx = supabase.WithUserToken(ctx, token)
		c.Request = c.Request.WithContext(ctx)

		log.Debug("authentication successful",
			logger.String("user_id", user.ID),
			logger.String("user_role", user.Role()),
		)

		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role differs from role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != role {
			logger.FromContext(c.Request.Context()).Warn("authorization failed: role mismatch",
				logger.String("required_role", role),
				logger.String("user_role", c.GetString(ContextUserRole)),
			)
			apierror.WriteProblem(c, apierror.NewForbiddenError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's ID
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextUserID)
	return id, id != ""
}
