package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"acsp_backend/internal/apperrors"
	"acsp_backend/internal/auth"
	"acsp_backend/internal/logger"
	"acsp_backend/internal/models"
	"acsp_backend/internal/repositories"
)

const currentUserKey = "currentUser"

// AuthMiddleware validates the bearer token and loads the account from the
// database. Loading fresh state means a ban or status change takes effect
// immediately instead of when the token expires.
func AuthMiddleware(tokens *auth.TokenManager, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abort(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			abort(c, apperrors.NewUnauthorizedError("Invalid token"))
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			abort(c, apperrors.NewUnauthorizedError("Invalid token"))
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				abort(c, apperrors.NewUnauthorizedError("Account no longer exists"))
				return
			}
			abort(c, apperrors.InternalError(err))
			return
		}

		if user.Status == models.UserStatusBanned {
			abort(c, apperrors.NewUnauthorizedError("Account is banned"))
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID.Hex())
		c.Request = c.Request.WithContext(ctx)
		c.Set(currentUserKey, user.Sanitize())
		c.Next()
	}
}

// RequireAdmin allows only admin accounts through.
func RequireAdmin() gin.HandlerFunc {
	return requireRole(func(user *models.User) bool {
		return user.Role == models.UserRoleAdmin
	})
}

// RequireModerator allows admins and moderators through.
func RequireModerator() gin.HandlerFunc {
	return requireRole(func(user *models.User) bool {
		return user.Role == models.UserRoleAdmin || user.Role == models.UserRoleModerator
	})
}

// RequireVerifiedMember gates member-only areas: admins always pass, other
// accounts need a status in the verified-member set.
func RequireVerifiedMember() gin.HandlerFunc {
	return requireRole(func(user *models.User) bool {
		if user.Role == models.UserRoleAdmin {
			return true
		}
		return user.Status.IsVerifiedMember()
	})
}

func requireRole(allowed func(*models.User) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abort(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}
		if !allowed(user) {
			abort(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the account loaded by AuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func abort(c *gin.Context, err *apperrors.AppError) {
	c.Abort()
	apperrors.HandleError(c, err)
}
