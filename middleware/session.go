package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"food-order-api/apperr"
	"food-order-api/auth"
	"food-order-api/models"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_user_finder_test.go -package=middleware . UserFinder

// UserFinder resolves the user a verified token points at.
type UserFinder interface {
	FindUserByID(ctx context.Context, id string) (*models.User, error)
}

// TokenVerifier returns the user id carried by a session token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

const (
	userKey     = "session.user"
	resolvedKey = "session.resolved"
)

// Session is the per-request authentication pipeline. The handlers must run
// in this order within one request:
//
//	AttachUser -> RequireAuth -> RequireRole
//
// AttachUser is installed on the engine so it runs for every route; the
// guards are added per route through Authenticated and AdminOnly. Guards
// never re-verify the token, they only read what AttachUser resolved.
type Session struct {
	users  UserFinder
	tokens TokenVerifier
	cookie auth.Cookie
	log    *slog.Logger
}

func NewSession(users UserFinder, tokens TokenVerifier, cookie auth.Cookie, log *slog.Logger) *Session {
	return &Session{users: users, tokens: tokens, cookie: cookie, log: log}
}

// AttachUser resolves the session cookie into a user when it can. It never
// rejects a request: a missing, invalid or expired token, or a token whose
// user no longer exists, leaves the request anonymous.
func (s *Session) AttachUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(resolvedKey, true)

		tok := s.cookie.Read(c)
		if tok == "" {
			c.Next()
			return
		}
		userID, err := s.tokens.Verify(tok)
		if err != nil {
			s.log.DebugContext(c.Request.Context(), "session token rejected", "error", err)
			c.Next()
			return
		}
		user, err := s.users.FindUserByID(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, apperr.ErrNotFound) {
				s.log.WarnContext(c.Request.Context(), "resolve session user", "user_id", userID, "error", err)
			}
			c.Next()
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401.
func (s *Session) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.resolved(c) {
			return
		}
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequireRole rejects anonymous requests with 401 and users of any other
// role with 403.
func (s *Session) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.resolved(c) {
			return
		}
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access denied. Required role: " + role.String(),
			})
			return
		}
		c.Next()
	}
}

// Authenticated is the guard chain for routes any signed-in user may call.
func (s *Session) Authenticated() []gin.HandlerFunc {
	return []gin.HandlerFunc{s.RequireAuth()}
}

// AdminOnly is the guard chain for Admin routes.
func (s *Session) AdminOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{s.RequireAuth(), s.RequireRole(models.RoleAdmin)}
}

// resolved aborts with 500 when a guard runs before AttachUser.
func (s *Session) resolved(c *gin.Context) bool {
	if c.GetBool(resolvedKey) {
		return true
	}
	s.log.ErrorContext(c.Request.Context(), "session guard ran before AttachUser", "path", c.FullPath())
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	return false
}

// CurrentUser returns the user AttachUser resolved for this request.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
