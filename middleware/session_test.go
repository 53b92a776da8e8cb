package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-order-api/apperr"
	"food-order-api/auth"
	"food-order-api/logging"
	"food-order-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCookie = auth.Cookie{Name: "jwt", TTL: time.Hour}

func init() {
	gin.SetMode(gin.TestMode)
}

func newSessionEngine(finder UserFinder, tokens *auth.TokenManager) *gin.Engine {
	s := NewSession(finder, tokens, testCookie, logging.Discard())
	ok := func(c *gin.Context) {
		if u, found := CurrentUser(c); found {
			c.String(http.StatusOK, u.Name)
			return
		}
		c.String(http.StatusOK, "anonymous")
	}

	r := gin.New()
	r.Use(s.AttachUser())
	r.GET("/any", ok)
	r.GET("/auth", append(s.Authenticated(), ok)...)
	r.GET("/admin", append(s.AdminOnly(), ok)...)
	r.GET("/role-only", s.RequireRole(models.RoleAdmin), ok)
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie.Name, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSession_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := NewMockUserFinder(ctrl) // no calls expected
	tokens := auth.NewTokenManager([]byte("k"), time.Hour)
	r := newSessionEngine(finder, tokens)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		t.Run(fmt.Sprintf("token=%q", token), func(t *testing.T) {
			w := do(r, "/any", token)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "anonymous", w.Body.String())

			assert.Equal(t, http.StatusUnauthorized, do(r, "/auth", token).Code)
			assert.Equal(t, http.StatusUnauthorized, do(r, "/admin", token).Code)
			assert.Equal(t, http.StatusUnauthorized, do(r, "/role-only", token).Code)
		})
	}
}

func TestSession_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := NewMockUserFinder(ctrl)
	tok, err := auth.NewTokenManager([]byte("k"), -time.Minute).Issue("u1")
	require.NoError(t, err)

	r := newSessionEngine(finder, auth.NewTokenManager([]byte("k"), time.Hour))
	assert.Equal(t, http.StatusUnauthorized, do(r, "/auth", tok).Code)
}

func TestSession_User(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := NewMockUserFinder(ctrl)
	tokens := auth.NewTokenManager([]byte("k"), time.Hour)
	tok, err := tokens.Issue("u1")
	require.NoError(t, err)

	user := &models.User{ID: "u1", Name: "alice", Role: models.RoleUser}
	finder.EXPECT().FindUserByID(gomock.Any(), "u1").Return(user, nil).Times(3)
	r := newSessionEngine(finder, tokens)

	w := do(r, "/any", tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())

	assert.Equal(t, http.StatusOK, do(r, "/auth", tok).Code)

	w = do(r, "/admin", tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin")
}

func TestSession_Admin(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := NewMockUserFinder(ctrl)
	tokens := auth.NewTokenManager([]byte("k"), time.Hour)
	tok, err := tokens.Issue("a1")
	require.NoError(t, err)

	admin := &models.User{ID: "a1", Name: "root", Role: models.RoleAdmin}
	finder.EXPECT().FindUserByID(gomock.Any(), "a1").Return(admin, nil).Times(2)
	r := newSessionEngine(finder, tokens)

	w := do(r, "/admin", tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "root", w.Body.String())
	assert.Equal(t, http.StatusOK, do(r, "/role-only", tok).Code)
}

func TestSession_UserLookupFails(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"deleted user", fmt.Errorf("user u9: %w", apperr.ErrNotFound)},
		{"store failure", errors.New("connection reset")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			finder := NewMockUserFinder(ctrl)
			tokens := auth.NewTokenManager([]byte("k"), time.Hour)
			tok, err := tokens.Issue("u9")
			require.NoError(t, err)

			finder.EXPECT().FindUserByID(gomock.Any(), "u9").Return(nil, tt.err)
			r := newSessionEngine(finder, tokens)

			assert.Equal(t, http.StatusUnauthorized, do(r, "/auth", tok).Code)
		})
	}
}

func TestSession_GuardWithoutAttachUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewSession(NewMockUserFinder(ctrl), auth.NewTokenManager([]byte("k"), time.Hour), testCookie, logging.Discard())

	r := gin.New()
	r.GET("/auth", append(s.Authenticated(), func(c *gin.Context) { c.Status(http.StatusOK) })...)
	r.GET("/admin", append(s.AdminOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })...)

	assert.Equal(t, http.StatusInternalServerError, do(r, "/auth", "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(r, "/admin", "").Code)
}
