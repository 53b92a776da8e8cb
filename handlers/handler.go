package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"food-order-api/apperr"
	"food-order-api/auth"
	"food-order-api/middleware"
	"food-order-api/models"
	"food-order-api/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Handler serves every route of the API.
type Handler struct {
	store  *store.Store
	tokens *auth.TokenManager
	cookie auth.Cookie
	log    *slog.Logger

	// enforceOwnership restricts order edits and deletes to the user who
	// placed the order or an Admin.
	enforceOwnership bool
}

func New(s *store.Store, tokens *auth.TokenManager, cookie auth.Cookie, enforceOwnership bool, log *slog.Logger) *Handler {
	return &Handler{
		store:            s,
		tokens:           tokens,
		cookie:           cookie,
		log:              log,
		enforceOwnership: enforceOwnership,
	}
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		models.Configure(v)
	}
}

// bind decodes the JSON body into req and answers 400 on failure. Binding
// errors are reported in the same field/reason form as model errors.
func (h *Handler) bind(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	if fe := models.FieldError(err); fe != nil {
		h.respondError(c, fe)
		return false
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		h.respondError(c, apperr.Invalid(typeErr.Field, "has the wrong type"))
		return false
	}
	h.respondError(c, apperr.Invalid("", "request body must be a JSON object"))
	return false
}

// respondError maps err onto the error taxonomy and writes the response.
func (h *Handler) respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := apperr.Status(err)

	var ve *apperr.ValidationError
	msg := err.Error()
	switch {
	case errors.As(err, &ve):
		msg = ve.Error()
	case errors.Is(err, apperr.ErrDuplicate):
		msg = "Email already registered"
	case status == http.StatusInternalServerError:
		h.log.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(), "request_id", middleware.GetRequestID(c), "error", err)
		msg = "Internal server error"
	}
	c.JSON(status, gin.H{"error": msg})
}

// currentUser is only called behind RequireAuth, so a missing user is a
// wiring bug and reported as 401 rather than panicking.
func (h *Handler) currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.respondError(c, apperr.ErrUnauthenticated)
	}
	return user, ok
}
