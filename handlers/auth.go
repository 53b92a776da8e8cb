package handlers

import (
	"errors"
	"net/http"
	"sync"

	"food-order-api/apperr"
	"food-order-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

const invalidCredentials = "Invalid email or password"

// unknownUser is compared against when the email has no account, so both
// login failures cost one bcrypt comparison.
var unknownUser = sync.OnceValue(func() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("unknown-user-placeholder"), bcrypt.DefaultCost)
	return &models.User{Password: string(hash)}
})

// Signup creates a User account. Admins are never created here.
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if !h.bind(c, &req) {
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), req.Name, req.Email, req.Password, models.RoleUser)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.log.InfoContext(c.Request.Context(), "user signed up", "user_id", user.ID)
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login verifies the credentials and sets the session cookie. Unknown
// emails and wrong passwords get the same response.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !h.bind(c, &req) {
		return
	}

	user, err := h.store.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			h.respondError(c, err)
			return
		}
		unknownUser().CheckPassword(req.Password)
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidCredentials})
		return
	}
	if !user.CheckPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidCredentials})
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.cookie.Set(c, token)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout clears the session cookie whether or not the caller was signed in.
func (h *Handler) Logout(c *gin.Context) {
	h.cookie.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the signed-in user's profile.
func (h *Handler) Me(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
