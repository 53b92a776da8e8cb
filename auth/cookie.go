package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie describes the HTTP-only cookie the session token travels in.
type Cookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (ck Cookie) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.Name, token, int(ck.TTL.Seconds()), "/", "", ck.Secure, true)
}

// Clear overwrites the cookie with an empty, already-expired value.
func (ck Cookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.Name, "", -1, "/", "", ck.Secure, true)
}

// Read returns the token from the request cookie, or "" when absent.
func (ck Cookie) Read(c *gin.Context) string {
	v, err := c.Cookie(ck.Name)
	if err != nil {
		return ""
	}
	return v
}
