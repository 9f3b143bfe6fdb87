package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-social/internal/application"
	"github.com/oksasatya/go-ddd-social/pkg/helpers"
	"github.com/oksasatya/go-ddd-social/pkg/response"
)

const CtxUserIDKey = "userID"

// bearer returns the token from "Authorization: Bearer <token>".
func bearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// resolve checks the session cookie first, then an API bearer token.
func resolve(c *gin.Context, session, api application.Authenticator) (string, bool) {
	ctx := c.Request.Context()
	if token, err := c.Cookie(helpers.SessionCookie); err == nil && token != "" && session != nil {
		if uid, err := session.Verify(ctx, token); err == nil {
			return uid, true
		}
	}
	if token := bearer(c); token != "" && api != nil {
		if uid, err := api.Verify(ctx, token); err == nil {
			return uid, true
		}
	}
	return "", false
}

// Auth rejects requests without a valid session or API token and sets
// userID in the Gin context otherwise.
func Auth(session, api application.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := resolve(c, session, api)
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "You must be logged in to perform that action.", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}

// Viewer sets userID when the caller is logged in and lets anonymous
// requests through.
func Viewer(session, api application.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid, ok := resolve(c, session, api); ok {
			c.Set(CtxUserIDKey, uid)
		}
		c.Next()
	}
}
