package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-social/internal/application"
	"github.com/oksasatya/go-ddd-social/pkg/helpers"
	"github.com/oksasatya/go-ddd-social/pkg/response"
)

type UserHandler struct {
	Svc      *application.UserService
	Sessions *helpers.SessionAuthenticator
	Tokens   helpers.TokenAuthenticator
	Logger   *logrus.Logger
	Cookies  *helpers.Manager
}

func NewUserHandler(svc *application.UserService, sessions *helpers.SessionAuthenticator, tokens helpers.TokenAuthenticator, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, Sessions: sessions, Tokens: tokens, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

// Register POST /api/register {username, email, password}
func (h *UserHandler) Register(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username: application.StringField(body, "username"),
		Email:    application.StringField(body, "email"),
		Password: application.StringField(body, "password"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	h.startSession(c, helpers.SessionUser{UserID: u.ID, Username: u.Username, Avatar: u.Avatar})
	response.Success(c, http.StatusCreated, u, "registered", nil)
}

// Login POST /api/login {username, password}
func (h *UserHandler) Login(c *gin.Context) {
	u, ok := h.authenticate(c)
	if !ok {
		return
	}
	h.startSession(c, helpers.SessionUser{UserID: u.ID, Username: u.Username, Avatar: u.Avatar})
	response.Success(c, http.StatusOK, gin.H{"id": u.ID, "username": u.Username, "avatar": u.Avatar}, "login successful", nil)
}

// APILogin POST /api/token {username, password} returns a stateless token.
func (h *UserHandler) APILogin(c *gin.Context) {
	u, ok := h.authenticate(c)
	if !ok {
		return
	}
	token, exp, err := h.Tokens.Issue(u.ID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", u.ID).Error("issue api token failed")
		}
		response.Error[any](c, http.StatusInternalServerError, application.MsgTryAgainLater, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"token": token}, "token issued", map[string]any{"expires_at": exp})
}

func (h *UserHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(helpers.SessionCookie); err == nil && token != "" {
		if err := h.Sessions.End(c.Request.Context(), token); err != nil && h.Logger != nil {
			h.Logger.WithError(err).Warn("end session failed")
		}
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// Me GET /api/me returns the user behind the session cookie.
func (h *UserHandler) Me(c *gin.Context) {
	token, err := c.Cookie(helpers.SessionCookie)
	if err != nil || token == "" || h.Sessions == nil {
		response.Error[any](c, http.StatusUnauthorized, "You must be logged in to perform that action.", nil)
		return
	}
	u, err := h.Sessions.Current(c.Request.Context(), token)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "You must be logged in to perform that action.", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": u.UserID, "username": u.Username, "avatar": u.Avatar}, "current user", nil)
}

// DoesUsernameExist POST /api/does-username-exist {username}
func (h *UserHandler) DoesUsernameExist(c *gin.Context) {
	h.exists(c, "username", h.Svc.CheckUsernameExists)
}

// DoesEmailExist POST /api/does-email-exist {email}
func (h *UserHandler) DoesEmailExist(c *gin.Context) {
	h.exists(c, "email", h.Svc.CheckEmailExists)
}

func (h *UserHandler) exists(c *gin.Context, field string, lookup func(context.Context, string) (bool, error)) {
	body, ok := bindObject(c)
	if !ok {
		return
	}
	v := application.StringField(body, field)
	if v == nil {
		response.Success(c, http.StatusOK, gin.H{"exists": false}, field+" exists", nil)
		return
	}
	found, err := lookup(c.Request.Context(), *v)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("field", field).Error("existence check failed")
		}
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exists": found}, field+" exists", nil)
}

func (h *UserHandler) authenticate(c *gin.Context) (*application.AuthenticatedUser, bool) {
	body, ok := bindObject(c)
	if !ok {
		return nil, false
	}
	u, err := h.Svc.Authenticate(c.Request.Context(), application.CredentialsInput{
		Username: application.StringField(body, "username"),
		Password: application.StringField(body, "password"),
	})
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return u, true
}

// startSession sets the session cookie. A session store failure is logged and
// the request still succeeds without a cookie.
func (h *UserHandler) startSession(c *gin.Context, u helpers.SessionUser) {
	if h.Sessions == nil {
		return
	}
	token, exp, err := h.Sessions.Start(c.Request.Context(), u)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", u.UserID).Warn("start session failed")
		}
		return
	}
	h.Cookies.SetSession(c, token, exp)
}
