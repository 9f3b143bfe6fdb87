package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-social/internal/application"
	handlers "github.com/oksasatya/go-ddd-social/internal/interface/http"
)

// UserModule wires account routes.
// Public: POST /register, /login, /token, /logout, /does-username-exist, /does-email-exist; GET /me
type UserModule struct {
	Handler  *handlers.UserHandler
	Sessions application.Authenticator
	Tokens   application.Authenticator
}

func NewUserModule(h *handlers.UserHandler, sessions, tokens application.Authenticator) *UserModule {
	return &UserModule{Handler: h, Sessions: sessions, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	rg.POST("/token", m.Handler.APILogin)
	rg.POST("/logout", m.Handler.Logout)
	rg.GET("/me", m.Handler.Me)
	rg.POST("/does-username-exist", m.Handler.DoesUsernameExist)
	rg.POST("/does-email-exist", m.Handler.DoesEmailExist)
}
