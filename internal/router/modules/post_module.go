package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-social/internal/application"
	handlers "github.com/oksasatya/go-ddd-social/internal/interface/http"
	"github.com/oksasatya/go-ddd-social/internal/interface/middleware"
)

// PostModule wires post and profile routes.
// Public (viewer optional): GET /posts/:id, /posts/search, /profile/:username, /profile/:username/posts
// Protected: POST /posts, POST /posts/export
type PostModule struct {
	Posts    *handlers.PostHandler
	Profiles *handlers.ProfileHandler
	Sessions application.Authenticator
	Tokens   application.Authenticator
}

func NewPostModule(posts *handlers.PostHandler, profiles *handlers.ProfileHandler, sessions, tokens application.Authenticator) *PostModule {
	return &PostModule{Posts: posts, Profiles: profiles, Sessions: sessions, Tokens: tokens}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	public := rg.Group("/")
	public.Use(middleware.Viewer(m.Sessions, m.Tokens))
	{
		public.GET("/posts/search", m.Posts.Search)
		public.GET("/posts/:id", m.Posts.Get)
		public.GET("/profile/:username", m.Profiles.Show)
		public.GET("/profile/:username/posts", m.Posts.ByAuthor)
	}

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions, m.Tokens))
	{
		auth.POST("/posts", m.Posts.Create)
		auth.POST("/posts/export", m.Posts.Export)
	}
}
