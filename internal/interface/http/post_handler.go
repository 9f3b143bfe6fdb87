package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-social/internal/application"
	"github.com/oksasatya/go-ddd-social/pkg/response"
	"github.com/oksasatya/go-ddd-social/pkg/validation"
)

type PostHandler struct {
	Svc      *application.PostService
	Exporter *application.PostExporter
	Logger   *logrus.Logger
}

func NewPostHandler(svc *application.PostService, exporter *application.PostExporter, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Exporter: exporter, Logger: logger}
}

type searchRequest struct {
	Q    string `form:"q" binding:"required,max=200"`
	Size int    `form:"size" binding:"omitempty,min=1,max=50"`
}

// Create POST /api/posts {title, body}
func (h *PostHandler) Create(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}
	in := application.PostInput{
		Title: application.StringField(body, "title"),
		Body:  application.StringField(body, "body"),
	}
	if err := h.Svc.Create(c.Request.Context(), in, viewerID(c)); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusCreated, nil, "New post successfully created.", nil)
}

// Get GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.FindByID(c.Request.Context(), c.Param("id"), viewerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post", nil)
}

// ByAuthor GET /api/profile/:username/posts
func (h *PostHandler) ByAuthor(c *gin.Context) {
	posts, err := h.Svc.FindByAuthorUsername(c.Request.Context(), c.Param("username"), viewerID(c))
	if errors.Is(err, application.ErrNotFound) {
		response.Error[any](c, http.StatusNotFound, "Sorry, invalid user requested.", nil)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts", nil)
}

// Search GET /api/posts/search?q=
func (h *PostHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}
	posts, err := h.Svc.Search(c.Request.Context(), req.Q, viewerID(c), req.Size)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "search results", nil)
}

// Export POST /api/posts/export
func (h *PostHandler) Export(c *gin.Context) {
	url, err := h.Exporter.Export(c.Request.Context(), viewerID(c))
	if errors.Is(err, application.ErrExportUnavailable) {
		response.Error[any](c, http.StatusNotImplemented, "export unavailable", nil)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"url": url}, "export written", nil)
}
