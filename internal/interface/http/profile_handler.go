package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-social/internal/application"
	"github.com/oksasatya/go-ddd-social/pkg/response"
)

type ProfileHandler struct {
	Svc *application.ProfileService
}

func NewProfileHandler(svc *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{Svc: svc}
}

// Show GET /api/profile/:username
func (h *ProfileHandler) Show(c *gin.Context) {
	p, err := h.Svc.Build(c.Request.Context(), c.Param("username"), viewerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}
