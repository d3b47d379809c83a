// Package api exposes the dashboard over a local HTTP API.
package api

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/importer"
	"salesdesk/internal/store"
)

// Handler holds the API dependencies.
type Handler struct {
	store       *store.Store
	coordinator *importer.Coordinator
}

// NewHandler creates the API handler.
func NewHandler(s *store.Store) *Handler {
	return &Handler{
		store:       s,
		coordinator: importer.NewCoordinator(s),
	}
}

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/state", h.GetState)

	router.GET("/representatives", h.ListRepresentatives)
	router.POST("/representatives", h.AddRepresentative)
	router.PATCH("/representatives/:id", h.UpdateRepresentative)
	router.DELETE("/representatives/:id", h.RemoveRepresentative)
	router.GET("/representatives/:id/template", h.PromotionTemplate)

	router.POST("/upload", h.Upload)
	router.GET("/summary", h.GetSummary)
	router.GET("/templates/blank", h.BlankTemplate)
}
