package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/exporter"
	"salesdesk/internal/importer"
	"salesdesk/internal/model"
)

// GetState returns the full dashboard state.
// GET /api/state
func (h *Handler) GetState(c *gin.Context) {
	state, err := h.coordinator.State()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// ListRepresentatives returns the representative list.
// GET /api/representatives
func (h *Handler) ListRepresentatives(c *gin.Context) {
	state, err := h.coordinator.State()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state.Representatives)
}

// AddRepresentative creates a representative from form input. Its ID is
// assigned server-side and both period records are zero-initialized.
// POST /api/representatives
func (h *Handler) AddRepresentative(c *gin.Context) {
	var rep model.Representative
	if err := c.ShouldBindJSON(&rep); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid representative payload"})
		return
	}

	created, err := h.coordinator.AddRepresentative(rep)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateRepresentative replaces an existing representative in place.
// PATCH /api/representatives/:id
func (h *Handler) UpdateRepresentative(c *gin.Context) {
	var rep model.Representative
	if err := c.ShouldBindJSON(&rep); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid representative payload"})
		return
	}
	rep.ID = c.Param("id")

	updated, err := h.coordinator.UpdateRepresentative(rep)
	if errors.Is(err, importer.ErrRepresentativeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "representative not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RemoveRepresentative deletes a representative and cascade-deletes its
// performance records in every period.
// DELETE /api/representatives/:id
func (h *Handler) RemoveRepresentative(c *gin.Context) {
	err := h.coordinator.RemoveRepresentative(c.Param("id"))
	if errors.Is(err, importer.ErrRepresentativeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "representative not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// PromotionTemplate renders the promotion message for a representative.
// GET /api/representatives/:id/template?period=
func (h *Handler) PromotionTemplate(c *gin.Context) {
	period := model.Period(c.DefaultQuery("period", string(model.PeriodCurrentMonth)))
	if !period.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown period"})
		return
	}

	state, err := h.coordinator.State()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	for _, rep := range state.Representatives {
		if rep.ID == id {
			rec := state.Performance.Record(period, id)
			c.JSON(http.StatusOK, gin.H{"template": exporter.PromotionMessage(rep, rec)})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "representative not found"})
}
