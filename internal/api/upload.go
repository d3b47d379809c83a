package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/calculator"
	"salesdesk/internal/exporter"
	"salesdesk/internal/importer"
	"salesdesk/internal/model"
	"salesdesk/internal/parser"
)

// Upload ingests one report file. productType and period arrive out-of-band
// as form fields; confirmNew carries the accept/decline answer for names the
// parse did not recognize.
// POST /api/upload (multipart: file, productType, period, confirmNew)
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no upload file found"})
		return
	}

	productType := model.ProductType(c.PostForm("productType"))
	if !productType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown product type"})
		return
	}
	period := model.Period(c.DefaultPostForm("period", string(model.PeriodCurrentMonth)))
	if !period.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown period"})
		return
	}

	var decision importer.Decision
	switch c.PostForm("confirmNew") {
	case "":
		decision = importer.DecisionNone
	case "true":
		decision = importer.DecisionAccept
	case "false":
		decision = importer.DecisionDecline
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmNew must be true or false"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload could not be read"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload could not be read"})
		return
	}

	summary, err := h.coordinator.Upload(data, importer.UploadOptions{
		Filename:    fileHeader.Filename,
		ProductType: productType,
		Period:      period,
		Decision:    decision,
	})
	switch {
	case errors.Is(err, importer.ErrUploadInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, parser.ErrUnreadableFile), errors.Is(err, parser.ErrMalformedReport):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSummary returns the team metrics for one period.
// GET /api/summary?period=
func (h *Handler) GetSummary(c *gin.Context) {
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
	c.JSON(http.StatusOK, calculator.TeamMetricsFor(state, period))
}

// BlankTemplate streams an empty report workbook for a product type.
// GET /api/templates/blank?productType=
func (h *Handler) BlankTemplate(c *gin.Context) {
	productType := model.ProductType(c.Query("productType"))

	data, err := exporter.BlankTemplate(productType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+string(productType)+`_template.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
