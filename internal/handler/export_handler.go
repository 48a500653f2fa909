package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isfdyt26/portal-api/internal/service"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
	"github.com/isfdyt26/portal-api/pkg/response"
)

// ExportHandler serves downloadable administrative reports.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs a new ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// JustificationsCSV godoc
// @Summary Download justification requests as CSV
// @Tags Exports
// @Produce text/csv
// @Success 200 {file} file
// @Router /exports/justifications.csv [get]
func (h *ExportHandler) JustificationsCSV(c *gin.Context) {
	data, err := h.exports.JustificationsCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("justificaciones_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// FinalsPDF godoc
// @Summary Download the final exam roster as PDF
// @Tags Exports
// @Produce application/pdf
// @Success 200 {file} file
// @Router /exports/finals.pdf [get]
func (h *ExportHandler) FinalsPDF(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	data, err := h.exports.FinalsPDF(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("mesas_finales_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
