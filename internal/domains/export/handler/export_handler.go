package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"publishing-backend/internal/domains/export"
	"publishing-backend/internal/shared/response"
	"publishing-backend/pkg/logger"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportHandler struct {
	service export.Service
}

func NewExportHandler(service export.Service) *ExportHandler {
	return &ExportHandler{service: service}
}

// Authors handles GET /api/exports/authors?format=csv|json|xlsx (admin)
func (h *ExportHandler) Authors(c *gin.Context) {
	format, ok := h.format(c, export.FormatCSV)
	if !ok {
		return
	}

	rows, err := h.service.Authors(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if format == export.FormatJSON {
		h.writeJSON(c, "authors", gin.H{"authors": rows})
		return
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record())
	}
	h.writeTabular(c, format, "authors", export.AuthorHeader(), records)
}

// Titles handles GET /api/exports/titles?format=csv|json|xlsx (admin)
func (h *ExportHandler) Titles(c *gin.Context) {
	format, ok := h.format(c, export.FormatCSV)
	if !ok {
		return
	}

	rows, err := h.service.Titles(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if format == export.FormatJSON {
		h.writeJSON(c, "titles", gin.H{"titles": rows})
		return
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record())
	}
	h.writeTabular(c, format, "titles", export.TitleHeader(), records)
}

// AuthorsWithTitles handles
// GET /api/exports/authors-with-titles?format=csv|json|xlsx&includeInactive=true|false (admin)
func (h *ExportHandler) AuthorsWithTitles(c *gin.Context) {
	// The joined report is primarily consumed as JSON.
	format, ok := h.format(c, export.FormatJSON)
	if !ok {
		return
	}

	includeInactive := true
	if raw := c.Query("includeInactive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "includeInactive must be true or false")
			return
		}
		includeInactive = v
	}

	report, err := h.service.AuthorsWithTitles(c.Request.Context(), includeInactive)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if format == export.FormatJSON {
		h.writeJSON(c, "authors-with-titles", gin.H{"authors": report})
		return
	}

	records := [][]string{}
	for _, entry := range report {
		records = append(records, entry.Records()...)
	}
	h.writeTabular(c, format, "authors-with-titles", export.JoinedHeader(), records)
}

func (h *ExportHandler) format(c *gin.Context, fallback export.Format) (export.Format, bool) {
	format := export.Format(c.DefaultQuery("format", string(fallback)))
	if !format.IsValid() {
		response.BadRequest(c, "Invalid export format")
		return "", false
	}
	return format, true
}

func (h *ExportHandler) writeJSON(c *gin.Context, name string, payload gin.H) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.json", name))
	c.JSON(http.StatusOK, payload)
}

func (h *ExportHandler) writeTabular(c *gin.Context, format export.Format, name string, header []string, records [][]string) {
	switch format {
	case export.FormatCSV:
		c.Header("Content-Type", contentTypeCSV)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", name))
		c.Status(http.StatusOK)
		if err := export.WriteCSV(c.Writer, header, records); err != nil {
			logger.Error("csv export write failed", err)
		}
	case export.FormatXLSX:
		f, err := export.BuildXLSX(name, header, records)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.Header("Content-Type", contentTypeXLSX)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", name))
		c.Status(http.StatusOK)
		if err := f.Write(c.Writer); err != nil {
			logger.Error("xlsx export write failed", err)
		}
	}
}

func (h *ExportHandler) handleError(c *gin.Context, err error) {
	logger.Error("export handler error", err)
	response.InternalServerError(c, "Server error")
}
