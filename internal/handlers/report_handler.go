package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"opsboard/internal/pdf"
	"opsboard/internal/services"
)

type ReportHandler struct {
	service services.ReportService
	pdfGen  *pdf.ReportGenerator
}

func NewReportHandler(service services.ReportService, pdfGen *pdf.ReportGenerator) *ReportHandler {
	return &ReportHandler{service: service, pdfGen: pdfGen}
}

// GET /projects/:id/report
func (h *ReportHandler) ProjectSummary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	summary, _, err := h.service.ProjectSummary(c.Request.Context(), id)
	if err != nil {
		log.Printf("[report][summary][err] project=%d: %v", id, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /projects/:id/report.pdf
func (h *ReportHandler) ProjectReportPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	summary, tasks, err := h.service.ProjectSummary(c.Request.Context(), id)
	if err != nil {
		log.Printf("[report][pdf][err] project=%d: %v", id, err)
		respondError(c, err)
		return
	}
	data, err := h.pdfGen.ProjectReport(summary, tasks)
	if err != nil {
		log.Printf("[report][pdf][err] render project=%d: %v", id, err)
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("project-%d-report.pdf", id)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
