package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sandrok/posify-api/internal/application/service"
	"github.com/sandrok/posify-api/internal/presentation/http/dto/response"
)

// ReportHandler handles X/Z report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// XReport handles the X report over all shifts
func (h *ReportHandler) XReport(c *gin.Context) {
	report, err := h.reportService.XReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "X report generated successfully", report)
}

// ZReport handles the Z report over one closed shift
func (h *ReportHandler) ZReport(c *gin.Context) {
	shiftID, ok := ParseUUIDParam(c, "shiftId")
	if !ok {
		return
	}

	report, err := h.reportService.ZReport(c.Request.Context(), shiftID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Z report generated successfully", report)
}
