package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sandrok/posify-api/internal/application/service"
	"github.com/sandrok/posify-api/internal/presentation/http/dto/response"
)

// ShiftHandler handles shift-related HTTP requests
type ShiftHandler struct {
	shiftService *service.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// Create handles opening a new shift
func (h *ShiftHandler) Create(c *gin.Context) {
	shift, err := h.shiftService.CreateShift(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Shift opened successfully", shift)
}

// Get handles retrieving a shift with its paid receipts
func (h *ShiftHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	shift, err := h.shiftService.GetShift(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Shift retrieved successfully", shift)
}

// Close handles closing a shift
func (h *ShiftHandler) Close(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	shift, err := h.shiftService.CloseShift(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Shift closed successfully", shift)
}
