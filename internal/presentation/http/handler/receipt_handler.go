package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sandrok/posify-api/internal/application/service"
	"github.com/sandrok/posify-api/internal/presentation/http/dto/request"
	"github.com/sandrok/posify-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	paymentService *service.PaymentService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, paymentService *service.PaymentService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		paymentService: paymentService,
	}
}

// Create handles opening a receipt against an open shift
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), req.ShiftID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Receipt created successfully", receipt)
}

// Get handles retrieving a receipt with any qualifying receipt-level discount
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Delete handles removing an open receipt
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddProduct handles adding a product line to a receipt
func (h *ReceiptHandler) AddProduct(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receipt, err := h.receiptService.AddProduct(c.Request.Context(), id, req.ID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product added to receipt", receipt)
}

// AddCombo handles adding a combo campaign line to a receipt
func (h *ReceiptHandler) AddCombo(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receipt, err := h.receiptService.AddCombo(c.Request.Context(), id, req.ID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Combo added to receipt", receipt)
}

// AddGift handles adding a buy-N-get-N campaign line to a receipt
func (h *ReceiptHandler) AddGift(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receipt, err := h.receiptService.AddGift(c.Request.Context(), id, req.ID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Gift added to receipt", receipt)
}

// DeleteItem handles removing one unit of a line from a receipt
func (h *ReceiptHandler) DeleteItem(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := ParseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	receipt, err := h.receiptService.DeleteItem(c.Request.Context(), id, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed from receipt", receipt)
}

// Pay handles settling a receipt in the requested currency
func (h *ReceiptHandler) Pay(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.PayReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.paymentService.Pay(c.Request.Context(), id, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt paid successfully", result)
}
