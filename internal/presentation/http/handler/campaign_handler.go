package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sandrok/posify-api/internal/application/service"
	"github.com/sandrok/posify-api/internal/presentation/http/dto/request"
	"github.com/sandrok/posify-api/internal/presentation/http/dto/response"
)

// CampaignHandler handles campaign-related HTTP requests
type CampaignHandler struct {
	campaignService *service.CampaignService
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignService *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// CreateDiscount handles creating a percentage campaign
func (h *CampaignHandler) CreateDiscount(c *gin.Context) {
	var req request.CreateDiscountCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	campaign, err := h.campaignService.CreateDiscountCampaign(c.Request.Context(), req.Discount, req.ProductIDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Discount campaign created successfully", campaign)
}

// CreateCombo handles creating a combo campaign
func (h *CampaignHandler) CreateCombo(c *gin.Context) {
	var req request.CreateComboCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	products := make([]service.ComboProductInput, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, service.ComboProductInput{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
		})
	}

	campaign, err := h.campaignService.CreateComboCampaign(c.Request.Context(), ToCents(req.Discount), products)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Combo campaign created successfully", campaign)
}

// CreateBuyNGetN handles creating a buy-N-get-N campaign
func (h *CampaignHandler) CreateBuyNGetN(c *gin.Context) {
	var req request.CreateBuyNGetNCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	campaign, err := h.campaignService.CreateBuyNGetNCampaign(c.Request.Context(),
		service.ComboProductInput{ProductID: req.Buy.ProductID, Quantity: req.Buy.Quantity},
		service.ComboProductInput{ProductID: req.Gift.ProductID, Quantity: req.Gift.Quantity},
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Buy-N-get-N campaign created successfully", campaign)
}

// CreateReceiptDiscount handles creating a receipt-level flat discount
func (h *CampaignHandler) CreateReceiptDiscount(c *gin.Context) {
	var req request.CreateReceiptCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	campaign, err := h.campaignService.CreateReceiptCampaign(c.Request.Context(),
		ToCents(req.Amount), ToCents(req.Discount))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Receipt campaign created successfully", campaign)
}

// Get handles retrieving a campaign of any type by id
func (h *CampaignHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	campaign, err := h.campaignService.GetCampaign(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Campaign retrieved successfully", campaign)
}

// List handles listing all campaigns across the four types
func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.campaignService.ListCampaigns(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Campaigns retrieved successfully", campaigns)
}

// Delete handles removing a campaign of any type
func (h *CampaignHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.campaignService.DeleteCampaign(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddProductToCombo handles appending a product snapshot to a combo
func (h *CampaignHandler) AddProductToCombo(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.CampaignProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	campaign, err := h.campaignService.AddProductToCombo(c.Request.Context(), id, service.ComboProductInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product added to combo campaign", campaign)
}

// AddProductToDiscount handles making a product eligible for a percentage
// campaign
func (h *CampaignHandler) AddProductToDiscount(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	productID, ok := ParseUUIDParam(c, "productId")
	if !ok {
		return
	}

	campaign, err := h.campaignService.AddProductToDiscount(c.Request.Context(), id, productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product added to discount campaign", campaign)
}

// RemoveProductFromDiscount handles withdrawing a product's eligibility
func (h *CampaignHandler) RemoveProductFromDiscount(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	productID, ok := ParseUUIDParam(c, "productId")
	if !ok {
		return
	}

	campaign, err := h.campaignService.RemoveProductFromDiscount(c.Request.Context(), id, productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product removed from discount campaign", campaign)
}
