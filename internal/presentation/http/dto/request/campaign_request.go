package request

import "github.com/google/uuid"

// CreateDiscountCampaignRequest creates a percentage campaign
type CreateDiscountCampaignRequest struct {
	Discount   int         `json:"discount" binding:"required,min=1,max=100"`
	ProductIDs []uuid.UUID `json:"product_ids"`
}

// CampaignProductRequest names one product with a quantity
type CampaignProductRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateComboCampaignRequest creates a combo campaign. Discount is decimal;
// the handler converts to cents.
type CreateComboCampaignRequest struct {
	Discount float64                  `json:"discount" binding:"min=0"`
	Products []CampaignProductRequest `json:"products" binding:"required,min=1,dive"`
}

// CreateBuyNGetNCampaignRequest creates a buy-N-get-N campaign
type CreateBuyNGetNCampaignRequest struct {
	Buy  CampaignProductRequest `json:"buy_product" binding:"required"`
	Gift CampaignProductRequest `json:"gift_product" binding:"required"`
}

// CreateReceiptCampaignRequest creates a receipt-level flat discount. Amount
// is the minimum qualifying total, decimal.
type CreateReceiptCampaignRequest struct {
	Amount   float64 `json:"amount" binding:"min=0"`
	Discount float64 `json:"discount" binding:"min=0"`
}
