package request

// CreateProductRequest represents a product creation request. Prices are
// decimal; the handler converts to cents.
type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=255"`
	Barcode       string   `json:"barcode" binding:"required,max=100"`
	Price         float64  `json:"price" binding:"min=0"`
	DiscountPrice *float64 `json:"discount_price" binding:"omitempty,min=0"`
}

// UpdateProductPriceRequest represents a price overwrite request
type UpdateProductPriceRequest struct {
	Price float64 `json:"price" binding:"min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
