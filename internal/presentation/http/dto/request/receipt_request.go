package request

import "github.com/google/uuid"

// CreateReceiptRequest opens a receipt against a shift
type CreateReceiptRequest struct {
	ShiftID uuid.UUID `json:"shift_id" binding:"required"`
}

// AddItemRequest adds a product, combo or gift line to a receipt. ID names
// the product or campaign being sold.
type AddItemRequest struct {
	ID       uuid.UUID `json:"id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// PayReceiptRequest settles a receipt in the given currency; empty means the
// home currency.
type PayReceiptRequest struct {
	Currency string `json:"currency" binding:"omitempty,len=3,uppercase"`
}
