package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a sellable product. Prices are stored in cents.
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Barcode       string         `gorm:"size:100;unique;not null" json:"barcode"`
	Price         int64          `gorm:"default:0" json:"-"` // Stored in cents
	DiscountPrice *int64         `json:"-"`                  // Stored in cents, flat discounted price
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// BasePrice returns the undiscounted unit price in cents.
func (p *Product) BasePrice() int64 {
	return p.Price
}

// DiscountedPrice returns the flat discounted unit price, or nil when no
// better price is available.
func (p *Product) DiscountedPrice() *int64 {
	return p.DiscountPrice
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	out := struct {
		Alias
		Price         float64  `json:"price"`
		DiscountPrice *float64 `json:"discount_price,omitempty"`
	}{
		Alias: Alias(p),
		Price: float64(p.Price) / 100,
	}
	if p.DiscountPrice != nil {
		d := float64(*p.DiscountPrice) / 100
		out.DiscountPrice = &d
	}
	return json.Marshal(out)
}

// PricedProduct is the pricing decorator: a product optionally tagged with a
// discount-campaign percentage. The plain variant passes the base price
// through; the discounted variant computes price - percent/100 * price
// without mutating the underlying product.
type PricedProduct struct {
	Product *Product
	Percent *int
}

// NewPricedProduct wraps a product with no campaign applied.
func NewPricedProduct(p *Product) *PricedProduct {
	return &PricedProduct{Product: p}
}

// NewDiscountedProduct wraps a product with a discount percentage applied.
func NewDiscountedProduct(p *Product, percent int) *PricedProduct {
	return &PricedProduct{Product: p, Percent: &percent}
}

// BasePrice returns the wrapped product's unit price in cents.
func (d *PricedProduct) BasePrice() int64 {
	return d.Product.BasePrice()
}

// DiscountedPrice returns the campaign-discounted unit price, or nil for the
// plain variant.
func (d *PricedProduct) DiscountedPrice() *int64 {
	if d.Percent == nil {
		return nil
	}
	price := d.Product.BasePrice()
	discounted := price - int64(*d.Percent)*price/100
	return &discounted
}

// Discounted reports whether a discount campaign applies to the product.
func (d *PricedProduct) Discounted() bool {
	return d.Percent != nil
}

// MarshalJSON flattens the wrapped product and adds the campaign price as a
// decimal discounted_price when one applies
func (d PricedProduct) MarshalJSON() ([]byte, error) {
	type Alias Product
	out := struct {
		Alias
		Price           float64  `json:"price"`
		DiscountPrice   *float64 `json:"discount_price,omitempty"`
		DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	}{
		Alias: Alias(*d.Product),
		Price: float64(d.Product.Price) / 100,
	}
	if d.Product.DiscountPrice != nil {
		v := float64(*d.Product.DiscountPrice) / 100
		out.DiscountPrice = &v
	}
	if p := d.DiscountedPrice(); p != nil {
		v := float64(*p) / 100
		out.DiscountedPrice = &v
	}
	return json.Marshal(out)
}
