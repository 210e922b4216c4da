package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/enum"
	"github.com/sandrok/posify-api/pkg/apperror"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReceiptItem is one line on a receipt. A single table holds all three
// variants, discriminated by Type; variant-specific fields (combo
// constituents, gift buy/gift sub-items) live in the JSON payload column.
//
// RefID is the id of whatever the line sells - a product or a campaign - and
// is the merge/delete key within a receipt.
type ReceiptItem struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"-"`
	ReceiptID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	RefID             uuid.UUID      `gorm:"type:uuid;not null;index" json:"id"`
	Type              enum.ItemType  `gorm:"default:0" json:"type"`
	Quantity          int            `gorm:"not null" json:"quantity"`
	UnitPrice         int64          `gorm:"not null" json:"-"` // Stored in cents
	DiscountUnitPrice *int64         `json:"-"`                 // Stored in cents
	Total             int64          `gorm:"default:0" json:"-"`
	DiscountTotal     *int64         `json:"-"`
	Payload           datatypes.JSON `gorm:"column:payload" json:"-"`

	// Decoded payload, populated by hooks. Only combo lines carry Products;
	// only gift lines carry Buy/Gift.
	Products []ProductSnapshot `gorm:"-" json:"products,omitempty"`
	Buy      *ProductSnapshot  `gorm:"-" json:"buy,omitempty"`
	Gift     *ProductSnapshot  `gorm:"-" json:"gift,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// itemPayload is the JSON shape of the variant-specific column.
type itemPayload struct {
	Products []ProductSnapshot `json:"products,omitempty"`
	Buy      *ProductSnapshot  `json:"buy,omitempty"`
	Gift     *ProductSnapshot  `json:"gift,omitempty"`
}

// BeforeCreate generates a UUID before creating a new receipt item
func (i *ReceiptItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeSave serializes the decoded variant fields into the payload column
func (i *ReceiptItem) BeforeSave(tx *gorm.DB) error {
	if len(i.Products) == 0 && i.Buy == nil && i.Gift == nil {
		i.Payload = nil
		return nil
	}
	raw, err := json.Marshal(itemPayload{Products: i.Products, Buy: i.Buy, Gift: i.Gift})
	if err != nil {
		return err
	}
	i.Payload = raw
	return nil
}

// AfterFind decodes the payload column back into the variant fields
func (i *ReceiptItem) AfterFind(tx *gorm.DB) error {
	if len(i.Payload) == 0 {
		return nil
	}
	var p itemPayload
	if err := json.Unmarshal(i.Payload, &p); err != nil {
		return err
	}
	i.Products = p.Products
	i.Buy = p.Buy
	i.Gift = p.Gift
	return nil
}

// TableName returns the table name for the ReceiptItem model
func (ReceiptItem) TableName() string {
	return "receipt_items"
}

// Price returns unit price times quantity, in cents.
func (i *ReceiptItem) Price() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// DiscountedPrice returns the discounted unit price times quantity, or nil
// when the line carries no discount.
func (i *ReceiptItem) DiscountedPrice() *int64 {
	if i.DiscountUnitPrice == nil {
		return nil
	}
	v := *i.DiscountUnitPrice * int64(i.Quantity)
	return &v
}

// recalc refreshes the cached line totals from unit prices and quantity.
func (i *ReceiptItem) recalc() {
	i.Total = i.Price()
	i.DiscountTotal = i.DiscountedPrice()
}

// MarshalJSON converts the item to JSON with decimal prices
func (i ReceiptItem) MarshalJSON() ([]byte, error) {
	type Alias ReceiptItem
	out := struct {
		Alias
		UnitPrice         float64  `json:"unit_price"`
		DiscountUnitPrice *float64 `json:"discount_unit_price,omitempty"`
		Total             float64  `json:"total"`
		DiscountTotal     *float64 `json:"discount_total,omitempty"`
	}{
		Alias:     Alias(i),
		UnitPrice: float64(i.UnitPrice) / 100,
		Total:     float64(i.Total) / 100,
	}
	if i.DiscountUnitPrice != nil {
		v := float64(*i.DiscountUnitPrice) / 100
		out.DiscountUnitPrice = &v
	}
	if i.DiscountTotal != nil {
		v := float64(*i.DiscountTotal) / 100
		out.DiscountTotal = &v
	}
	return json.Marshal(out)
}

// NewProductItem builds a product line. discountUnit is the campaign- or
// flat-discounted unit price, nil when none applies.
func NewProductItem(productID uuid.UUID, unitPrice int64, discountUnit *int64, quantity int) ReceiptItem {
	item := ReceiptItem{
		RefID:             productID,
		Type:              enum.ItemTypeProduct,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
		DiscountUnitPrice: discountUnit,
	}
	item.recalc()
	return item
}

// NewComboItem builds a combo line from a combo campaign: the unit price is
// the sum of the constituent snapshots, the discounted unit price the combo's
// real price.
func NewComboItem(combo *ComboCampaign, quantity int) ReceiptItem {
	discounted := combo.RealPrice()
	item := ReceiptItem{
		RefID:             combo.ID,
		Type:              enum.ItemTypeCombo,
		Quantity:          quantity,
		UnitPrice:         combo.Price(),
		DiscountUnitPrice: &discounted,
		Products:          combo.Products,
	}
	item.recalc()
	return item
}

// NewGiftItem builds a gift line from a buy-N-get-N campaign: the unit price
// covers both sub-items, the discounted unit price only the bought one.
func NewGiftItem(gift *BuyNGetNCampaign, quantity int) ReceiptItem {
	discounted := gift.RealPrice()
	buy := gift.Buy
	g := gift.Gift
	item := ReceiptItem{
		RefID:             gift.ID,
		Type:              enum.ItemTypeGift,
		Quantity:          quantity,
		UnitPrice:         gift.Price(),
		DiscountUnitPrice: &discounted,
		Buy:               &buy,
		Gift:              &g,
	}
	item.recalc()
	return item
}

// Receipt is an open or closed bill within a shift. Totals are cached in
// cents and refreshed on every item mutation.
type Receipt struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ShiftID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"shift_id"`
	Status        enum.ReceiptStatus `gorm:"default:0" json:"status"`
	Total         int64              `gorm:"default:0" json:"-"`
	DiscountTotal *int64             `json:"-"`
	Paid          bool               `gorm:"default:false" json:"paid"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	Items []ReceiptItem `gorm:"foreignKey:ReceiptID" json:"items"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// Price returns the undiscounted receipt total in cents.
func (r *Receipt) Price() int64 {
	var sum int64
	for idx := range r.Items {
		sum += r.Items[idx].Price()
	}
	return sum
}

// DiscountedPrice totals each line's discounted price, substituting the
// line's own price where no discount is set. The result is returned only when
// strictly less than the undiscounted total; "no discount" and "zero
// discount" are deliberately indistinguishable in this comparison.
func (r *Receipt) DiscountedPrice() *int64 {
	var base, discounted int64
	for idx := range r.Items {
		item := &r.Items[idx]
		base += item.Price()
		if d := item.DiscountedPrice(); d != nil {
			discounted += *d
		} else {
			discounted += item.Price()
		}
	}
	if discounted < base {
		return &discounted
	}
	return nil
}

// recalc refreshes the cached receipt totals.
func (r *Receipt) recalc() {
	r.Total = r.Price()
	r.DiscountTotal = r.DiscountedPrice()
}

// AddItem merges the item into an existing line with the same RefID (summing
// quantity and cached totals) or appends it. Fails on a closed receipt
// without mutating it.
func (r *Receipt) AddItem(item ReceiptItem) error {
	if r.Status == enum.ReceiptStatusClosed {
		return apperror.NewReceiptClosedError(r.ID)
	}
	for idx := range r.Items {
		existing := &r.Items[idx]
		if existing.RefID == item.RefID {
			existing.Quantity += item.Quantity
			existing.Total += item.Total
			if existing.DiscountTotal != nil && item.DiscountTotal != nil {
				*existing.DiscountTotal += *item.DiscountTotal
			}
			r.recalc()
			return nil
		}
	}
	r.Items = append(r.Items, item)
	r.recalc()
	return nil
}

// DeleteItem decrements the matched line's quantity by one, removing the line
// when it reaches zero. Fails with ItemNotFound when no line matches and on a
// closed receipt, leaving the receipt unchanged either way.
func (r *Receipt) DeleteItem(refID uuid.UUID) error {
	if r.Status == enum.ReceiptStatusClosed {
		return apperror.NewReceiptClosedError(r.ID)
	}
	for idx := range r.Items {
		item := &r.Items[idx]
		if item.RefID == refID {
			item.Quantity--
			if item.Quantity == 0 {
				r.Items = append(r.Items[:idx], r.Items[idx+1:]...)
			} else {
				item.recalc()
			}
			r.recalc()
			return nil
		}
	}
	return apperror.NewItemNotFoundError(refID)
}

// Close transitions the receipt to its terminal Closed status. Closing twice
// fails.
func (r *Receipt) Close() error {
	if r.Status == enum.ReceiptStatusClosed {
		return apperror.NewReceiptClosedError(r.ID)
	}
	r.Status = enum.ReceiptStatusClosed
	return nil
}

// MarshalJSON converts the receipt to JSON with decimal totals
func (r Receipt) MarshalJSON() ([]byte, error) {
	type Alias Receipt
	out := struct {
		Alias
		Total         float64  `json:"total"`
		DiscountTotal *float64 `json:"discounted_total,omitempty"`
	}{
		Alias: Alias(r),
		Total: float64(r.Total) / 100,
	}
	if r.DiscountTotal != nil {
		v := float64(*r.DiscountTotal) / 100
		out.DiscountTotal = &v
	}
	if out.Items == nil {
		out.Items = []ReceiptItem{}
	}
	return json.Marshal(out)
}
