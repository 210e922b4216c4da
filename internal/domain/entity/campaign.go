package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/enum"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Campaign is the common view over the four campaign kinds. Each kind lives
// in its own table and repository; the chain hides that from callers.
type Campaign interface {
	CampaignID() uuid.UUID
	CampaignType() enum.CampaignType
}

// ProductSnapshot is a value copy of a product taken at campaign-creation
// time. Later price changes on the product do not flow back into campaigns
// or receipt lines holding a snapshot.
type ProductSnapshot struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"` // cents
	Total     int64     `json:"total"`      // cents
}

// Price returns unit price times quantity, in cents.
func (s ProductSnapshot) Price() int64 {
	return s.UnitPrice * int64(s.Quantity)
}

// DiscountCampaign grants a percentage off every eligible product. Product
// membership is a join table, not a snapshot: eligibility is by id.
type DiscountCampaign struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Percent   int            `gorm:"not null" json:"discount"`
	Products  []Product      `gorm:"many2many:discount_campaign_products;" json:"products"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new discount campaign
func (c *DiscountCampaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DiscountCampaign model
func (DiscountCampaign) TableName() string {
	return "discount_campaigns"
}

func (c *DiscountCampaign) CampaignID() uuid.UUID {
	return c.ID
}

func (c *DiscountCampaign) CampaignType() enum.CampaignType {
	return enum.CampaignTypeDiscount
}

// ComboCampaign bundles constituent product snapshots for a flat discount
// off their summed price.
type ComboCampaign struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Discount     int64          `gorm:"not null" json:"-"` // Stored in cents
	ProductsJSON datatypes.JSON `gorm:"column:products" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Products []ProductSnapshot `gorm:"-" json:"products"`
}

// BeforeCreate generates a UUID before creating a new combo campaign
func (c *ComboCampaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeSave serializes the constituent snapshots into the JSON column
func (c *ComboCampaign) BeforeSave(tx *gorm.DB) error {
	if c.Products == nil {
		c.Products = []ProductSnapshot{}
	}
	raw, err := json.Marshal(c.Products)
	if err != nil {
		return err
	}
	c.ProductsJSON = raw
	return nil
}

// AfterFind decodes the JSON column back into constituent snapshots
func (c *ComboCampaign) AfterFind(tx *gorm.DB) error {
	if len(c.ProductsJSON) == 0 {
		c.Products = []ProductSnapshot{}
		return nil
	}
	return json.Unmarshal(c.ProductsJSON, &c.Products)
}

// TableName returns the table name for the ComboCampaign model
func (ComboCampaign) TableName() string {
	return "combo_campaigns"
}

func (c *ComboCampaign) CampaignID() uuid.UUID {
	return c.ID
}

func (c *ComboCampaign) CampaignType() enum.CampaignType {
	return enum.CampaignTypeCombo
}

// Price sums the constituent snapshot prices, in cents.
func (c *ComboCampaign) Price() int64 {
	var sum int64
	for _, p := range c.Products {
		sum += p.Price()
	}
	return sum
}

// RealPrice is the constituent sum minus the flat discount, in cents.
func (c *ComboCampaign) RealPrice() int64 {
	return c.Price() - c.Discount
}

// MarshalJSON converts the combo campaign to JSON with a decimal discount
func (c ComboCampaign) MarshalJSON() ([]byte, error) {
	type Alias ComboCampaign
	return json.Marshal(struct {
		Alias
		Type     string  `json:"type"`
		Discount float64 `json:"discount"`
	}{
		Alias:    Alias(c),
		Type:     enum.CampaignTypeCombo.String(),
		Discount: float64(c.Discount) / 100,
	})
}

// BuyNGetNCampaign pairs a bought product snapshot with a gifted one: the
// customer pays the buy side only.
type BuyNGetNCampaign struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PayloadJSON datatypes.JSON `gorm:"column:payload" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Buy  ProductSnapshot `gorm:"-" json:"buy_product"`
	Gift ProductSnapshot `gorm:"-" json:"gift_product"`
}

// buyNGetNPayload is the JSON shape of the payload column.
type buyNGetNPayload struct {
	Buy  ProductSnapshot `json:"buy"`
	Gift ProductSnapshot `json:"gift"`
}

// BeforeCreate generates a UUID before creating a new buy-N-get-N campaign
func (c *BuyNGetNCampaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeSave serializes the buy/gift snapshots into the payload column
func (c *BuyNGetNCampaign) BeforeSave(tx *gorm.DB) error {
	raw, err := json.Marshal(buyNGetNPayload{Buy: c.Buy, Gift: c.Gift})
	if err != nil {
		return err
	}
	c.PayloadJSON = raw
	return nil
}

// AfterFind decodes the payload column back into the buy/gift snapshots
func (c *BuyNGetNCampaign) AfterFind(tx *gorm.DB) error {
	if len(c.PayloadJSON) == 0 {
		return nil
	}
	var p buyNGetNPayload
	if err := json.Unmarshal(c.PayloadJSON, &p); err != nil {
		return err
	}
	c.Buy = p.Buy
	c.Gift = p.Gift
	return nil
}

// TableName returns the table name for the BuyNGetNCampaign model
func (BuyNGetNCampaign) TableName() string {
	return "buy_n_get_n_campaigns"
}

func (c *BuyNGetNCampaign) CampaignID() uuid.UUID {
	return c.ID
}

func (c *BuyNGetNCampaign) CampaignType() enum.CampaignType {
	return enum.CampaignTypeBuyNGetN
}

// Price sums the buy and gift snapshot prices, in cents.
func (c *BuyNGetNCampaign) Price() int64 {
	return c.Buy.Price() + c.Gift.Price()
}

// RealPrice is what the customer actually pays: the buy side only.
func (c *BuyNGetNCampaign) RealPrice() int64 {
	return c.Buy.Price()
}

// MarshalJSON tags the campaign with its type
func (c BuyNGetNCampaign) MarshalJSON() ([]byte, error) {
	type Alias BuyNGetNCampaign
	return json.Marshal(struct {
		Alias
		Type string `json:"type"`
	}{
		Alias: Alias(c),
		Type:  enum.CampaignTypeBuyNGetN.String(),
	})
}

// ReceiptCampaign grants a flat discount off any receipt whose total reaches
// the qualifying minimum.
type ReceiptCampaign struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	MinTotal  int64          `gorm:"not null" json:"-"` // Stored in cents
	Discount  int64          `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt campaign
func (c *ReceiptCampaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptCampaign model
func (ReceiptCampaign) TableName() string {
	return "receipt_campaigns"
}

func (c *ReceiptCampaign) CampaignID() uuid.UUID {
	return c.ID
}

func (c *ReceiptCampaign) CampaignType() enum.CampaignType {
	return enum.CampaignTypeReceiptDiscount
}

// MarshalJSON converts the receipt campaign to JSON with decimal amounts
func (c ReceiptCampaign) MarshalJSON() ([]byte, error) {
	type Alias ReceiptCampaign
	return json.Marshal(struct {
		Alias
		Type     string  `json:"type"`
		MinTotal float64 `json:"amount"`
		Discount float64 `json:"discount"`
	}{
		Alias:    Alias(c),
		Type:     enum.CampaignTypeReceiptDiscount.String(),
		MinTotal: float64(c.MinTotal) / 100,
		Discount: float64(c.Discount) / 100,
	})
}

// MarshalJSON tags the discount campaign with its type
func (c DiscountCampaign) MarshalJSON() ([]byte, error) {
	type Alias DiscountCampaign
	return json.Marshal(struct {
		Alias
		Type string `json:"type"`
	}{
		Alias: Alias(c),
		Type:  enum.CampaignTypeDiscount.String(),
	})
}
