package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
)

// One repository per campaign type keeps persistence concerns isolated per
// type; the campaign chain composes them. All GetByID lookups return
// (nil, nil) on a miss so the chain can fall through to its next handler.

// DiscountCampaignRepository stores percentage campaigns and their
// eligible-product membership.
type DiscountCampaignRepository interface {
	Create(ctx context.Context, campaign *entity.DiscountCampaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DiscountCampaign, error)
	GetAll(ctx context.Context) ([]entity.DiscountCampaign, error)
	// GetByProduct returns the campaign listing the product with the highest
	// percent; ties resolve to the first campaign encountered.
	GetByProduct(ctx context.Context, productID uuid.UUID) (*entity.DiscountCampaign, error)
	AddProduct(ctx context.Context, campaignID, productID uuid.UUID) error
	RemoveProduct(ctx context.Context, campaignID, productID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ComboCampaignRepository stores combo campaigns with constituent snapshots.
type ComboCampaignRepository interface {
	Create(ctx context.Context, campaign *entity.ComboCampaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ComboCampaign, error)
	GetAll(ctx context.Context) ([]entity.ComboCampaign, error)
	AddProduct(ctx context.Context, campaignID uuid.UUID, snapshot entity.ProductSnapshot) (*entity.ComboCampaign, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BuyNGetNCampaignRepository stores buy-N-get-N campaigns.
type BuyNGetNCampaignRepository interface {
	Create(ctx context.Context, campaign *entity.BuyNGetNCampaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BuyNGetNCampaign, error)
	GetAll(ctx context.Context) ([]entity.BuyNGetNCampaign, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReceiptCampaignRepository stores receipt-level flat discounts.
type ReceiptCampaignRepository interface {
	Create(ctx context.Context, campaign *entity.ReceiptCampaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptCampaign, error)
	GetAll(ctx context.Context) ([]entity.ReceiptCampaign, error)
	// GetBestForAmount returns the highest-discount campaign whose minimum
	// qualifying total is at most the given amount, or nil.
	GetBestForAmount(ctx context.Context, amount int64) (*entity.ReceiptCampaign, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
