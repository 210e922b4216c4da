package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	"github.com/sandrok/posify-api/internal/domain/repository"
	"github.com/sandrok/posify-api/pkg/apperror"
)

// campaignHandler is one link in the campaign resolution chain. Each handler
// owns one campaign table; a lookup that misses falls through to the next
// link, ending at the terminal no-campaign handler.
type campaignHandler interface {
	resolveByID(ctx context.Context, id uuid.UUID) (entity.Campaign, error)
	delete(ctx context.Context, id uuid.UUID) error
	resolveForProduct(ctx context.Context, product *entity.Product) (*entity.PricedProduct, error)
	applyReceiptDiscount(ctx context.Context, receipt *entity.Receipt) error
}

// noCampaignHandler terminates the chain: unknown ids fail, products price at
// face value, receipts stay undiscounted.
type noCampaignHandler struct{}

func (h *noCampaignHandler) resolveByID(ctx context.Context, id uuid.UUID) (entity.Campaign, error) {
	return nil, apperror.NewCampaignNotFoundError(id)
}

func (h *noCampaignHandler) delete(ctx context.Context, id uuid.UUID) error {
	return apperror.NewCampaignNotFoundError(id)
}

func (h *noCampaignHandler) resolveForProduct(ctx context.Context, product *entity.Product) (*entity.PricedProduct, error) {
	return entity.NewPricedProduct(product), nil
}

func (h *noCampaignHandler) applyReceiptDiscount(ctx context.Context, receipt *entity.Receipt) error {
	return nil
}

type buyNGetNHandler struct {
	repo repository.BuyNGetNCampaignRepository
	next campaignHandler
}

func (h *buyNGetNHandler) resolveByID(ctx context.Context, id uuid.UUID) (entity.Campaign, error) {
	campaign, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return h.next.resolveByID(ctx, id)
	}
	return campaign, nil
}

func (h *buyNGetNHandler) delete(ctx context.Context, id uuid.UUID) error {
	campaign, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return h.next.delete(ctx, id)
	}
	return h.repo.Delete(ctx, id)
}

func (h *buyNGetNHandler) resolveForProduct(ctx context.Context, product *entity.Product) (*entity.PricedProduct, error) {
	return h.next.resolveForProduct(ctx, product)
}

func (h *buyNGetNHandler) applyReceiptDiscount(ctx context.Context, receipt *entity.Receipt) error {
	return h.next.applyReceiptDiscount(ctx, receipt)
}

type comboHandler struct {
	repo repository.ComboCampaignRepository
	next campaignHandler
}

func (h *comboHandler) resolveByID(ctx context.Context, id uuid.UUID) (entity.Campaign, error) {
	campaign, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return h.next.resolveByID(ctx, id)
	}
	return campaign, nil
}

func (h *comboHandler) delete(ctx context.Context, id uuid.UUID) error {
	campaign, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return h.next.delete(ctx, id)
	}
	return h.repo.Delete(ctx, id)
}

func (h *comboHandler) resolveForProduct(ctx context.Context, product *entity.Product) (*entity.PricedProduct, error) {
	return h.next.resolveForProduct(ctx, product)
}

func (h *comboHandler) applyReceiptDiscount(ctx context.Context, receipt *entity.Receipt) error {
	return h.next.applyReceiptDiscount(ctx, receipt)
}

type discountHandler struct {
	repo repository.DiscountCampaignRepository
	next campaignHandler
}

func (h *discountHandler) resolveByID(ctx context.Context, id uuid.UUID) (entity.Campaign, error) {
	campaign, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return h.next.resolveByID(ctx, id)
	}
	return campaign, nil
}

func (h *discountHandler) delete(ctx context.Context, id uuid.UUID) error {
	campaign, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return h.next.delete(ctx, id)
	}
	return h.repo.Delete(ctx, id)
}

// resolveForProduct prices the product under the best matching percentage
// campaign, or falls through when no campaign lists it.
func (h *discountHandler) resolveForProduct(ctx context.Context, product *entity.Product) (*entity.PricedProduct, error) {
	campaign, err := h.repo.GetByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return h.next.resolveForProduct(ctx, product)
	}
	return entity.NewDiscountedProduct(product, campaign.Percent), nil
}

func (h *discountHandler) applyReceiptDiscount(ctx context.Context, receipt *entity.Receipt) error {
	return h.next.applyReceiptDiscount(ctx, receipt)
}

type receiptDiscountHandler struct {
	repo repository.ReceiptCampaignRepository
	next campaignHandler
}

func (h *receiptDiscountHandler) resolveByID(ctx context.Context, id uuid.UUID) (entity.Campaign, error) {
	campaign, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return h.next.resolveByID(ctx, id)
	}
	return campaign, nil
}

func (h *receiptDiscountHandler) delete(ctx context.Context, id uuid.UUID) error {
	campaign, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return h.next.delete(ctx, id)
	}
	return h.repo.Delete(ctx, id)
}

func (h *receiptDiscountHandler) resolveForProduct(ctx context.Context, product *entity.Product) (*entity.PricedProduct, error) {
	return h.next.resolveForProduct(ctx, product)
}

// applyReceiptDiscount subtracts the best qualifying flat discount from the
// receipt's payable total. The receipt entity is mutated in memory only;
// callers decide whether to persist.
func (h *receiptDiscountHandler) applyReceiptDiscount(ctx context.Context, receipt *entity.Receipt) error {
	payable := receipt.Total
	if receipt.DiscountTotal != nil {
		payable = *receipt.DiscountTotal
	}

	campaign, err := h.repo.GetBestForAmount(ctx, payable)
	if err != nil {
		return err
	}
	if campaign == nil {
		return h.next.applyReceiptDiscount(ctx, receipt)
	}

	discounted := payable - campaign.Discount
	if discounted < 0 {
		discounted = 0
	}
	if discounted < receipt.Total {
		receipt.DiscountTotal = &discounted
	}
	return nil
}

// CampaignResolver fronts the campaign chain. Lookups and deletes probe each
// campaign table in a fixed order; product pricing and receipt discounting hit
// only the link that owns the concern.
type CampaignResolver struct {
	head campaignHandler
}

// NewCampaignResolver wires the chain: buy-N-get-N, combo, percentage
// discount, receipt discount, then the terminal handler.
func NewCampaignResolver(
	buyNGetNRepo repository.BuyNGetNCampaignRepository,
	comboRepo repository.ComboCampaignRepository,
	discountRepo repository.DiscountCampaignRepository,
	receiptRepo repository.ReceiptCampaignRepository,
) *CampaignResolver {
	var chain campaignHandler = &noCampaignHandler{}
	chain = &receiptDiscountHandler{repo: receiptRepo, next: chain}
	chain = &discountHandler{repo: discountRepo, next: chain}
	chain = &comboHandler{repo: comboRepo, next: chain}
	chain = &buyNGetNHandler{repo: buyNGetNRepo, next: chain}
	return &CampaignResolver{head: chain}
}

// ResolveByID finds a campaign of any type by id
func (r *CampaignResolver) ResolveByID(ctx context.Context, id uuid.UUID) (entity.Campaign, error) {
	return r.head.resolveByID(ctx, id)
}

// Delete removes a campaign of any type by id
func (r *CampaignResolver) Delete(ctx context.Context, id uuid.UUID) error {
	return r.head.delete(ctx, id)
}

// ResolveForProduct prices a product under the currently running campaigns
func (r *CampaignResolver) ResolveForProduct(ctx context.Context, product *entity.Product) (*entity.PricedProduct, error) {
	return r.head.resolveForProduct(ctx, product)
}

// ApplyReceiptDiscount overlays the best receipt-level discount onto the
// receipt's totals, in memory
func (r *CampaignResolver) ApplyReceiptDiscount(ctx context.Context, receipt *entity.Receipt) error {
	return r.head.applyReceiptDiscount(ctx, receipt)
}
