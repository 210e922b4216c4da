package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	"github.com/sandrok/posify-api/internal/domain/repository"
	"github.com/sandrok/posify-api/pkg/apperror"
)

// CampaignService handles campaign management across all four campaign types
type CampaignService struct {
	discountRepo repository.DiscountCampaignRepository
	comboRepo    repository.ComboCampaignRepository
	buyNGetNRepo repository.BuyNGetNCampaignRepository
	receiptRepo  repository.ReceiptCampaignRepository
	productRepo  repository.ProductRepository
	resolver     *CampaignResolver
}

// NewCampaignService creates a new campaign service
func NewCampaignService(
	discountRepo repository.DiscountCampaignRepository,
	comboRepo repository.ComboCampaignRepository,
	buyNGetNRepo repository.BuyNGetNCampaignRepository,
	receiptRepo repository.ReceiptCampaignRepository,
	productRepo repository.ProductRepository,
	resolver *CampaignResolver,
) *CampaignService {
	return &CampaignService{
		discountRepo: discountRepo,
		comboRepo:    comboRepo,
		buyNGetNRepo: buyNGetNRepo,
		receiptRepo:  receiptRepo,
		productRepo:  productRepo,
		resolver:     resolver,
	}
}

// snapshotProduct copies a product's current price into a value snapshot.
// Later price changes on the product do not reach the snapshot.
func (s *CampaignService) snapshotProduct(ctx context.Context, productID uuid.UUID, quantity int) (*entity.ProductSnapshot, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewProductNotFoundError(productID)
	}
	return &entity.ProductSnapshot{
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.BasePrice(),
		Total:     product.BasePrice() * int64(quantity),
	}, nil
}

// CreateDiscountCampaign creates a percentage campaign over the given products
func (s *CampaignService) CreateDiscountCampaign(ctx context.Context, percent int, productIDs []uuid.UUID) (*entity.DiscountCampaign, error) {
	products := make([]entity.Product, 0, len(productIDs))
	for _, id := range productIDs {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewProductNotFoundError(id)
		}
		products = append(products, *product)
	}

	campaign := &entity.DiscountCampaign{
		Percent:  percent,
		Products: products,
	}
	if err := s.discountRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// ComboProductInput names a constituent of a combo campaign
type ComboProductInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateComboCampaign creates a combo over the given constituents with a flat
// discount off their summed price
func (s *CampaignService) CreateComboCampaign(ctx context.Context, discount int64, products []ComboProductInput) (*entity.ComboCampaign, error) {
	snapshots := make([]entity.ProductSnapshot, 0, len(products))
	for _, p := range products {
		snap, err := s.snapshotProduct(ctx, p.ProductID, p.Quantity)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snap)
	}

	campaign := &entity.ComboCampaign{
		Discount: discount,
		Products: snapshots,
	}
	if err := s.comboRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// CreateBuyNGetNCampaign creates a buy-N-get-N pairing; both sides snapshot
// the products at their current price
func (s *CampaignService) CreateBuyNGetNCampaign(ctx context.Context, buy, gift ComboProductInput) (*entity.BuyNGetNCampaign, error) {
	buySnap, err := s.snapshotProduct(ctx, buy.ProductID, buy.Quantity)
	if err != nil {
		return nil, err
	}
	giftSnap, err := s.snapshotProduct(ctx, gift.ProductID, gift.Quantity)
	if err != nil {
		return nil, err
	}

	campaign := &entity.BuyNGetNCampaign{
		Buy:  *buySnap,
		Gift: *giftSnap,
	}
	if err := s.buyNGetNRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// CreateReceiptCampaign creates a flat receipt-level discount with a minimum
// qualifying total
func (s *CampaignService) CreateReceiptCampaign(ctx context.Context, minTotal, discount int64) (*entity.ReceiptCampaign, error) {
	campaign := &entity.ReceiptCampaign{
		MinTotal: minTotal,
		Discount: discount,
	}
	if err := s.receiptRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// GetCampaign finds a campaign of any type by id
func (s *CampaignService) GetCampaign(ctx context.Context, id uuid.UUID) (entity.Campaign, error) {
	return s.resolver.ResolveByID(ctx, id)
}

// ListCampaigns returns all campaigns across the four types
func (s *CampaignService) ListCampaigns(ctx context.Context) ([]entity.Campaign, error) {
	campaigns := []entity.Campaign{}

	gifts, err := s.buyNGetNRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range gifts {
		campaigns = append(campaigns, &gifts[i])
	}

	combos, err := s.comboRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range combos {
		campaigns = append(campaigns, &combos[i])
	}

	discounts, err := s.discountRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range discounts {
		campaigns = append(campaigns, &discounts[i])
	}

	receipts, err := s.receiptRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range receipts {
		campaigns = append(campaigns, &receipts[i])
	}

	return campaigns, nil
}

// DeleteCampaign removes a campaign of any type by id
func (s *CampaignService) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	return s.resolver.Delete(ctx, id)
}

// AddProductToCombo snapshots the product and appends it to the combo's
// constituent list
func (s *CampaignService) AddProductToCombo(ctx context.Context, campaignID uuid.UUID, input ComboProductInput) (*entity.ComboCampaign, error) {
	snap, err := s.snapshotProduct(ctx, input.ProductID, input.Quantity)
	if err != nil {
		return nil, err
	}
	campaign, err := s.comboRepo.AddProduct(ctx, campaignID, *snap)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NewCampaignNotFoundError(campaignID)
	}
	return campaign, nil
}

// AddProductToDiscount makes a product eligible for a percentage campaign
func (s *CampaignService) AddProductToDiscount(ctx context.Context, campaignID, productID uuid.UUID) (*entity.DiscountCampaign, error) {
	campaign, err := s.discountRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NewCampaignNotFoundError(campaignID)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewProductNotFoundError(productID)
	}

	if err := s.discountRepo.AddProduct(ctx, campaignID, productID); err != nil {
		return nil, err
	}
	return s.discountRepo.GetByID(ctx, campaignID)
}

// RemoveProductFromDiscount withdraws a product's eligibility for a
// percentage campaign
func (s *CampaignService) RemoveProductFromDiscount(ctx context.Context, campaignID, productID uuid.UUID) (*entity.DiscountCampaign, error) {
	campaign, err := s.discountRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NewCampaignNotFoundError(campaignID)
	}

	if err := s.discountRepo.RemoveProduct(ctx, campaignID, productID); err != nil {
		return nil, err
	}
	return s.discountRepo.GetByID(ctx, campaignID)
}
