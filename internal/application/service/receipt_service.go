package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	"github.com/sandrok/posify-api/internal/domain/enum"
	"github.com/sandrok/posify-api/internal/domain/repository"
	"github.com/sandrok/posify-api/pkg/apperror"
)

// ReceiptService handles receipt lifecycle and line mutations
type ReceiptService struct {
	receiptRepo  repository.ReceiptRepository
	shiftRepo    repository.ShiftRepository
	productRepo  repository.ProductRepository
	comboRepo    repository.ComboCampaignRepository
	buyNGetNRepo repository.BuyNGetNCampaignRepository
	resolver     *CampaignResolver
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	shiftRepo repository.ShiftRepository,
	productRepo repository.ProductRepository,
	comboRepo repository.ComboCampaignRepository,
	buyNGetNRepo repository.BuyNGetNCampaignRepository,
	resolver *CampaignResolver,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo:  receiptRepo,
		shiftRepo:    shiftRepo,
		productRepo:  productRepo,
		comboRepo:    comboRepo,
		buyNGetNRepo: buyNGetNRepo,
		resolver:     resolver,
	}
}

// CreateReceipt opens a new receipt against an open shift
func (s *ReceiptService) CreateReceipt(ctx context.Context, shiftID uuid.UUID) (*entity.Receipt, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewShiftNotFoundError(shiftID)
	}
	if shift.Status == enum.ShiftStatusClosed {
		return nil, apperror.NewShiftClosedError(shiftID)
	}

	receipt := &entity.Receipt{
		ShiftID: shiftID,
		Status:  enum.ReceiptStatusOpen,
		Items:   []entity.ReceiptItem{},
	}
	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetReceipt retrieves a receipt with the best qualifying receipt-level
// discount overlaid on its totals. The overlay is display-only and is not
// persisted.
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.getReceipt(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.ApplyReceiptDiscount(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *ReceiptService) getReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewReceiptNotFoundError(id)
	}
	return receipt, nil
}

// DeleteReceipt removes an open receipt. Closed receipts are immutable.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, id uuid.UUID) error {
	receipt, err := s.getReceipt(ctx, id)
	if err != nil {
		return err
	}
	if receipt.Status == enum.ReceiptStatusClosed {
		return apperror.NewReceiptClosedError(id)
	}
	return s.receiptRepo.Delete(ctx, id)
}

// AddProduct adds a product line to the receipt, priced under the running
// campaigns
func (s *ReceiptService) AddProduct(ctx context.Context, receiptID, productID uuid.UUID, quantity int) (*entity.Receipt, error) {
	receipt, err := s.getReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewProductNotFoundError(productID)
	}

	priced, err := s.resolver.ResolveForProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	discountUnit := priced.DiscountedPrice()
	if discountUnit == nil {
		discountUnit = product.DiscountedPrice()
	}

	item := entity.NewProductItem(product.ID, product.BasePrice(), discountUnit, quantity)
	if err := receipt.AddItem(item); err != nil {
		return nil, err
	}
	if err := s.receiptRepo.Save(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// AddCombo adds a combo campaign line to the receipt
func (s *ReceiptService) AddCombo(ctx context.Context, receiptID, comboID uuid.UUID, quantity int) (*entity.Receipt, error) {
	receipt, err := s.getReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	combo, err := s.comboRepo.GetByID(ctx, comboID)
	if err != nil {
		return nil, err
	}
	if combo == nil {
		return nil, apperror.NewCampaignNotFoundError(comboID)
	}

	if err := receipt.AddItem(entity.NewComboItem(combo, quantity)); err != nil {
		return nil, err
	}
	if err := s.receiptRepo.Save(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// AddGift adds a buy-N-get-N campaign line to the receipt
func (s *ReceiptService) AddGift(ctx context.Context, receiptID, giftID uuid.UUID, quantity int) (*entity.Receipt, error) {
	receipt, err := s.getReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	gift, err := s.buyNGetNRepo.GetByID(ctx, giftID)
	if err != nil {
		return nil, err
	}
	if gift == nil {
		return nil, apperror.NewCampaignNotFoundError(giftID)
	}

	if err := receipt.AddItem(entity.NewGiftItem(gift, quantity)); err != nil {
		return nil, err
	}
	if err := s.receiptRepo.Save(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// DeleteItem removes one unit of the matched line from the receipt
func (s *ReceiptService) DeleteItem(ctx context.Context, receiptID, itemID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.getReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if err := receipt.DeleteItem(itemID); err != nil {
		return nil, err
	}
	if err := s.receiptRepo.Save(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// CloseReceipt transitions the receipt to its terminal Closed status
func (s *ReceiptService) CloseReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.getReceipt(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := receipt.Close(); err != nil {
		return nil, err
	}
	if err := s.receiptRepo.Save(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}
