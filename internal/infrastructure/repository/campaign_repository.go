package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	domainRepo "github.com/sandrok/posify-api/internal/domain/repository"
	"gorm.io/gorm"
)

type discountCampaignRepository struct {
	db *gorm.DB
}

// NewDiscountCampaignRepository creates a new discount campaign repository
func NewDiscountCampaignRepository(db *gorm.DB) domainRepo.DiscountCampaignRepository {
	return &discountCampaignRepository{db: db}
}

func (r *discountCampaignRepository) Create(ctx context.Context, campaign *entity.DiscountCampaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *discountCampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DiscountCampaign, error) {
	var campaign entity.DiscountCampaign
	err := r.db.WithContext(ctx).
		Preload("Products").
		First(&campaign, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &campaign, err
}

func (r *discountCampaignRepository) GetAll(ctx context.Context) ([]entity.DiscountCampaign, error) {
	var campaigns []entity.DiscountCampaign
	err := r.db.WithContext(ctx).
		Preload("Products").
		Order("created_at ASC").
		Find(&campaigns).Error
	return campaigns, err
}

// GetByProduct returns the campaign listing the product with the highest
// percent. On equal percent the earlier-created campaign wins.
func (r *discountCampaignRepository) GetByProduct(ctx context.Context, productID uuid.UUID) (*entity.DiscountCampaign, error) {
	var campaign entity.DiscountCampaign
	err := r.db.WithContext(ctx).
		Joins("JOIN discount_campaign_products dcp ON dcp.discount_campaign_id = discount_campaigns.id").
		Where("dcp.product_id = ?", productID).
		Order("discount_campaigns.percent DESC, discount_campaigns.created_at ASC").
		Preload("Products").
		First(&campaign).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &campaign, err
}

func (r *discountCampaignRepository) AddProduct(ctx context.Context, campaignID, productID uuid.UUID) error {
	campaign := entity.DiscountCampaign{ID: campaignID}
	return r.db.WithContext(ctx).Model(&campaign).
		Association("Products").
		Append(&entity.Product{ID: productID})
}

func (r *discountCampaignRepository) RemoveProduct(ctx context.Context, campaignID, productID uuid.UUID) error {
	campaign := entity.DiscountCampaign{ID: campaignID}
	return r.db.WithContext(ctx).Model(&campaign).
		Association("Products").
		Delete(&entity.Product{ID: productID})
}

func (r *discountCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DiscountCampaign{}, "id = ?", id).Error
}

type comboCampaignRepository struct {
	db *gorm.DB
}

// NewComboCampaignRepository creates a new combo campaign repository
func NewComboCampaignRepository(db *gorm.DB) domainRepo.ComboCampaignRepository {
	return &comboCampaignRepository{db: db}
}

func (r *comboCampaignRepository) Create(ctx context.Context, campaign *entity.ComboCampaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *comboCampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ComboCampaign, error) {
	var campaign entity.ComboCampaign
	err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &campaign, err
}

func (r *comboCampaignRepository) GetAll(ctx context.Context) ([]entity.ComboCampaign, error) {
	var campaigns []entity.ComboCampaign
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&campaigns).Error
	return campaigns, err
}

// AddProduct appends a snapshot to the combo's constituent list and returns
// the updated campaign.
func (r *comboCampaignRepository) AddProduct(ctx context.Context, campaignID uuid.UUID, snapshot entity.ProductSnapshot) (*entity.ComboCampaign, error) {
	var campaign entity.ComboCampaign
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&campaign, "id = ?", campaignID).Error; err != nil {
			return err
		}
		campaign.Products = append(campaign.Products, snapshot)
		return tx.Save(&campaign).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *comboCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ComboCampaign{}, "id = ?", id).Error
}

type buyNGetNCampaignRepository struct {
	db *gorm.DB
}

// NewBuyNGetNCampaignRepository creates a new buy-N-get-N campaign repository
func NewBuyNGetNCampaignRepository(db *gorm.DB) domainRepo.BuyNGetNCampaignRepository {
	return &buyNGetNCampaignRepository{db: db}
}

func (r *buyNGetNCampaignRepository) Create(ctx context.Context, campaign *entity.BuyNGetNCampaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *buyNGetNCampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BuyNGetNCampaign, error) {
	var campaign entity.BuyNGetNCampaign
	err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &campaign, err
}

func (r *buyNGetNCampaignRepository) GetAll(ctx context.Context) ([]entity.BuyNGetNCampaign, error) {
	var campaigns []entity.BuyNGetNCampaign
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&campaigns).Error
	return campaigns, err
}

func (r *buyNGetNCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.BuyNGetNCampaign{}, "id = ?", id).Error
}

type receiptCampaignRepository struct {
	db *gorm.DB
}

// NewReceiptCampaignRepository creates a new receipt campaign repository
func NewReceiptCampaignRepository(db *gorm.DB) domainRepo.ReceiptCampaignRepository {
	return &receiptCampaignRepository{db: db}
}

func (r *receiptCampaignRepository) Create(ctx context.Context, campaign *entity.ReceiptCampaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *receiptCampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptCampaign, error) {
	var campaign entity.ReceiptCampaign
	err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &campaign, err
}

func (r *receiptCampaignRepository) GetAll(ctx context.Context) ([]entity.ReceiptCampaign, error) {
	var campaigns []entity.ReceiptCampaign
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&campaigns).Error
	return campaigns, err
}

// GetBestForAmount picks the highest flat discount among campaigns whose
// qualifying minimum the amount reaches.
func (r *receiptCampaignRepository) GetBestForAmount(ctx context.Context, amount int64) (*entity.ReceiptCampaign, error) {
	var campaign entity.ReceiptCampaign
	err := r.db.WithContext(ctx).
		Where("min_total <= ?", amount).
		Order("discount DESC, created_at ASC").
		First(&campaign).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &campaign, err
}

func (r *receiptCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ReceiptCampaign{}, "id = ?", id).Error
}
