package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	"github.com/sandrok/posify-api/internal/domain/repository"
	"github.com/sandrok/posify-api/pkg/apperror"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
	resolver    *CampaignResolver
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, resolver *CampaignResolver) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		resolver:    resolver,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name          string
	Barcode       string
	Price         int64 // cents
	DiscountPrice *int64
}

// CreateProduct creates a new product, rejecting duplicate barcodes
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	existing, err := s.productRepo.GetByBarcode(ctx, input.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewBarcodeConflictError(input.Barcode)
	}

	product := &entity.Product{
		Name:          input.Name,
		Barcode:       input.Barcode,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID, priced under the running campaigns
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.PricedProduct, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewProductNotFoundError(id)
	}
	return s.resolver.ResolveForProduct(ctx, product)
}

// ListProducts retrieves products with pagination and search
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return s.productRepo.List(ctx, params)
}

// UpdatePrice overwrites the product's unit price. The update is idempotent;
// repeating it with the same price is a no-op.
func (s *ProductService) UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewProductNotFoundError(id)
	}
	return s.productRepo.UpdatePrice(ctx, id, price)
}
