package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sandrok/posify-api/internal/application/service"
	"github.com/sandrok/posify-api/internal/domain/repository"
	"github.com/sandrok/posify-api/internal/presentation/http/dto/request"
	"github.com/sandrok/posify-api/internal/presentation/http/dto/response"
	"github.com/sandrok/posify-api/pkg/pagination"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateProductInput{
		Name:    req.Name,
		Barcode: req.Barcode,
		Price:   ToCents(req.Price),
	}
	if req.DiscountPrice != nil {
		d := ToCents(*req.DiscountPrice)
		input.DiscountPrice = &d
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles retrieving a product priced under the running campaigns
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	priced, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", priced)
}

// List handles listing products with pagination and search
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	products, total, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	result := pagination.NewPaginatedResult(products, meta)
	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// UpdatePrice handles overwriting a product's price
func (h *ProductHandler) UpdatePrice(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateProductPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.productService.UpdatePrice(c.Request.Context(), id, ToCents(req.Price)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product price updated successfully", nil)
}
