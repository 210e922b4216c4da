package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	"github.com/sandrok/posify-api/internal/domain/repository"
)

// In-memory repositories for service tests. They mirror the storage
// contracts: lookups return (nil, nil) on a miss, GetByProduct picks the
// highest percent and GetBestForAmount the highest qualifying discount.

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*entity.Product{}}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error {
	if p, ok := r.products[id]; ok {
		p.Price = price
	}
	return nil
}

type fakeReceiptRepo struct {
	receipts map[uuid.UUID]*entity.Receipt
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: map[uuid.UUID]*entity.Receipt{}}
}

func (r *fakeReceiptRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	cp := *receipt
	r.receipts[receipt.ID] = &cp
	return nil
}

func (r *fakeReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, ok := r.receipts[id]
	if !ok {
		return nil, nil
	}
	cp := *receipt
	cp.Items = append([]entity.ReceiptItem(nil), receipt.Items...)
	return &cp, nil
}

func (r *fakeReceiptRepo) Save(ctx context.Context, receipt *entity.Receipt) error {
	cp := *receipt
	cp.Items = append([]entity.ReceiptItem(nil), receipt.Items...)
	r.receipts[receipt.ID] = &cp
	return nil
}

func (r *fakeReceiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.receipts, id)
	return nil
}

type fakeShiftRepo struct {
	shifts   map[uuid.UUID]*entity.Shift
	receipts *fakeReceiptRepo
}

func newFakeShiftRepo(receipts *fakeReceiptRepo) *fakeShiftRepo {
	return &fakeShiftRepo{shifts: map[uuid.UUID]*entity.Shift{}, receipts: receipts}
}

func (r *fakeShiftRepo) Create(ctx context.Context, shift *entity.Shift) error {
	if shift.ID == uuid.Nil {
		shift.ID = uuid.New()
	}
	cp := *shift
	r.shifts[shift.ID] = &cp
	return nil
}

func (r *fakeShiftRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	shift, ok := r.shifts[id]
	if !ok {
		return nil, nil
	}
	cp := *shift
	cp.Receipts = r.paidReceipts(id)
	return &cp, nil
}

func (r *fakeShiftRepo) GetAll(ctx context.Context) ([]entity.Shift, error) {
	var out []entity.Shift
	for id, shift := range r.shifts {
		cp := *shift
		cp.Receipts = r.paidReceipts(id)
		out = append(out, cp)
	}
	return out, nil
}

func (r *fakeShiftRepo) UpdateStatus(ctx context.Context, shift *entity.Shift) error {
	if s, ok := r.shifts[shift.ID]; ok {
		s.Status = shift.Status
	}
	return nil
}

func (r *fakeShiftRepo) AttachReceipt(ctx context.Context, shiftID, receiptID uuid.UUID) error {
	if r.receipts != nil {
		if receipt, ok := r.receipts.receipts[receiptID]; ok && receipt.ShiftID == shiftID {
			receipt.Paid = true
		}
	}
	return nil
}

func (r *fakeShiftRepo) paidReceipts(shiftID uuid.UUID) []entity.Receipt {
	if r.receipts == nil {
		return nil
	}
	var out []entity.Receipt
	for _, receipt := range r.receipts.receipts {
		if receipt.ShiftID == shiftID && receipt.Paid {
			out = append(out, *receipt)
		}
	}
	return out
}

type fakeDiscountCampaignRepo struct {
	campaigns map[uuid.UUID]*entity.DiscountCampaign
	order     []uuid.UUID
}

func newFakeDiscountCampaignRepo() *fakeDiscountCampaignRepo {
	return &fakeDiscountCampaignRepo{campaigns: map[uuid.UUID]*entity.DiscountCampaign{}}
}

func (r *fakeDiscountCampaignRepo) Create(ctx context.Context, campaign *entity.DiscountCampaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	r.campaigns[campaign.ID] = campaign
	r.order = append(r.order, campaign.ID)
	return nil
}

func (r *fakeDiscountCampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DiscountCampaign, error) {
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeDiscountCampaignRepo) GetAll(ctx context.Context) ([]entity.DiscountCampaign, error) {
	out := make([]entity.DiscountCampaign, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.campaigns[id])
	}
	return out, nil
}

func (r *fakeDiscountCampaignRepo) GetByProduct(ctx context.Context, productID uuid.UUID) (*entity.DiscountCampaign, error) {
	var best *entity.DiscountCampaign
	for _, id := range r.order {
		c := r.campaigns[id]
		for i := range c.Products {
			if c.Products[i].ID == productID {
				if best == nil || c.Percent > best.Percent {
					best = c
				}
			}
		}
	}
	return best, nil
}

func (r *fakeDiscountCampaignRepo) AddProduct(ctx context.Context, campaignID, productID uuid.UUID) error {
	if c, ok := r.campaigns[campaignID]; ok {
		c.Products = append(c.Products, entity.Product{ID: productID})
	}
	return nil
}

func (r *fakeDiscountCampaignRepo) RemoveProduct(ctx context.Context, campaignID, productID uuid.UUID) error {
	c, ok := r.campaigns[campaignID]
	if !ok {
		return nil
	}
	for i := range c.Products {
		if c.Products[i].ID == productID {
			c.Products = append(c.Products[:i], c.Products[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeDiscountCampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.campaigns, id)
	return nil
}

type fakeComboCampaignRepo struct {
	campaigns map[uuid.UUID]*entity.ComboCampaign
}

func newFakeComboCampaignRepo() *fakeComboCampaignRepo {
	return &fakeComboCampaignRepo{campaigns: map[uuid.UUID]*entity.ComboCampaign{}}
}

func (r *fakeComboCampaignRepo) Create(ctx context.Context, campaign *entity.ComboCampaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	r.campaigns[campaign.ID] = campaign
	return nil
}

func (r *fakeComboCampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ComboCampaign, error) {
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeComboCampaignRepo) GetAll(ctx context.Context) ([]entity.ComboCampaign, error) {
	var out []entity.ComboCampaign
	for _, c := range r.campaigns {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeComboCampaignRepo) AddProduct(ctx context.Context, campaignID uuid.UUID, snapshot entity.ProductSnapshot) (*entity.ComboCampaign, error) {
	c, ok := r.campaigns[campaignID]
	if !ok {
		return nil, nil
	}
	c.Products = append(c.Products, snapshot)
	return c, nil
}

func (r *fakeComboCampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.campaigns, id)
	return nil
}

type fakeBuyNGetNCampaignRepo struct {
	campaigns map[uuid.UUID]*entity.BuyNGetNCampaign
}

func newFakeBuyNGetNCampaignRepo() *fakeBuyNGetNCampaignRepo {
	return &fakeBuyNGetNCampaignRepo{campaigns: map[uuid.UUID]*entity.BuyNGetNCampaign{}}
}

func (r *fakeBuyNGetNCampaignRepo) Create(ctx context.Context, campaign *entity.BuyNGetNCampaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	r.campaigns[campaign.ID] = campaign
	return nil
}

func (r *fakeBuyNGetNCampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.BuyNGetNCampaign, error) {
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeBuyNGetNCampaignRepo) GetAll(ctx context.Context) ([]entity.BuyNGetNCampaign, error) {
	var out []entity.BuyNGetNCampaign
	for _, c := range r.campaigns {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeBuyNGetNCampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.campaigns, id)
	return nil
}

type fakeReceiptCampaignRepo struct {
	campaigns map[uuid.UUID]*entity.ReceiptCampaign
}

func newFakeReceiptCampaignRepo() *fakeReceiptCampaignRepo {
	return &fakeReceiptCampaignRepo{campaigns: map[uuid.UUID]*entity.ReceiptCampaign{}}
}

func (r *fakeReceiptCampaignRepo) Create(ctx context.Context, campaign *entity.ReceiptCampaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	r.campaigns[campaign.ID] = campaign
	return nil
}

func (r *fakeReceiptCampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptCampaign, error) {
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeReceiptCampaignRepo) GetAll(ctx context.Context) ([]entity.ReceiptCampaign, error) {
	var out []entity.ReceiptCampaign
	for _, c := range r.campaigns {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeReceiptCampaignRepo) GetBestForAmount(ctx context.Context, amount int64) (*entity.ReceiptCampaign, error) {
	var best *entity.ReceiptCampaign
	for _, c := range r.campaigns {
		if c.MinTotal > amount {
			continue
		}
		if best == nil || c.Discount > best.Discount {
			best = c
		}
	}
	return best, nil
}

func (r *fakeReceiptCampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.campaigns, id)
	return nil
}

// fakeConverter converts with a fixed rate, or fails with the given error.
type fakeConverter struct {
	rate float64
	err  error
}

func (c *fakeConverter) Convert(ctx context.Context, amount int64, from, to string) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	return int64(float64(amount) * c.rate), nil
}

func newResolver(
	buyNGetN *fakeBuyNGetNCampaignRepo,
	combo *fakeComboCampaignRepo,
	discount *fakeDiscountCampaignRepo,
	receipt *fakeReceiptCampaignRepo,
) *CampaignResolver {
	return NewCampaignResolver(buyNGetN, combo, discount, receipt)
}
