package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	"github.com/sandrok/posify-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainFixture() (*fakeBuyNGetNCampaignRepo, *fakeComboCampaignRepo, *fakeDiscountCampaignRepo, *fakeReceiptCampaignRepo, *CampaignResolver) {
	buyNGetN := newFakeBuyNGetNCampaignRepo()
	combo := newFakeComboCampaignRepo()
	discount := newFakeDiscountCampaignRepo()
	receipt := newFakeReceiptCampaignRepo()
	return buyNGetN, combo, discount, receipt, newResolver(buyNGetN, combo, discount, receipt)
}

func TestResolveByID_FindsEachType(t *testing.T) {
	ctx := context.Background()
	buyNGetN, combo, discount, receiptRepo, resolver := chainFixture()

	g := &entity.BuyNGetNCampaign{}
	require.NoError(t, buyNGetN.Create(ctx, g))
	c := &entity.ComboCampaign{Discount: 100}
	require.NoError(t, combo.Create(ctx, c))
	d := &entity.DiscountCampaign{Percent: 10}
	require.NoError(t, discount.Create(ctx, d))
	rc := &entity.ReceiptCampaign{MinTotal: 1000, Discount: 100}
	require.NoError(t, receiptRepo.Create(ctx, rc))

	cases := []struct {
		id       uuid.UUID
		wantType enum.CampaignType
	}{
		{g.ID, enum.CampaignTypeBuyNGetN},
		{c.ID, enum.CampaignTypeCombo},
		{d.ID, enum.CampaignTypeDiscount},
		{rc.ID, enum.CampaignTypeReceiptDiscount},
	}
	for _, tc := range cases {
		found, err := resolver.ResolveByID(ctx, tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.id, found.CampaignID())
		assert.Equal(t, tc.wantType, found.CampaignType())
	}
}

func TestResolveByID_UnknownID(t *testing.T) {
	_, _, _, _, resolver := chainFixture()

	_, err := resolver.ResolveByID(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestDelete_RemovesFromOwningRepo(t *testing.T) {
	ctx := context.Background()
	_, combo, _, _, resolver := chainFixture()

	c := &entity.ComboCampaign{Discount: 100}
	require.NoError(t, combo.Create(ctx, c))

	require.NoError(t, resolver.Delete(ctx, c.ID))

	found, err := combo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestDelete_UnknownID(t *testing.T) {
	_, _, _, _, resolver := chainFixture()
	require.Error(t, resolver.Delete(context.Background(), uuid.New()))
}

func TestResolveForProduct_NoCampaign(t *testing.T) {
	_, _, _, _, resolver := chainFixture()
	product := &entity.Product{ID: uuid.New(), Price: 1000}

	priced, err := resolver.ResolveForProduct(context.Background(), product)
	require.NoError(t, err)
	assert.False(t, priced.Discounted())
	assert.Equal(t, int64(1000), priced.BasePrice())
}

func TestResolveForProduct_DiscountApplied(t *testing.T) {
	ctx := context.Background()
	_, _, discount, _, resolver := chainFixture()
	product := &entity.Product{ID: uuid.New(), Price: 1000}

	require.NoError(t, discount.Create(ctx, &entity.DiscountCampaign{
		Percent:  20,
		Products: []entity.Product{*product},
	}))

	priced, err := resolver.ResolveForProduct(ctx, product)
	require.NoError(t, err)
	require.True(t, priced.Discounted())
	assert.Equal(t, int64(800), *priced.DiscountedPrice())
}

func TestResolveForProduct_HighestPercentWins(t *testing.T) {
	ctx := context.Background()
	_, _, discount, _, resolver := chainFixture()
	product := &entity.Product{ID: uuid.New(), Price: 1000}

	require.NoError(t, discount.Create(ctx, &entity.DiscountCampaign{
		Percent:  10,
		Products: []entity.Product{*product},
	}))
	require.NoError(t, discount.Create(ctx, &entity.DiscountCampaign{
		Percent:  30,
		Products: []entity.Product{*product},
	}))

	priced, err := resolver.ResolveForProduct(ctx, product)
	require.NoError(t, err)
	require.True(t, priced.Discounted())
	assert.Equal(t, int64(700), *priced.DiscountedPrice())
}

func TestApplyReceiptDiscount_BestQualifyingCampaign(t *testing.T) {
	ctx := context.Background()
	_, _, _, receiptRepo, resolver := chainFixture()

	require.NoError(t, receiptRepo.Create(ctx, &entity.ReceiptCampaign{MinTotal: 500, Discount: 100}))
	require.NoError(t, receiptRepo.Create(ctx, &entity.ReceiptCampaign{MinTotal: 1000, Discount: 300}))
	require.NoError(t, receiptRepo.Create(ctx, &entity.ReceiptCampaign{MinTotal: 5000, Discount: 900}))

	receipt := &entity.Receipt{Status: enum.ReceiptStatusOpen}
	require.NoError(t, receipt.AddItem(entity.NewProductItem(uuid.New(), 600, nil, 2)))

	require.NoError(t, resolver.ApplyReceiptDiscount(ctx, receipt))

	// Total 1200 qualifies for the 300 discount, not the 900 one.
	require.NotNil(t, receipt.DiscountTotal)
	assert.Equal(t, int64(900), *receipt.DiscountTotal)
}

func TestApplyReceiptDiscount_BelowMinimumUnchanged(t *testing.T) {
	ctx := context.Background()
	_, _, _, receiptRepo, resolver := chainFixture()

	require.NoError(t, receiptRepo.Create(ctx, &entity.ReceiptCampaign{MinTotal: 5000, Discount: 900}))

	receipt := &entity.Receipt{Status: enum.ReceiptStatusOpen}
	require.NoError(t, receipt.AddItem(entity.NewProductItem(uuid.New(), 600, nil, 2)))

	require.NoError(t, resolver.ApplyReceiptDiscount(ctx, receipt))
	assert.Nil(t, receipt.DiscountTotal)
}

func TestApplyReceiptDiscount_StacksOnItemDiscounts(t *testing.T) {
	ctx := context.Background()
	_, _, _, receiptRepo, resolver := chainFixture()

	require.NoError(t, receiptRepo.Create(ctx, &entity.ReceiptCampaign{MinTotal: 500, Discount: 100}))

	discount := int64(400)
	receipt := &entity.Receipt{Status: enum.ReceiptStatusOpen}
	require.NoError(t, receipt.AddItem(entity.NewProductItem(uuid.New(), 500, &discount, 2)))

	require.NoError(t, resolver.ApplyReceiptDiscount(ctx, receipt))

	// The flat discount applies on top of the 800 item-discounted total.
	require.NotNil(t, receipt.DiscountTotal)
	assert.Equal(t, int64(700), *receipt.DiscountTotal)
}
