package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func campaignFixture() (*receiptFixture, *CampaignService) {
	f := newReceiptFixture()
	resolver := newResolver(f.gifts, f.combos, f.discounts, f.receiptCamps)
	svc := NewCampaignService(f.discounts, f.combos, f.gifts, f.receiptCamps, f.products, resolver)
	return f, svc
}

func TestCreateDiscountCampaign(t *testing.T) {
	ctx := context.Background()
	f, svc := campaignFixture()
	milk := f.addProduct(t, "milk", 1000)
	bread := f.addProduct(t, "bread", 500)

	campaign, err := svc.CreateDiscountCampaign(ctx, 20, []uuid.UUID{milk.ID, bread.ID})
	require.NoError(t, err)
	assert.Equal(t, 20, campaign.Percent)
	assert.Len(t, campaign.Products, 2)
}

func TestCreateDiscountCampaign_UnknownProduct(t *testing.T) {
	_, svc := campaignFixture()
	_, err := svc.CreateDiscountCampaign(context.Background(), 20, []uuid.UUID{uuid.New()})
	require.Error(t, err)
}

func TestCreateComboCampaign_SnapshotsPrices(t *testing.T) {
	ctx := context.Background()
	f, svc := campaignFixture()
	milk := f.addProduct(t, "milk", 1000)

	campaign, err := svc.CreateComboCampaign(ctx, 200, []ComboProductInput{{ProductID: milk.ID, Quantity: 2}})
	require.NoError(t, err)
	require.Len(t, campaign.Products, 1)
	assert.Equal(t, int64(1000), campaign.Products[0].UnitPrice)
	assert.Equal(t, int64(2000), campaign.Products[0].Total)

	// later price changes do not reach the snapshot
	require.NoError(t, f.products.UpdatePrice(ctx, milk.ID, 1500))
	stored, err := f.combos.GetByID(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stored.Products[0].UnitPrice)
}

func TestCreateBuyNGetNCampaign(t *testing.T) {
	ctx := context.Background()
	f, svc := campaignFixture()
	milk := f.addProduct(t, "milk", 1000)
	soap := f.addProduct(t, "soap", 300)

	campaign, err := svc.CreateBuyNGetNCampaign(ctx,
		ComboProductInput{ProductID: milk.ID, Quantity: 2},
		ComboProductInput{ProductID: soap.ID, Quantity: 1},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), campaign.Buy.Total)
	assert.Equal(t, int64(300), campaign.Gift.Total)
	assert.Equal(t, int64(2000), campaign.RealPrice())
}

func TestCreateReceiptCampaign(t *testing.T) {
	_, svc := campaignFixture()
	campaign, err := svc.CreateReceiptCampaign(context.Background(), 5000, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), campaign.MinTotal)
	assert.Equal(t, int64(500), campaign.Discount)
}

func TestListCampaigns_AllTypes(t *testing.T) {
	ctx := context.Background()
	f, svc := campaignFixture()
	milk := f.addProduct(t, "milk", 1000)
	soap := f.addProduct(t, "soap", 300)

	_, err := svc.CreateDiscountCampaign(ctx, 20, []uuid.UUID{milk.ID})
	require.NoError(t, err)
	_, err = svc.CreateComboCampaign(ctx, 200, []ComboProductInput{{ProductID: milk.ID, Quantity: 2}})
	require.NoError(t, err)
	_, err = svc.CreateBuyNGetNCampaign(ctx,
		ComboProductInput{ProductID: milk.ID, Quantity: 1},
		ComboProductInput{ProductID: soap.ID, Quantity: 1},
	)
	require.NoError(t, err)
	_, err = svc.CreateReceiptCampaign(ctx, 5000, 500)
	require.NoError(t, err)

	campaigns, err := svc.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 4)

	types := map[enum.CampaignType]bool{}
	for _, c := range campaigns {
		types[c.CampaignType()] = true
	}
	assert.Len(t, types, 4)
}

func TestGetCampaign(t *testing.T) {
	ctx := context.Background()
	_, svc := campaignFixture()
	created, err := svc.CreateReceiptCampaign(ctx, 5000, 500)
	require.NoError(t, err)

	found, err := svc.GetCampaign(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.CampaignID())
}

func TestDeleteCampaign(t *testing.T) {
	ctx := context.Background()
	_, svc := campaignFixture()
	created, err := svc.CreateReceiptCampaign(ctx, 5000, 500)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCampaign(ctx, created.ID))
	_, err = svc.GetCampaign(ctx, created.ID)
	require.Error(t, err)
}

func TestAddProductToCombo(t *testing.T) {
	ctx := context.Background()
	f, svc := campaignFixture()
	milk := f.addProduct(t, "milk", 1000)
	bread := f.addProduct(t, "bread", 500)

	campaign, err := svc.CreateComboCampaign(ctx, 200, []ComboProductInput{{ProductID: milk.ID, Quantity: 1}})
	require.NoError(t, err)

	updated, err := svc.AddProductToCombo(ctx, campaign.ID, ComboProductInput{ProductID: bread.ID, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, updated.Products, 2)
	assert.Equal(t, int64(1000), updated.Products[1].Total)
}

func TestAddProductToDiscount(t *testing.T) {
	ctx := context.Background()
	f, svc := campaignFixture()
	milk := f.addProduct(t, "milk", 1000)
	bread := f.addProduct(t, "bread", 500)

	campaign, err := svc.CreateDiscountCampaign(ctx, 20, []uuid.UUID{milk.ID})
	require.NoError(t, err)

	updated, err := svc.AddProductToDiscount(ctx, campaign.ID, bread.ID)
	require.NoError(t, err)
	assert.Len(t, updated.Products, 2)
}

func TestRemoveProductFromDiscount(t *testing.T) {
	ctx := context.Background()
	f, svc := campaignFixture()
	milk := f.addProduct(t, "milk", 1000)

	campaign, err := svc.CreateDiscountCampaign(ctx, 20, []uuid.UUID{milk.ID})
	require.NoError(t, err)

	updated, err := svc.RemoveProductFromDiscount(ctx, campaign.ID, milk.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Products)

	resolved, err := f.discounts.GetByProduct(ctx, milk.ID)
	require.NoError(t, err)
	assert.Nil(t, resolved)
}
