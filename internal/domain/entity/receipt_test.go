package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openReceipt() *Receipt {
	return &Receipt{
		ID:      uuid.New(),
		ShiftID: uuid.New(),
		Status:  enum.ReceiptStatusOpen,
		Items:   []ReceiptItem{},
	}
}

func TestReceiptAddItem_Appends(t *testing.T) {
	r := openReceipt()
	productID := uuid.New()

	err := r.AddItem(NewProductItem(productID, 500, nil, 2))
	require.NoError(t, err)

	require.Len(t, r.Items, 1)
	assert.Equal(t, 2, r.Items[0].Quantity)
	assert.Equal(t, int64(1000), r.Items[0].Total)
	assert.Equal(t, int64(1000), r.Total)
	assert.Nil(t, r.DiscountTotal)
}

func TestReceiptAddItem_MergesByItemID(t *testing.T) {
	r := openReceipt()
	productID := uuid.New()

	require.NoError(t, r.AddItem(NewProductItem(productID, 500, nil, 2)))
	require.NoError(t, r.AddItem(NewProductItem(productID, 500, nil, 3)))

	require.Len(t, r.Items, 1)
	assert.Equal(t, 5, r.Items[0].Quantity)
	assert.Equal(t, int64(2500), r.Items[0].Total)
	assert.Equal(t, int64(2500), r.Total)
}

func TestReceiptAddItem_MergeSumsDiscountTotals(t *testing.T) {
	r := openReceipt()
	productID := uuid.New()
	discount := int64(400)

	require.NoError(t, r.AddItem(NewProductItem(productID, 500, &discount, 1)))
	require.NoError(t, r.AddItem(NewProductItem(productID, 500, &discount, 1)))

	require.Len(t, r.Items, 1)
	require.NotNil(t, r.Items[0].DiscountTotal)
	assert.Equal(t, int64(800), *r.Items[0].DiscountTotal)
	require.NotNil(t, r.DiscountTotal)
	assert.Equal(t, int64(800), *r.DiscountTotal)
}

func TestReceiptAddItem_DistinctItemsStaySeparate(t *testing.T) {
	r := openReceipt()

	require.NoError(t, r.AddItem(NewProductItem(uuid.New(), 500, nil, 1)))
	require.NoError(t, r.AddItem(NewProductItem(uuid.New(), 300, nil, 1)))

	assert.Len(t, r.Items, 2)
	assert.Equal(t, int64(800), r.Total)
}

func TestReceiptAddItem_ClosedReceiptRejected(t *testing.T) {
	r := openReceipt()
	require.NoError(t, r.AddItem(NewProductItem(uuid.New(), 500, nil, 1)))
	require.NoError(t, r.Close())

	err := r.AddItem(NewProductItem(uuid.New(), 300, nil, 1))
	require.Error(t, err)
	assert.Len(t, r.Items, 1)
	assert.Equal(t, int64(500), r.Total)
}

func TestReceiptDeleteItem_DecrementsByOne(t *testing.T) {
	r := openReceipt()
	productID := uuid.New()
	require.NoError(t, r.AddItem(NewProductItem(productID, 500, nil, 3)))

	require.NoError(t, r.DeleteItem(productID))

	require.Len(t, r.Items, 1)
	assert.Equal(t, 2, r.Items[0].Quantity)
	assert.Equal(t, int64(1000), r.Items[0].Total)
	assert.Equal(t, int64(1000), r.Total)
}

func TestReceiptDeleteItem_RemovesAtZero(t *testing.T) {
	r := openReceipt()
	productID := uuid.New()
	require.NoError(t, r.AddItem(NewProductItem(productID, 500, nil, 1)))

	require.NoError(t, r.DeleteItem(productID))

	assert.Empty(t, r.Items)
	assert.Equal(t, int64(0), r.Total)
}

func TestReceiptDeleteItem_UnknownItem(t *testing.T) {
	r := openReceipt()
	require.NoError(t, r.AddItem(NewProductItem(uuid.New(), 500, nil, 1)))

	err := r.DeleteItem(uuid.New())
	require.Error(t, err)
	assert.Len(t, r.Items, 1)
}

func TestReceiptDeleteItem_ClosedReceiptRejected(t *testing.T) {
	r := openReceipt()
	productID := uuid.New()
	require.NoError(t, r.AddItem(NewProductItem(productID, 500, nil, 2)))
	require.NoError(t, r.Close())

	err := r.DeleteItem(productID)
	require.Error(t, err)
	assert.Equal(t, 2, r.Items[0].Quantity)
}

func TestReceiptClose_Terminal(t *testing.T) {
	r := openReceipt()
	require.NoError(t, r.Close())
	assert.Equal(t, enum.ReceiptStatusClosed, r.Status)

	err := r.Close()
	require.Error(t, err)
}

func TestReceiptDiscountedPrice_StrictlyLessOnly(t *testing.T) {
	r := openReceipt()
	discount := int64(400)
	require.NoError(t, r.AddItem(NewProductItem(uuid.New(), 500, &discount, 2)))
	require.NoError(t, r.AddItem(NewProductItem(uuid.New(), 300, nil, 1)))

	// Discounted lines use their discount, undiscounted lines their price.
	d := r.DiscountedPrice()
	require.NotNil(t, d)
	assert.Equal(t, int64(1100), *d)
	assert.Equal(t, int64(1300), r.Price())
}

func TestReceiptDiscountedPrice_NoDiscountAbsent(t *testing.T) {
	r := openReceipt()
	require.NoError(t, r.AddItem(NewProductItem(uuid.New(), 500, nil, 2)))

	assert.Nil(t, r.DiscountedPrice())
}

func TestReceiptDiscountedPrice_EqualNotReturned(t *testing.T) {
	r := openReceipt()
	same := int64(500)
	require.NoError(t, r.AddItem(NewProductItem(uuid.New(), 500, &same, 1)))

	// Zero discount is indistinguishable from no discount.
	assert.Nil(t, r.DiscountedPrice())
}

func TestComboItemPricing(t *testing.T) {
	combo := &ComboCampaign{
		ID:       uuid.New(),
		Discount: 200,
		Products: []ProductSnapshot{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: 300, Total: 600},
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: 400, Total: 400},
		},
	}

	item := NewComboItem(combo, 2)
	assert.Equal(t, enum.ItemTypeCombo, item.Type)
	assert.Equal(t, int64(1000), item.UnitPrice)
	require.NotNil(t, item.DiscountUnitPrice)
	assert.Equal(t, int64(800), *item.DiscountUnitPrice)
	assert.Equal(t, int64(2000), item.Total)
	require.NotNil(t, item.DiscountTotal)
	assert.Equal(t, int64(1600), *item.DiscountTotal)
}

func TestGiftItemPricing(t *testing.T) {
	gift := &BuyNGetNCampaign{
		ID:   uuid.New(),
		Buy:  ProductSnapshot{ProductID: uuid.New(), Quantity: 2, UnitPrice: 500},
		Gift: ProductSnapshot{ProductID: uuid.New(), Quantity: 1, UnitPrice: 300},
	}

	item := NewGiftItem(gift, 1)
	assert.Equal(t, enum.ItemTypeGift, item.Type)
	assert.Equal(t, int64(1300), item.UnitPrice)
	require.NotNil(t, item.DiscountUnitPrice)
	// The customer pays the buy side only.
	assert.Equal(t, int64(1000), *item.DiscountUnitPrice)
}
