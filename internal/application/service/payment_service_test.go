package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	"github.com/sandrok/posify-api/internal/domain/enum"
	"github.com/sandrok/posify-api/pkg/currency"
	"github.com/sandrok/posify-api/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentFixture(converter currency.Converter) (*receiptFixture, *PaymentService) {
	f := newReceiptFixture()
	svc := NewPaymentService(f.receipts, f.shifts, converter, printer.NewNullPrinter(), "GEL", "Test Store")
	return f, svc
}

func TestPay_HomeCurrency(t *testing.T) {
	ctx := context.Background()
	f, pay := paymentFixture(&fakeConverter{rate: 2})
	shift := f.openShift(t)
	product := f.addProduct(t, "milk", 350)

	receipt, err := f.svc.CreateReceipt(ctx, shift.ID)
	require.NoError(t, err)
	_, err = f.svc.AddProduct(ctx, receipt.ID, product.ID, 2)
	require.NoError(t, err)

	result, err := pay.Pay(ctx, receipt.ID, "GEL")
	require.NoError(t, err)
	assert.Equal(t, int64(700), result.Amount)
	assert.Equal(t, "GEL", result.Currency)

	stored, err := f.receipts.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.ReceiptStatusClosed, stored.Status)
	assert.True(t, stored.Paid)
}

func TestPay_ConvertsForeignCurrency(t *testing.T) {
	ctx := context.Background()
	f, pay := paymentFixture(&fakeConverter{rate: 0.5})
	shift := f.openShift(t)
	product := f.addProduct(t, "milk", 400)

	receipt, err := f.svc.CreateReceipt(ctx, shift.ID)
	require.NoError(t, err)
	_, err = f.svc.AddProduct(ctx, receipt.ID, product.ID, 1)
	require.NoError(t, err)

	result, err := pay.Pay(ctx, receipt.ID, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(200), result.Amount)
	assert.Equal(t, "USD", result.Currency)
}

func TestPay_UsesDiscountedTotal(t *testing.T) {
	ctx := context.Background()
	f, pay := paymentFixture(&fakeConverter{rate: 1})
	shift := f.openShift(t)
	product := f.addProduct(t, "milk", 1000)

	require.NoError(t, f.discounts.Create(ctx, &entity.DiscountCampaign{
		Percent:  10,
		Products: []entity.Product{*product},
	}))

	receipt, err := f.svc.CreateReceipt(ctx, shift.ID)
	require.NoError(t, err)
	_, err = f.svc.AddProduct(ctx, receipt.ID, product.ID, 1)
	require.NoError(t, err)

	result, err := pay.Pay(ctx, receipt.ID, "GEL")
	require.NoError(t, err)
	assert.Equal(t, int64(900), result.Amount)
}

func TestPay_ConversionFailureLeavesReceiptOpen(t *testing.T) {
	ctx := context.Background()
	convErr := &currency.ConversionError{From: "GEL", To: "USD", Reason: "rate source down"}
	f, pay := paymentFixture(&fakeConverter{err: convErr})
	shift := f.openShift(t)
	product := f.addProduct(t, "milk", 400)

	receipt, err := f.svc.CreateReceipt(ctx, shift.ID)
	require.NoError(t, err)
	_, err = f.svc.AddProduct(ctx, receipt.ID, product.ID, 1)
	require.NoError(t, err)

	_, err = pay.Pay(ctx, receipt.ID, "USD")
	require.ErrorIs(t, err, convErr)

	stored, err := f.receipts.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.ReceiptStatusOpen, stored.Status)
	assert.False(t, stored.Paid)
}

func TestPay_ClosedReceiptRejected(t *testing.T) {
	ctx := context.Background()
	f, pay := paymentFixture(&fakeConverter{rate: 1})
	shift := f.openShift(t)
	product := f.addProduct(t, "milk", 400)

	receipt, err := f.svc.CreateReceipt(ctx, shift.ID)
	require.NoError(t, err)
	_, err = f.svc.AddProduct(ctx, receipt.ID, product.ID, 1)
	require.NoError(t, err)

	_, err = pay.Pay(ctx, receipt.ID, "GEL")
	require.NoError(t, err)

	_, err = pay.Pay(ctx, receipt.ID, "GEL")
	require.Error(t, err)
}

func TestPay_UnknownReceipt(t *testing.T) {
	_, pay := paymentFixture(&fakeConverter{rate: 1})
	_, err := pay.Pay(context.Background(), uuid.New(), "GEL")
	require.Error(t, err)
}

func TestPay_AttachesReceiptToShift(t *testing.T) {
	ctx := context.Background()
	f, pay := paymentFixture(&fakeConverter{rate: 1})
	shift := f.openShift(t)
	product := f.addProduct(t, "milk", 400)

	receipt, err := f.svc.CreateReceipt(ctx, shift.ID)
	require.NoError(t, err)
	_, err = f.svc.AddProduct(ctx, receipt.ID, product.ID, 1)
	require.NoError(t, err)

	_, err = pay.Pay(ctx, receipt.ID, "GEL")
	require.NoError(t, err)

	stored, err := f.shifts.GetByID(ctx, shift.ID)
	require.NoError(t, err)
	require.Len(t, stored.Receipts, 1)
	assert.Equal(t, receipt.ID, stored.Receipts[0].ID)
	assert.Equal(t, int64(400), stored.Price())
}
