package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	"github.com/sandrok/posify-api/internal/domain/enum"
	"github.com/sandrok/posify-api/internal/domain/repository"
	"github.com/sandrok/posify-api/pkg/apperror"
	"github.com/sandrok/posify-api/pkg/currency"
	"github.com/sandrok/posify-api/pkg/printer"
)

// PaymentService settles receipts: converts the payable amount into the
// requested currency, closes the receipt and attaches it to its shift.
type PaymentService struct {
	receiptRepo  repository.ReceiptRepository
	shiftRepo    repository.ShiftRepository
	converter    currency.Converter
	printer      printer.Printer
	homeCurrency string
	storeName    string
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	receiptRepo repository.ReceiptRepository,
	shiftRepo repository.ShiftRepository,
	converter currency.Converter,
	p printer.Printer,
	homeCurrency string,
	storeName string,
) *PaymentService {
	return &PaymentService{
		receiptRepo:  receiptRepo,
		shiftRepo:    shiftRepo,
		converter:    converter,
		printer:      p,
		homeCurrency: homeCurrency,
		storeName:    storeName,
	}
}

// PaymentResult is the settled amount in the requested currency.
type PaymentResult struct {
	ReceiptID uuid.UUID `json:"receipt_id"`
	Amount    int64     `json:"-"` // cents
	Currency  string    `json:"currency"`
}

// MarshalJSON converts the result to JSON with a decimal amount
func (r PaymentResult) MarshalJSON() ([]byte, error) {
	type Alias PaymentResult
	return json.Marshal(struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(r),
		Amount: float64(r.Amount) / 100,
	})
}

// Pay settles the receipt. The payable amount is the discounted total when
// one exists, the base total otherwise; an explicit receipt-level campaign is
// not applied at payment time. Conversion happens before any state change, so
// a conversion failure leaves the receipt untouched.
//
// Closing the receipt and attaching it to the shift are two separate writes;
// a crash between them leaves a closed, unattached receipt.
func (s *PaymentService) Pay(ctx context.Context, receiptID uuid.UUID, currencyCode string) (*PaymentResult, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewReceiptNotFoundError(receiptID)
	}
	if receipt.Status == enum.ReceiptStatusClosed {
		return nil, apperror.NewReceiptClosedError(receiptID)
	}

	payable := receipt.Total
	if receipt.DiscountTotal != nil {
		payable = *receipt.DiscountTotal
	}

	amount := payable
	if currencyCode == "" {
		currencyCode = s.homeCurrency
	}
	if currencyCode != s.homeCurrency {
		amount, err = s.converter.Convert(ctx, payable, s.homeCurrency, currencyCode)
		if err != nil {
			return nil, err
		}
	}

	if err := receipt.Close(); err != nil {
		return nil, err
	}
	if err := s.receiptRepo.Save(ctx, receipt); err != nil {
		return nil, err
	}

	shift, err := s.shiftRepo.GetByID(ctx, receipt.ShiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewShiftNotFoundError(receipt.ShiftID)
	}
	if err := shift.AddReceipt(receipt); err != nil {
		return nil, err
	}
	if err := s.shiftRepo.AttachReceipt(ctx, shift.ID, receipt.ID); err != nil {
		return nil, err
	}

	s.printReceipt(receipt, amount, currencyCode)

	return &PaymentResult{
		ReceiptID: receipt.ID,
		Amount:    amount,
		Currency:  currencyCode,
	}, nil
}

// printReceipt sends the settled receipt to the configured printer.
// Best-effort: a printer failure never fails the payment.
func (s *PaymentService) printReceipt(receipt *entity.Receipt, paid int64, currencyCode string) {
	if !s.printer.IsConnected() {
		return
	}

	lines := make([]printer.ReceiptLine, 0, len(receipt.Items))
	for i := range receipt.Items {
		item := &receipt.Items[i]
		total := item.Total
		if item.DiscountTotal != nil {
			total = *item.DiscountTotal
		}
		lines = append(lines, printer.ReceiptLine{
			Label:    item.Type.String() + " " + item.RefID.String()[:8],
			Quantity: item.Quantity,
			Total:    float64(total) / 100,
		})
	}

	doc := printer.ReceiptDoc{
		StoreName: s.storeName,
		ReceiptID: receipt.ID.String(),
		Date:      time.Now().Format("2006-01-02 15:04:05"),
		Lines:     lines,
		Total:     float64(receipt.Total) / 100,
		Paid:      float64(paid) / 100,
		Currency:  currencyCode,
	}
	if receipt.DiscountTotal != nil {
		d := float64(*receipt.DiscountTotal) / 100
		doc.Discount = &d
	}

	if err := s.printer.Print(printer.BuildReceipt(doc, 32)); err != nil {
		log.Printf("Printer error (receipt %s): %v", receipt.ID, err)
	}
}
