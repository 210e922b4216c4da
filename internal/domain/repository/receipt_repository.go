package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
)

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	// Save persists the receipt's fields and reconciles its item list: lines
	// present on the receipt are upserted, lines no longer present are
	// removed.
	Save(ctx context.Context, receipt *entity.Receipt) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShiftRepository defines the interface for shift data operations
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.Shift) error
	// GetByID loads the shift with its paid receipts and their items.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error)
	GetAll(ctx context.Context) ([]entity.Shift, error)
	UpdateStatus(ctx context.Context, shift *entity.Shift) error
	// AttachReceipt marks the receipt as paid, making it part of the shift's
	// receipt list.
	AttachReceipt(ctx context.Context, shiftID, receiptID uuid.UUID) error
}
