package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	domainRepo "github.com/sandrok/posify-api/internal/domain/repository"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("receipt_items.created_at ASC")
		}).
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

// Save persists the receipt row and reconciles its item list: items still
// present are upserted, items removed in memory are deleted from storage.
func (r *receiptRepository) Save(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(receipt).Error; err != nil {
			return err
		}

		if len(receipt.Items) == 0 {
			return tx.Delete(&entity.ReceiptItem{}, "receipt_id = ?", receipt.ID).Error
		}

		refIDs := make([]uuid.UUID, 0, len(receipt.Items))
		for i := range receipt.Items {
			receipt.Items[i].ReceiptID = receipt.ID
			refIDs = append(refIDs, receipt.Items[i].RefID)
			if err := tx.Save(&receipt.Items[i]).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&entity.ReceiptItem{},
			"receipt_id = ? AND ref_id NOT IN ?", receipt.ID, refIDs).Error
	})
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.ReceiptItem{}, "receipt_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Receipt{}, "id = ?", id).Error
	})
}

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) domainRepo.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *entity.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	var shift entity.Shift
	err := r.db.WithContext(ctx).
		Preload("Receipts", "paid = ?", true).
		Preload("Receipts.Items").
		First(&shift, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shift, err
}

func (r *shiftRepository) GetAll(ctx context.Context) ([]entity.Shift, error) {
	var shifts []entity.Shift
	err := r.db.WithContext(ctx).
		Preload("Receipts", "paid = ?", true).
		Preload("Receipts.Items").
		Order("created_at ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) UpdateStatus(ctx context.Context, shift *entity.Shift) error {
	return r.db.WithContext(ctx).Model(&entity.Shift{}).
		Where("id = ?", shift.ID).
		Update("status", shift.Status).Error
}

// AttachReceipt marks a closed receipt as paid so the shift picks it up
func (r *shiftRepository) AttachReceipt(ctx context.Context, shiftID, receiptID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Where("id = ? AND shift_id = ?", receiptID, shiftID).
		Update("paid", true).Error
}
