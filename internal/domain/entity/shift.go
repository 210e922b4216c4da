package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/enum"
	"github.com/sandrok/posify-api/pkg/apperror"
	"gorm.io/gorm"
)

// Shift is an operational period accumulating paid receipts until closed.
// Status is assigned explicitly at construction; NewShift is the only way an
// Open shift comes into existence.
type Shift struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Status    enum.ShiftStatus `gorm:"default:0" json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`

	// Receipts holds only paid receipts attached through the payment flow.
	Receipts []Receipt `gorm:"foreignKey:ShiftID" json:"receipts,omitempty"`
}

// NewShift creates an open shift.
func NewShift() *Shift {
	return &Shift{Status: enum.ShiftStatusOpen}
}

// BeforeCreate generates a UUID before creating a new shift
func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shift model
func (Shift) TableName() string {
	return "shifts"
}

// Price sums each attached receipt's discounted-or-base total, in cents.
func (s *Shift) Price() int64 {
	var sum int64
	for idx := range s.Receipts {
		r := &s.Receipts[idx]
		if d := r.DiscountedPrice(); d != nil {
			sum += *d
		} else {
			sum += r.Price()
		}
	}
	return sum
}

// AddReceipt appends a paid receipt. Fails on a closed shift.
func (s *Shift) AddReceipt(receipt *Receipt) error {
	if s.Status == enum.ShiftStatusClosed {
		return apperror.NewShiftClosedError(s.ID)
	}
	s.Receipts = append(s.Receipts, *receipt)
	return nil
}

// Close transitions the shift to its terminal Closed status. A closed shift
// cannot transition again.
func (s *Shift) Close() error {
	if s.Status == enum.ShiftStatusClosed {
		return apperror.NewShiftClosedError(s.ID)
	}
	s.Status = enum.ShiftStatusClosed
	return nil
}

// MarshalJSON converts the shift to JSON with a decimal total
func (s Shift) MarshalJSON() ([]byte, error) {
	type Alias Shift
	return json.Marshal(struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(s),
		Total: float64(s.Price()) / 100,
	})
}
