package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	"github.com/sandrok/posify-api/internal/domain/repository"
	"github.com/sandrok/posify-api/pkg/apperror"
)

// ShiftService handles cash register shift operations
type ShiftService struct {
	shiftRepo repository.ShiftRepository
}

// NewShiftService creates a new shift service
func NewShiftService(shiftRepo repository.ShiftRepository) *ShiftService {
	return &ShiftService{shiftRepo: shiftRepo}
}

// CreateShift opens a new shift
func (s *ShiftService) CreateShift(ctx context.Context) (*entity.Shift, error) {
	shift := entity.NewShift()
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// GetShift retrieves a shift with its paid receipts
func (s *ShiftService) GetShift(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewShiftNotFoundError(id)
	}
	return shift, nil
}

// CloseShift transitions the shift to its terminal Closed status
func (s *ShiftService) CloseShift(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	shift, err := s.GetShift(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := shift.Close(); err != nil {
		return nil, err
	}
	if err := s.shiftRepo.UpdateStatus(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}
