package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sandrok/posify-api/internal/domain/entity"
	"github.com/sandrok/posify-api/internal/domain/enum"
	"github.com/sandrok/posify-api/internal/domain/repository"
	"github.com/sandrok/posify-api/pkg/apperror"
)

// ReportService builds X and Z sales reports over paid receipts
type ReportService struct {
	shiftRepo    repository.ShiftRepository
	homeCurrency string
}

// NewReportService creates a new report service
func NewReportService(shiftRepo repository.ShiftRepository, homeCurrency string) *ReportService {
	return &ReportService{
		shiftRepo:    shiftRepo,
		homeCurrency: homeCurrency,
	}
}

// SoldItem is one row of a report's sold-quantity breakdown. Rows keep the
// order in which items were first seen across receipts.
type SoldItem struct {
	ID       uuid.UUID `json:"id"`
	Quantity int       `json:"quantity"`
}

// SalesReport aggregates paid receipts: receipt count, revenue keyed by
// currency and per-item sold quantities.
type SalesReport struct {
	NReceipts int              `json:"n_receipts"`
	Revenue   map[string]int64 `json:"-"` // cents per currency
	Sold      []SoldItem       `json:"products"`
}

// MarshalJSON converts the report to JSON with decimal revenue amounts
func (r SalesReport) MarshalJSON() ([]byte, error) {
	type Alias SalesReport
	revenue := make(map[string]float64, len(r.Revenue))
	for cur, cents := range r.Revenue {
		revenue[cur] = float64(cents) / 100
	}
	return json.Marshal(struct {
		Alias
		Revenue map[string]float64 `json:"revenue"`
	}{
		Alias:   Alias(r),
		Revenue: revenue,
	})
}

// aggregate folds receipts into a report. Each receipt contributes its
// discounted total when one exists, its base total otherwise.
func (s *ReportService) aggregate(receipts []entity.Receipt) *SalesReport {
	report := &SalesReport{
		Revenue: map[string]int64{s.homeCurrency: 0},
		Sold:    []SoldItem{},
	}
	seen := map[uuid.UUID]int{}

	for ri := range receipts {
		receipt := &receipts[ri]
		report.NReceipts++

		amount := receipt.Total
		if receipt.DiscountTotal != nil {
			amount = *receipt.DiscountTotal
		}
		report.Revenue[s.homeCurrency] += amount

		for ii := range receipt.Items {
			item := &receipt.Items[ii]
			if idx, ok := seen[item.RefID]; ok {
				report.Sold[idx].Quantity += item.Quantity
				continue
			}
			seen[item.RefID] = len(report.Sold)
			report.Sold = append(report.Sold, SoldItem{ID: item.RefID, Quantity: item.Quantity})
		}
	}

	return report
}

// XReport aggregates the paid receipts of every shift
func (s *ReportService) XReport(ctx context.Context) (*SalesReport, error) {
	shifts, err := s.shiftRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var receipts []entity.Receipt
	for i := range shifts {
		receipts = append(receipts, shifts[i].Receipts...)
	}
	return s.aggregate(receipts), nil
}

// ZReport aggregates one closed shift. Reporting on a shift that is still
// open fails.
func (s *ReportService) ZReport(ctx context.Context, shiftID uuid.UUID) (*SalesReport, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewShiftNotFoundError(shiftID)
	}
	if shift.Status == enum.ShiftStatusOpen {
		return nil, apperror.NewShiftOpenedError(shiftID)
	}
	return s.aggregate(shift.Receipts), nil
}
