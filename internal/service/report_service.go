package service

import (
	"context"
	"time"

	"jewelpos/internal/domain"
	"jewelpos/internal/port"
)

// exportPageSize bounds how many bills are loaded per page when assembling a
// register export.
const exportPageSize = 500

// ReportService reads the aggregates and registers behind the reporting
// endpoints.
type ReportService interface {
	Turnover(ctx context.Context, from, to time.Time) ([]domain.TurnoverEntry, error)
	BillRegister(ctx context.Context, from, to time.Time) ([]domain.Bill, error)
}

type reportService struct {
	turnoverRepo port.TurnoverRepository
	billRepo     port.BillRepository
}

// NewReportService creates a new ReportService.
func NewReportService(turnoverRepo port.TurnoverRepository, billRepo port.BillRepository) ReportService {
	return &reportService{turnoverRepo: turnoverRepo, billRepo: billRepo}
}

func (s *reportService) Turnover(ctx context.Context, from, to time.Time) ([]domain.TurnoverEntry, error) {
	return s.turnoverRepo.Range(ctx, from, to)
}

// BillRegister loads every bill in the window, paging through the repository
// so a year-end export does not need a one-shot unbounded query.
func (s *reportService) BillRegister(ctx context.Context, from, to time.Time) ([]domain.Bill, error) {
	var all []domain.Bill
	offset := 0
	for {
		page, total, err := s.billRepo.List(ctx, from, to, offset, exportPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		offset += len(page)
		if offset >= total || len(page) == 0 {
			break
		}
	}
	return all, nil
}
