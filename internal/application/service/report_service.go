package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/repository"
)

// ReportService produces the sales and expenses report
type ReportService struct {
	saleRepo    repository.SaleRepository
	stallRepo   repository.StallRepository
	expenseRepo repository.ExpenseRepository
}

// NewReportService creates a new report service
func NewReportService(
	saleRepo repository.SaleRepository,
	stallRepo repository.StallRepository,
	expenseRepo repository.ExpenseRepository,
) *ReportService {
	return &ReportService{
		saleRepo:    saleRepo,
		stallRepo:   stallRepo,
		expenseRepo: expenseRepo,
	}
}

// Report is the full sales report payload.
type Report struct {
	Statistics   Statistics          `json:"statistics"`
	SalesByStall []StallSalesSummary `json:"sales_by_stall"`
	Sales        []entity.Sale       `json:"sales"`
}

// GetReport builds the report from all recorded sales and expenses.
func (s *ReportService) GetReport(ctx context.Context) (*Report, error) {
	var (
		stalls        []entity.Stall
		sales         []entity.Sale
		totalExpenses float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stalls, err = s.stallRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.List(gctx, 0)
		return err
	})
	g.Go(func() error {
		var err error
		totalExpenses, err = s.expenseRepo.TotalCost(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := reduceSalesByStall(stalls, sales)

	return &Report{
		Statistics:   reduceStatistics(summaries, totalExpenses),
		SalesByStall: summaries,
		Sales:        sales,
	}, nil
}
