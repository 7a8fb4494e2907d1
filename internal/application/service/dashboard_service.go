package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/repository"
)

// DashboardService assembles the admin dashboard from sales, stock, and
// stall data.
type DashboardService struct {
	saleRepo  repository.SaleRepository
	stallRepo repository.StallRepository
	stockRepo repository.StockRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	saleRepo repository.SaleRepository,
	stallRepo repository.StallRepository,
	stockRepo repository.StockRepository,
) *DashboardService {
	return &DashboardService{
		saleRepo:  saleRepo,
		stallRepo: stallRepo,
		stockRepo: stockRepo,
	}
}

// Dashboard holds every panel of the admin dashboard.
type Dashboard struct {
	SalesByStall []StallSalesSummary `json:"sales_by_stall"`
	StockByStall []StallStockSummary `json:"stock_by_stall"`
	BestSellers  []BestSeller        `json:"best_sellers"`
	Last7Days    []DailySalesPoint   `json:"last_7_days"`
	Stalls       []entity.Stall      `json:"stalls"`
}

// GetDashboard fetches the inputs concurrently and reduces them into the
// dashboard panels.
func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var (
		stalls      []entity.Stall
		stocks      []entity.StallStock
		allSales    []entity.Sale
		recentSales []entity.Sale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stalls, err = s.stallRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stocks, err = s.stockRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		allSales, err = s.saleRepo.List(gctx, 0)
		return err
	})
	g.Go(func() error {
		var err error
		recentSales, err = s.saleRepo.ListSince(gctx, daysAgo(bestSellerWindowDays))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	weekSales := make([]entity.Sale, 0, len(recentSales))
	weekStart := daysAgo(6)
	for _, sale := range recentSales {
		if sale.SaleDate >= weekStart {
			weekSales = append(weekSales, sale)
		}
	}

	return &Dashboard{
		SalesByStall: reduceSalesByStall(stalls, allSales),
		StockByStall: reduceStockByStall(stalls, stocks),
		BestSellers:  reduceBestSellers(recentSales),
		Last7Days:    reduceLast7Days(weekSales, today()),
		Stalls:       stalls,
	}, nil
}
