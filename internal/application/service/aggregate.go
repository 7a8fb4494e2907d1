package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
)

// bestSellerCount is how many items the best-sellers panel shows.
const bestSellerCount = 4

// bestSellerWindowDays is the lookback window for best sellers.
const bestSellerWindowDays = 30

// StallSalesSummary is the per-stall rollup shown on the dashboard and in
// reports.
type StallSalesSummary struct {
	StallID      uuid.UUID `json:"stall_id"`
	StallName    string    `json:"stall_name"`
	TotalAmount  float64   `json:"total_amount"`
	Transactions int       `json:"transactions"`
	LastSaleDate string    `json:"last_sale_date,omitempty"`
}

// reduceSalesByStall groups sales under their stall. Every stall appears,
// zero-filled when it has no sales, in the order the stalls were given.
func reduceSalesByStall(stalls []entity.Stall, sales []entity.Sale) []StallSalesSummary {
	summaries := make([]StallSalesSummary, len(stalls))
	index := make(map[uuid.UUID]int, len(stalls))
	for i, st := range stalls {
		summaries[i] = StallSalesSummary{
			StallID:   st.StallID,
			StallName: st.StallName,
		}
		index[st.StallID] = i
	}

	for _, s := range sales {
		i, ok := index[s.StallID]
		if !ok {
			continue
		}
		summaries[i].TotalAmount += s.TotalAmount
		summaries[i].Transactions++
		if s.SaleDate > summaries[i].LastSaleDate {
			summaries[i].LastSaleDate = s.SaleDate
		}
	}
	return summaries
}

// StallStockSummary is the per-stall stock level for the dashboard.
type StallStockSummary struct {
	StallID   uuid.UUID `json:"stall_id"`
	StallName string    `json:"stall_name"`
	Quantity  float64   `json:"quantity"`
}

// reduceStockByStall pairs stalls with their stock rows. A stall without a
// row reads as zero.
func reduceStockByStall(stalls []entity.Stall, stocks []entity.StallStock) []StallStockSummary {
	byStall := make(map[uuid.UUID]float64, len(stocks))
	for _, st := range stocks {
		byStall[st.StallID] = st.Quantity
	}

	summaries := make([]StallStockSummary, len(stalls))
	for i, st := range stalls {
		summaries[i] = StallStockSummary{
			StallID:   st.StallID,
			StallName: st.StallName,
			Quantity:  byStall[st.StallID],
		}
	}
	return summaries
}

// BestSeller is one row of the best-sellers panel.
type BestSeller struct {
	ItemID       uuid.UUID `json:"item_id"`
	ItemName     string    `json:"item_name"`
	ImageURL     *string   `json:"image_url,omitempty"`
	QuantitySold int       `json:"quantity_sold"`
	TotalAmount  float64   `json:"total_amount"`
}

// reduceBestSellers tallies quantity sold per menu item and returns the top
// four. The sort is stable, so items tied on quantity keep the order they
// first appeared in the sales feed.
func reduceBestSellers(sales []entity.Sale) []BestSeller {
	var order []uuid.UUID
	tally := make(map[uuid.UUID]*BestSeller)

	for _, s := range sales {
		b, ok := tally[s.ProductID]
		if !ok {
			b = &BestSeller{ItemID: s.ProductID}
			if s.MenuItem != nil {
				b.ItemName = s.MenuItem.ItemName
				b.ImageURL = s.MenuItem.ImageURL
			}
			tally[s.ProductID] = b
			order = append(order, s.ProductID)
		}
		b.QuantitySold += s.QuantitySold
		b.TotalAmount += s.TotalAmount
	}

	ranked := make([]BestSeller, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *tally[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QuantitySold > ranked[j].QuantitySold
	})

	if len(ranked) > bestSellerCount {
		ranked = ranked[:bestSellerCount]
	}
	return ranked
}

// DailySalesPoint is one day on the weekly sales chart.
type DailySalesPoint struct {
	Date         string  `json:"date"`
	TotalAmount  float64 `json:"total_amount"`
	Transactions int     `json:"transactions"`
}

// reduceLast7Days buckets sales into the seven consecutive dates ending at
// endDate. Days without sales are present with zero totals.
func reduceLast7Days(sales []entity.Sale, endDate string) []DailySalesPoint {
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil
	}

	points := make([]DailySalesPoint, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		date := end.AddDate(0, 0, i-6).Format("2006-01-02")
		points[i] = DailySalesPoint{Date: date}
		index[date] = i
	}

	for _, s := range sales {
		i, ok := index[s.SaleDate]
		if !ok {
			continue
		}
		points[i].TotalAmount += s.TotalAmount
		points[i].Transactions++
	}
	return points
}

// Statistics is the report summary across the whole business.
type Statistics struct {
	TotalSales        float64            `json:"total_sales"`
	TotalExpenses     float64            `json:"total_expenses"`
	NetIncome         float64            `json:"net_income"`
	TotalTransactions int                `json:"total_transactions"`
	HighestStall      *StallSalesSummary `json:"highest_stall,omitempty"`
	LowestStall       *StallSalesSummary `json:"lowest_stall,omitempty"`
}

// reduceStatistics folds per-stall summaries and the expense total into the
// report header. Ties on highest or lowest keep the first stall encountered.
func reduceStatistics(summaries []StallSalesSummary, totalExpenses float64) Statistics {
	stats := Statistics{TotalExpenses: totalExpenses}

	for i := range summaries {
		stats.TotalSales += summaries[i].TotalAmount
		stats.TotalTransactions += summaries[i].Transactions

		if stats.HighestStall == nil || summaries[i].TotalAmount > stats.HighestStall.TotalAmount {
			stats.HighestStall = &summaries[i]
		}
		if stats.LowestStall == nil || summaries[i].TotalAmount < stats.LowestStall.TotalAmount {
			stats.LowestStall = &summaries[i]
		}
	}

	stats.NetIncome = stats.TotalSales - stats.TotalExpenses
	return stats
}
