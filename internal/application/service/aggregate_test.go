package service

import (
	"testing"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
)

func TestReduceSalesByStall(t *testing.T) {
	stallA := entity.Stall{StallID: uuid.New(), StallName: "Stall 1"}
	stallB := entity.Stall{StallID: uuid.New(), StallName: "Stall 2"}
	stallC := entity.Stall{StallID: uuid.New(), StallName: "Stall 3"}

	sales := []entity.Sale{
		{StallID: stallA.StallID, TotalAmount: 240, SaleDate: "2026-08-01"},
		{StallID: stallB.StallID, TotalAmount: 30, SaleDate: "2026-08-03"},
		{StallID: stallA.StallID, TotalAmount: 120, SaleDate: "2026-08-05"},
	}

	summaries := reduceSalesByStall([]entity.Stall{stallA, stallB, stallC}, sales)
	if len(summaries) != 3 {
		t.Fatalf("got %d summaries, want 3", len(summaries))
	}

	if summaries[0].TotalAmount != 360 || summaries[0].Transactions != 2 {
		t.Errorf("stall 1 = %v/%d, want 360/2", summaries[0].TotalAmount, summaries[0].Transactions)
	}
	if summaries[0].LastSaleDate != "2026-08-05" {
		t.Errorf("stall 1 last sale = %s, want 2026-08-05", summaries[0].LastSaleDate)
	}
	if summaries[1].TotalAmount != 30 || summaries[1].Transactions != 1 {
		t.Errorf("stall 2 = %v/%d, want 30/1", summaries[1].TotalAmount, summaries[1].Transactions)
	}
	// Stall with no sales is present and zero-filled.
	if summaries[2].TotalAmount != 0 || summaries[2].Transactions != 0 || summaries[2].LastSaleDate != "" {
		t.Errorf("stall 3 should be zero-filled, got %+v", summaries[2])
	}
}

func TestReduceStockByStall(t *testing.T) {
	stallA := entity.Stall{StallID: uuid.New(), StallName: "Stall 1"}
	stallB := entity.Stall{StallID: uuid.New(), StallName: "Stall 2"}

	stocks := []entity.StallStock{
		{StallID: stallA.StallID, Quantity: 12.5},
	}

	summaries := reduceStockByStall([]entity.Stall{stallA, stallB}, stocks)
	if summaries[0].Quantity != 12.5 {
		t.Errorf("stall 1 quantity = %v, want 12.5", summaries[0].Quantity)
	}
	// Missing stock row reads as zero.
	if summaries[1].Quantity != 0 {
		t.Errorf("stall 2 quantity = %v, want 0", summaries[1].Quantity)
	}
}

func TestReduceBestSellers(t *testing.T) {
	wings := uuid.New()
	rice := uuid.New()
	drink := uuid.New()
	soup := uuid.New()
	extra := uuid.New()

	sales := []entity.Sale{
		{ProductID: wings, QuantitySold: 3, TotalAmount: 360, MenuItem: &entity.MenuItem{ItemID: wings, ItemName: "Wings"}},
		{ProductID: rice, QuantitySold: 5, TotalAmount: 75, MenuItem: &entity.MenuItem{ItemID: rice, ItemName: "Rice"}},
		{ProductID: drink, QuantitySold: 5, TotalAmount: 125, MenuItem: &entity.MenuItem{ItemID: drink, ItemName: "Drink"}},
		{ProductID: wings, QuantitySold: 4, TotalAmount: 480},
		{ProductID: soup, QuantitySold: 1, TotalAmount: 60, MenuItem: &entity.MenuItem{ItemID: soup, ItemName: "Soup"}},
		{ProductID: extra, QuantitySold: 1, TotalAmount: 10, MenuItem: &entity.MenuItem{ItemID: extra, ItemName: "Extra"}},
	}

	ranked := reduceBestSellers(sales)
	if len(ranked) != 4 {
		t.Fatalf("got %d best sellers, want 4", len(ranked))
	}

	if ranked[0].ItemID != wings || ranked[0].QuantitySold != 7 {
		t.Errorf("top seller = %s x%d, want Wings x7", ranked[0].ItemName, ranked[0].QuantitySold)
	}
	// Rice and Drink tie on quantity; Rice appeared first in the feed so the
	// stable sort keeps it ahead.
	if ranked[1].ItemID != rice || ranked[2].ItemID != drink {
		t.Errorf("tie order = %s, %s; want Rice, Drink", ranked[1].ItemName, ranked[2].ItemName)
	}
	if ranked[3].ItemID != soup && ranked[3].ItemID != extra {
		t.Errorf("unexpected fourth seller %s", ranked[3].ItemName)
	}
}

func TestReduceBestSellersFewItems(t *testing.T) {
	id := uuid.New()
	ranked := reduceBestSellers([]entity.Sale{{ProductID: id, QuantitySold: 2}})
	if len(ranked) != 1 {
		t.Fatalf("got %d best sellers, want 1", len(ranked))
	}
}

func TestReduceLast7DaysZeroFill(t *testing.T) {
	points := reduceLast7Days(nil, "2026-08-31")
	if len(points) != 7 {
		t.Fatalf("got %d points, want 7", len(points))
	}
	want := []string{
		"2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28",
		"2026-08-29", "2026-08-30", "2026-08-31",
	}
	for i, p := range points {
		if p.Date != want[i] {
			t.Errorf("point %d date = %s, want %s", i, p.Date, want[i])
		}
		if p.TotalAmount != 0 || p.Transactions != 0 {
			t.Errorf("point %d should be zero, got %+v", i, p)
		}
	}
}

func TestReduceLast7DaysBuckets(t *testing.T) {
	sales := []entity.Sale{
		{SaleDate: "2026-08-31", TotalAmount: 100},
		{SaleDate: "2026-08-31", TotalAmount: 50},
		{SaleDate: "2026-08-25", TotalAmount: 25},
		// Outside the window, must be ignored.
		{SaleDate: "2026-08-20", TotalAmount: 999},
	}

	points := reduceLast7Days(sales, "2026-08-31")
	if points[6].TotalAmount != 150 || points[6].Transactions != 2 {
		t.Errorf("last day = %v/%d, want 150/2", points[6].TotalAmount, points[6].Transactions)
	}
	if points[0].TotalAmount != 25 {
		t.Errorf("first day = %v, want 25", points[0].TotalAmount)
	}
	total := 0.0
	for _, p := range points {
		total += p.TotalAmount
	}
	if total != 175 {
		t.Errorf("window total = %v, want 175", total)
	}
}

func TestReduceStatistics(t *testing.T) {
	summaries := []StallSalesSummary{
		{StallName: "Stall 1", TotalAmount: 500, Transactions: 5},
		{StallName: "Stall 2", TotalAmount: 200, Transactions: 2},
		{StallName: "Stall 3", TotalAmount: 800, Transactions: 3},
	}

	stats := reduceStatistics(summaries, 300)
	if stats.TotalSales != 1500 {
		t.Errorf("total sales = %v, want 1500", stats.TotalSales)
	}
	if stats.NetIncome != 1200 {
		t.Errorf("net income = %v, want 1200", stats.NetIncome)
	}
	if stats.TotalTransactions != 10 {
		t.Errorf("transactions = %d, want 10", stats.TotalTransactions)
	}
	if stats.HighestStall == nil || stats.HighestStall.StallName != "Stall 3" {
		t.Errorf("highest = %+v, want Stall 3", stats.HighestStall)
	}
	if stats.LowestStall == nil || stats.LowestStall.StallName != "Stall 2" {
		t.Errorf("lowest = %+v, want Stall 2", stats.LowestStall)
	}
}

func TestReduceStatisticsSingleStall(t *testing.T) {
	summaries := []StallSalesSummary{
		{StallName: "Stall 1", TotalAmount: 500},
	}

	stats := reduceStatistics(summaries, 0)
	if stats.HighestStall == nil || stats.LowestStall == nil {
		t.Fatal("highest and lowest should both be set")
	}
	// A single stall is both the best and the worst performer.
	if stats.HighestStall.StallName != "Stall 1" || stats.LowestStall.StallName != "Stall 1" {
		t.Errorf("highest/lowest = %s/%s, want Stall 1 for both",
			stats.HighestStall.StallName, stats.LowestStall.StallName)
	}
}

func TestReduceStatisticsTiesKeepFirst(t *testing.T) {
	summaries := []StallSalesSummary{
		{StallName: "Stall 1", TotalAmount: 500},
		{StallName: "Stall 2", TotalAmount: 500},
	}

	stats := reduceStatistics(summaries, 0)
	if stats.HighestStall.StallName != "Stall 1" {
		t.Errorf("highest on tie = %s, want Stall 1", stats.HighestStall.StallName)
	}
	if stats.LowestStall.StallName != "Stall 1" {
		t.Errorf("lowest on tie = %s, want Stall 1", stats.LowestStall.StallName)
	}
}

func TestReduceStatisticsEmpty(t *testing.T) {
	stats := reduceStatistics(nil, 150)
	if stats.HighestStall != nil || stats.LowestStall != nil {
		t.Error("empty summaries should leave highest and lowest unset")
	}
	if stats.NetIncome != -150 {
		t.Errorf("net income = %v, want -150", stats.NetIncome)
	}
}
