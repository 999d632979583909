package services

import (
	"context"
	"time"

	"expense-api/models"
	"expense-api/store"
)

// recentLimit caps the recent-transactions list on the dashboard.
const recentLimit = 5

// DashboardService produces the read-only aggregated views. Everything is
// recomputed on each call; there is no caching layer.
type DashboardService struct {
	store store.Store
}

func NewDashboardService(s store.Store) *DashboardService {
	return &DashboardService{store: s}
}

// Summary combines the total, the per-category breakdown, the current
// year's monthly series and the recent transactions into one payload.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	total, err := s.store.TotalExpenses(ctx)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.CategoryBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	monthly, err := s.MonthlySeries(ctx, 0)
	if err != nil {
		return nil, err
	}

	recent, err := s.store.RecentTransactions(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []models.Transaction{}
	}

	return &models.DashboardSummary{
		TotalExpenses:      total,
		CategoryBreakdown:  breakdown,
		MonthlyExpenses:    monthly,
		RecentTransactions: recent,
	}, nil
}

// CategoryBreakdown sums amounts per category; categories without
// transactions are omitted.
func (s *DashboardService) CategoryBreakdown(ctx context.Context) ([]models.CategoryTotal, error) {
	totals, err := s.store.CategoryTotals(ctx)
	if err != nil {
		return nil, err
	}
	if totals == nil {
		totals = []models.CategoryTotal{}
	}
	return totals, nil
}

// CategoryData is the breakdown reshaped for the pie chart.
func (s *DashboardService) CategoryData(ctx context.Context) ([]models.CategoryAmount, error) {
	totals, err := s.store.CategoryTotals(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]models.CategoryAmount, 0, len(totals))
	for _, entry := range totals {
		data = append(data, models.CategoryAmount{
			CategoryID: entry.CategoryID,
			Name:       entry.CategoryName,
			Color:      entry.CategoryColor,
			Amount:     entry.Total,
		})
	}
	return data, nil
}

// MonthlySeries returns exactly 12 points, Jan through Dec, for the given
// year. Months without transactions report 0. A year of 0 means the current
// UTC year. Months are UTC calendar months.
func (s *DashboardService) MonthlySeries(ctx context.Context, year int) ([]models.MonthlyPoint, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	totals, err := s.store.MonthlyTotals(ctx, year)
	if err != nil {
		return nil, err
	}

	points := make([]models.MonthlyPoint, 0, 12)
	for month := time.January; month <= time.December; month++ {
		points = append(points, models.MonthlyPoint{
			Month:  month.String()[:3],
			Amount: totals[month],
		})
	}
	return points, nil
}
