package store

import (
	"context"
	"testing"
	"time"

	"expense-api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategory(name, color string) *models.Category {
	now := time.Now().UTC()
	return &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTestTransaction(amount float64, categoryID string, date time.Time) *models.Transaction {
	now := time.Now().UTC()
	return &models.Transaction{
		ID:          uuid.New().String(),
		Amount:      amount,
		Description: "test",
		Date:        date,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCategoryCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	food := newTestCategory("Food", "#FF0000")
	require.NoError(t, s.CreateCategory(ctx, food))

	got, err := s.GetCategory(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Food", got.Name)
	assert.Equal(t, "#FF0000", got.Color)

	food.Name = "Groceries"
	require.NoError(t, s.UpdateCategory(ctx, food))
	got, err = s.GetCategory(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Name)

	require.NoError(t, s.DeleteCategory(ctx, food.ID))
	_, err = s.GetCategory(ctx, food.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetCategory(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.UpdateCategory(ctx, newTestCategory("Ghost", "#000000"))
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.DeleteCategory(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCategoriesSortedByName(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, name := range []string{"Utilities", "Food", "Housing"} {
		require.NoError(t, s.CreateCategory(ctx, newTestCategory(name, "#000000")))
	}

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, "Housing", categories[1].Name)
	assert.Equal(t, "Utilities", categories[2].Name)
}

func TestDuplicateCategoryName(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.CreateCategory(ctx, newTestCategory("Food", "#FF0000")))

	err := s.CreateCategory(ctx, newTestCategory("Food", "#00FF00"))
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Exact match only: a different case is a different name.
	assert.NoError(t, s.CreateCategory(ctx, newTestCategory("food", "#00FF00")))

	other := newTestCategory("Snacks", "#0000FF")
	require.NoError(t, s.CreateCategory(ctx, other))
	other.Name = "Food"
	assert.ErrorIs(t, s.UpdateCategory(ctx, other), ErrDuplicateName)

	// Renaming a category to its own name is not a conflict.
	food := newTestCategory("Drinks", "#123456")
	require.NoError(t, s.CreateCategory(ctx, food))
	food.Color = "#654321"
	assert.NoError(t, s.UpdateCategory(ctx, food))
}

func TestDeleteCategoryInUse(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	food := newTestCategory("Food", "#FF0000")
	require.NoError(t, s.CreateCategory(ctx, food))
	require.NoError(t, s.CreateTransaction(ctx, newTestTransaction(10, food.ID, time.Now().UTC())))

	err := s.DeleteCategory(ctx, food.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	// The category must remain intact.
	got, err := s.GetCategory(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Food", got.Name)
}

func TestCreateTransactionRequiresCategory(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.CreateTransaction(ctx, newTestTransaction(10, uuid.New().String(), time.Now().UTC()))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionReadsResolveCategory(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	food := newTestCategory("Food", "#FF0000")
	require.NoError(t, s.CreateCategory(ctx, food))

	txn := newTestTransaction(50, food.ID, time.Now().UTC())
	require.NoError(t, s.CreateTransaction(ctx, txn))

	got, err := s.GetTransaction(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, "Food", got.CategoryName)
	assert.Equal(t, "#FF0000", got.CategoryColor)

	list, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Food", list[0].CategoryName)
}

func TestTotalExpenses(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	total, err := s.TotalExpenses(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	food := newTestCategory("Food", "#FF0000")
	require.NoError(t, s.CreateCategory(ctx, food))
	for _, amount := range []float64{10, 20.5, 0, 4.5} {
		require.NoError(t, s.CreateTransaction(ctx, newTestTransaction(amount, food.ID, time.Now().UTC())))
	}

	total, err = s.TotalExpenses(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 35.0, total, 1e-9)
}

func TestCategoryTotalsOmitIdleCategories(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	food := newTestCategory("Food", "#FF0000")
	idle := newTestCategory("Idle", "#00FF00")
	require.NoError(t, s.CreateCategory(ctx, food))
	require.NoError(t, s.CreateCategory(ctx, idle))

	require.NoError(t, s.CreateTransaction(ctx, newTestTransaction(30, food.ID, time.Now().UTC())))
	require.NoError(t, s.CreateTransaction(ctx, newTestTransaction(20, food.ID, time.Now().UTC())))

	totals, err := s.CategoryTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, food.ID, totals[0].CategoryID)
	assert.Equal(t, "Food", totals[0].CategoryName)
	assert.Equal(t, "#FF0000", totals[0].CategoryColor)
	assert.InDelta(t, 50.0, totals[0].Total, 1e-9)
}

func TestMonthlyTotalsYearWindow(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	food := newTestCategory("Food", "#FF0000")
	require.NoError(t, s.CreateCategory(ctx, food))

	inWindow := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, date := range inWindow {
		require.NoError(t, s.CreateTransaction(ctx, newTestTransaction(10, food.ID, date)))
	}
	// Outside the window.
	require.NoError(t, s.CreateTransaction(ctx, newTestTransaction(99, food.ID, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, s.CreateTransaction(ctx, newTestTransaction(99, food.ID, time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC))))

	totals, err := s.MonthlyTotals(ctx, 2024)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, totals[time.January], 1e-9)
	assert.InDelta(t, 10.0, totals[time.March], 1e-9)
	assert.InDelta(t, 10.0, totals[time.December], 1e-9)
	assert.Len(t, totals, 3)
}

func TestMonthlyTotalsGroupInUTC(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	food := newTestCategory("Food", "#FF0000")
	require.NoError(t, s.CreateCategory(ctx, food))

	// Jan 31 23:00 UTC expressed as Feb 1 09:00 in UTC+10; it belongs to January.
	zone := time.FixedZone("UTC+10", 10*3600)
	date := time.Date(2024, time.February, 1, 9, 0, 0, 0, zone)
	require.NoError(t, s.CreateTransaction(ctx, newTestTransaction(10, food.ID, date)))

	totals, err := s.MonthlyTotals(ctx, 2024)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, totals[time.January], 1e-9)
	assert.Zero(t, totals[time.February])
}

func TestRecentTransactionsOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	food := newTestCategory("Food", "#FF0000")
	require.NoError(t, s.CreateCategory(ctx, food))

	base := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		txn := newTestTransaction(float64(i), food.ID, base.AddDate(0, 0, i))
		txn.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.CreateTransaction(ctx, txn))
	}

	recent, err := s.RecentTransactions(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	for i := 0; i < len(recent)-1; i++ {
		assert.False(t, recent[i].Date.Before(recent[i+1].Date))
	}
	assert.InDelta(t, 6.0, recent[0].Amount, 1e-9)
}

func TestRecentTransactionsTieBreakOnCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	food := newTestCategory("Food", "#FF0000")
	require.NoError(t, s.CreateCategory(ctx, food))

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	first := newTestTransaction(1, food.ID, date)
	first.CreatedAt = date.Add(1 * time.Minute)
	second := newTestTransaction(2, food.ID, date)
	second.CreatedAt = date.Add(2 * time.Minute)
	require.NoError(t, s.CreateTransaction(ctx, first))
	require.NoError(t, s.CreateTransaction(ctx, second))

	recent, err := s.RecentTransactions(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.InDelta(t, 2.0, recent[0].Amount, 1e-9)
	assert.InDelta(t, 1.0, recent[1].Amount, 1e-9)
}

func TestSeedOnlyOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, Seed(ctx, s))
	count, err := s.CountCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultCategories), count)

	// A second run must not duplicate anything.
	require.NoError(t, Seed(ctx, s))
	count, err = s.CountCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultCategories), count)
}
