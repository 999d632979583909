package store

import (
	"context"
	"errors"
	"time"

	"expense-api/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateName = errors.New("name already exists")
	ErrCategoryInUse = errors.New("category is referenced by transactions")
)

// Store is the persistence boundary. The Postgres backend expresses the
// aggregation methods as SQL; the in-memory backend implements the same
// join/group/filter pipelines as explicit loops.
type Store interface {
	// Categories. ListCategories orders by name ascending.
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	// DeleteCategory removes the category only if no transaction references
	// it; the check and the delete are a single atomic operation.
	DeleteCategory(ctx context.Context, id string) error
	CategoryExists(ctx context.Context, id string) (bool, error)
	CountCategories(ctx context.Context) (int, error)

	// Transactions. Reads resolve the category's name and color.
	// ListTransactions orders by date descending, newest insert first on ties.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	UpdateTransaction(ctx context.Context, txn *models.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error

	// Aggregations, all read-only. MonthlyTotals groups by UTC calendar
	// month inside [Jan 1 00:00 UTC of year, Jan 1 of year+1).
	TotalExpenses(ctx context.Context) (float64, error)
	CategoryTotals(ctx context.Context) ([]models.CategoryTotal, error)
	MonthlyTotals(ctx context.Context, year int) (map[time.Month]float64, error)
	RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
}
