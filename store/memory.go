package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"expense-api/models"
)

// MemoryStore keeps everything in two maps behind one mutex. It is the
// backend when no database is configured, and the fixture for tests. The
// aggregation queries the SQL backend delegates to the database are written
// out here as plain loops over the records.
type MemoryStore struct {
	mu           sync.Mutex
	categories   map[string]models.Category
	transactions map[string]models.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		categories:   make(map[string]models.Category),
		transactions: make(map[string]models.Transaction),
	}
}

func (s *MemoryStore) ListCategories(_ context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (s *MemoryStore) GetCategory(_ context.Context, id string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (s *MemoryStore) CreateCategory(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTaken(category.Name, "") {
		return ErrDuplicateName
	}
	s.categories[category.ID] = *category
	return nil
}

func (s *MemoryStore) UpdateCategory(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[category.ID]; !ok {
		return ErrNotFound
	}
	if s.nameTaken(category.Name, category.ID) {
		return ErrDuplicateName
	}
	s.categories[category.ID] = *category
	return nil
}

func (s *MemoryStore) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return ErrNotFound
	}
	for _, txn := range s.transactions {
		if txn.CategoryID == id {
			return ErrCategoryInUse
		}
	}
	delete(s.categories, id)
	return nil
}

func (s *MemoryStore) CategoryExists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.categories[id]
	return ok, nil
}

func (s *MemoryStore) CountCategories(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.categories), nil
}

func (s *MemoryStore) ListTransactions(_ context.Context) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedTransactions(), nil
}

func (s *MemoryStore) GetTransaction(_ context.Context, id string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, ok := s.transactions[id]
	if !ok {
		return nil, ErrNotFound
	}
	resolved := s.resolve(txn)
	return &resolved, nil
}

func (s *MemoryStore) CreateTransaction(_ context.Context, txn *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[txn.CategoryID]; !ok {
		return ErrNotFound
	}
	s.transactions[txn.ID] = normalize(*txn)
	return nil
}

func (s *MemoryStore) UpdateTransaction(_ context.Context, txn *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[txn.ID]; !ok {
		return ErrNotFound
	}
	if _, ok := s.categories[txn.CategoryID]; !ok {
		return ErrNotFound
	}
	s.transactions[txn.ID] = normalize(*txn)
	return nil
}

func (s *MemoryStore) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[id]; !ok {
		return ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

func (s *MemoryStore) TotalExpenses(_ context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, txn := range s.transactions {
		total += txn.Amount
	}
	return total, nil
}

func (s *MemoryStore) CategoryTotals(_ context.Context) ([]models.CategoryTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sums := make(map[string]float64)
	for _, txn := range s.transactions {
		sums[txn.CategoryID] += txn.Amount
	}

	totals := make([]models.CategoryTotal, 0, len(sums))
	for categoryID, total := range sums {
		category := s.categories[categoryID]
		totals = append(totals, models.CategoryTotal{
			CategoryID:    categoryID,
			CategoryName:  category.Name,
			CategoryColor: category.Color,
			Total:         total,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].CategoryName < totals[j].CategoryName
	})
	return totals, nil
}

func (s *MemoryStore) MonthlyTotals(_ context.Context, year int) (map[time.Month]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := make(map[time.Month]float64)
	for _, txn := range s.transactions {
		date := txn.Date.UTC()
		if date.Year() != year {
			continue
		}
		totals[date.Month()] += txn.Amount
	}
	return totals, nil
}

func (s *MemoryStore) RecentTransactions(_ context.Context, limit int) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := s.sortedTransactions()
	if len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return transactions, nil
}

// nameTaken checks the unique-name rule with the same case-sensitive exact
// match the database unique index applies.
func (s *MemoryStore) nameTaken(name, excludeID string) bool {
	for id, category := range s.categories {
		if id != excludeID && category.Name == name {
			return true
		}
	}
	return false
}

func (s *MemoryStore) sortedTransactions() []models.Transaction {
	transactions := make([]models.Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		transactions = append(transactions, s.resolve(txn))
	}
	sort.Slice(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	return transactions
}

func (s *MemoryStore) resolve(txn models.Transaction) models.Transaction {
	category := s.categories[txn.CategoryID]
	txn.CategoryName = category.Name
	txn.CategoryColor = category.Color
	return txn
}

// normalize strips join-only fields before the record is stored.
func normalize(txn models.Transaction) models.Transaction {
	txn.CategoryName = ""
	txn.CategoryColor = ""
	return txn
}
