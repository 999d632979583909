package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"expense-api/models"
	"expense-api/utils"

	"github.com/lib/pq"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, color, created_at, updated_at
		FROM categories
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Color, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (s *PostgresStore) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	query := `
		SELECT id, name, color, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var category models.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Color,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (s *PostgresStore) CreateCategory(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query, category.ID, category.Name, category.Color, category.CreatedAt, category.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	return err
}

func (s *PostgresStore) UpdateCategory(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories
		SET name = $1, color = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query, category.Name, category.Color, category.UpdatedAt, category.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory deletes in one conditional statement so the in-use check
// cannot race a concurrent transaction insert. The follow-up existence query
// only disambiguates the error.
func (s *PostgresStore) DeleteCategory(ctx context.Context, id string) error {
	return utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		query := `
			DELETE FROM categories
			WHERE id = $1
			  AND NOT EXISTS (SELECT 1 FROM transactions WHERE category_id = $1)
		`

		result, err := tx.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows > 0 {
			return nil
		}

		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrCategoryInUse
		}
		return ErrNotFound
	})
}

func (s *PostgresStore) CategoryExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (s *PostgresStore) CountCategories(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count)
	return count, err
}

const transactionColumns = `
	t.id, t.amount, t.description, t.date, t.category_id,
	c.name, c.color, t.created_at, t.updated_at
`

func scanTransaction(row interface{ Scan(...interface{}) error }, txn *models.Transaction) error {
	return row.Scan(
		&txn.ID,
		&txn.Amount,
		&txn.Description,
		&txn.Date,
		&txn.CategoryID,
		&txn.CategoryName,
		&txn.CategoryColor,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
}

func (s *PostgresStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		ORDER BY t.date DESC, t.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var txn models.Transaction
		if err := scanTransaction(rows, &txn); err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

func (s *PostgresStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.id = $1
	`

	var txn models.Transaction
	err := scanTransaction(s.db.QueryRowContext(ctx, query, id), &txn)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &txn, nil
}

func (s *PostgresStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, amount, description, date, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		txn.ID, txn.Amount, txn.Description, txn.Date, txn.CategoryID, txn.CreatedAt, txn.UpdatedAt,
	)
	if isForeignKeyViolation(err) {
		return ErrNotFound
	}
	return err
}

func (s *PostgresStore) UpdateTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $1, description = $2, date = $3, category_id = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(ctx, query,
		txn.Amount, txn.Description, txn.Date, txn.CategoryID, txn.UpdatedAt, txn.ID,
	)
	if isForeignKeyViolation(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteTransaction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) TotalExpenses(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM transactions`).Scan(&total)
	return total, err
}

func (s *PostgresStore) CategoryTotals(ctx context.Context) ([]models.CategoryTotal, error) {
	query := `
		SELECT t.category_id, c.name, c.color, SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		GROUP BY t.category_id, c.name, c.color
		ORDER BY c.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []models.CategoryTotal{}
	for rows.Next() {
		var entry models.CategoryTotal
		if err := rows.Scan(&entry.CategoryID, &entry.CategoryName, &entry.CategoryColor, &entry.Total); err != nil {
			return nil, err
		}
		totals = append(totals, entry)
	}

	return totals, rows.Err()
}

func (s *PostgresStore) MonthlyTotals(ctx context.Context, year int) (map[time.Month]float64, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	query := `
		SELECT EXTRACT(MONTH FROM date AT TIME ZONE 'UTC')::int AS month, SUM(amount) AS total
		FROM transactions
		WHERE date >= $1 AND date < $2
		GROUP BY month
		ORDER BY month
	`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[time.Month]float64)
	for rows.Next() {
		var month int
		var total float64
		if err := rows.Scan(&month, &total); err != nil {
			return nil, err
		}
		totals[time.Month(month)] = total
	}

	return totals, rows.Err()
}

func (s *PostgresStore) RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		ORDER BY t.date DESC, t.created_at DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var txn models.Transaction
		if err := scanTransaction(rows, &txn); err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
