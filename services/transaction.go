package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"expense-api/models"
	"expense-api/store"

	"github.com/google/uuid"
)

// TransactionService enforces validation and checks the category reference
// before every write instead of trusting the store's foreign key.
type TransactionService struct {
	store store.Store
}

func NewTransactionService(s store.Store) *TransactionService {
	return &TransactionService{store: s}
}

// List returns all transactions, newest date first, with the category
// name and color resolved.
func (s *TransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.store.ListTransactions(ctx)
}

func (s *TransactionService) Get(ctx context.Context, id string) (*models.Transaction, error) {
	txn, err := s.store.GetTransaction(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{Resource: "Transaction"}
	}
	return txn, err
}

func (s *TransactionService) Create(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	var messages ValidationError
	if req.Amount == nil {
		messages = append(messages, "Amount is required")
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		messages = append(messages, "Description is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		messages = append(messages, "Category is required")
	}
	if len(messages) > 0 {
		return nil, messages
	}

	if err := s.checkCategory(ctx, req.Category); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	txn := &models.Transaction{
		ID:          uuid.New().String(),
		Amount:      *req.Amount,
		Description: description,
		Date:        date,
		CategoryID:  req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateTransaction(ctx, txn); err != nil {
		// The store only reports not-found here when the category vanished
		// between the check above and the insert.
		if errors.Is(err, store.ErrNotFound) {
			return nil, ValidationError{"Category not found"}
		}
		return nil, err
	}

	return txn, nil
}

// Update applies a partial patch with the same validation as Create.
func (s *TransactionService) Update(ctx context.Context, id string, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	txn, err := s.store.GetTransaction(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{Resource: "Transaction"}
	}
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, ValidationError{"Description is required"}
		}
		txn.Description = description
	}
	if req.Date != nil {
		txn.Date = req.Date.UTC()
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return nil, ValidationError{"Category is required"}
		}
		if err := s.checkCategory(ctx, category); err != nil {
			return nil, err
		}
		txn.CategoryID = category
	}
	txn.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateTransaction(ctx, txn); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Transaction"}
		}
		return nil, err
	}

	// Re-read so the response carries the resolved category.
	return s.Get(ctx, id)
}

func (s *TransactionService) Delete(ctx context.Context, id string) error {
	err := s.store.DeleteTransaction(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Resource: "Transaction"}
	}
	return err
}

func (s *TransactionService) checkCategory(ctx context.Context, id string) error {
	exists, err := s.store.CategoryExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ValidationError{"Category not found"}
	}
	return nil
}
