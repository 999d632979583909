package models

import "time"

// Transaction is a single recorded expense. CategoryName and CategoryColor
// are filled from the join when the record is read back, never stored.
type Transaction struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	CategoryID    string    `json:"category"`
	CategoryName  string    `json:"categoryName,omitempty"`
	CategoryColor string    `json:"categoryColor,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateTransactionRequest uses pointers where "missing" and "zero value"
// must be told apart (an amount of 0 is valid).
type CreateTransactionRequest struct {
	Amount      *float64   `json:"amount"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Category    string     `json:"category"`
}

// UpdateTransactionRequest is a partial patch; nil fields are left untouched.
type UpdateTransactionRequest struct {
	Amount      *float64   `json:"amount"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Category    *string    `json:"category"`
}
