package store

import (
	"context"
	"log"
	"time"

	"expense-api/models"

	"github.com/google/uuid"
)

// DefaultCategories are inserted once, on first boot against an empty store.
var DefaultCategories = []models.Category{
	{Name: "Food & Dining", Color: "#FF5733"},
	{Name: "Transportation", Color: "#33FF57"},
	{Name: "Housing", Color: "#3357FF"},
	{Name: "Entertainment", Color: "#F033FF"},
	{Name: "Shopping", Color: "#FF9F33"},
	{Name: "Utilities", Color: "#33FFF0"},
	{Name: "Healthcare", Color: "#FF33A8"},
	{Name: "Personal", Color: "#A833FF"},
	{Name: "Education", Color: "#33A1FF"},
	{Name: "Other", Color: "#B5B5B5"},
}

// Seed populates the default categories when the category store is empty.
func Seed(ctx context.Context, s Store) error {
	count, err := s.CountCategories(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Categories already exist, skipping seed")
		return nil
	}

	now := time.Now().UTC()
	for _, category := range DefaultCategories {
		category.ID = uuid.New().String()
		category.CreatedAt = now
		category.UpdatedAt = now
		if err := s.CreateCategory(ctx, &category); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d default categories", len(DefaultCategories))
	return nil
}
