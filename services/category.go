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

// CategoryService enforces validation, name uniqueness and the
// referential-integrity rule on delete.
type CategoryService struct {
	store store.Store
}

func NewCategoryService(s store.Store) *CategoryService {
	return &CategoryService{store: s}
}

// List returns all categories ordered by name ascending.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.store.GetCategory(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{Resource: "Category"}
	}
	return category, err
}

func (s *CategoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ValidationError{"Category name is required"}
	}

	color := req.Color
	if color == "" {
		color = models.DefaultCategoryColor
	}

	now := time.Now().UTC()
	category := &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			return nil, ErrDuplicateCategory
		}
		return nil, err
	}

	return category, nil
}

// Update applies a partial patch under the same rules as Create.
func (s *CategoryService) Update(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.store.GetCategory(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{Resource: "Category"}
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ValidationError{"Category name is required"}
		}
		category.Name = name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	category.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateCategory(ctx, category); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateName):
			return nil, ErrDuplicateCategory
		case errors.Is(err, store.ErrNotFound):
			return nil, &NotFoundError{Resource: "Category"}
		}
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	err := s.store.DeleteCategory(ctx, id)
	switch {
	case errors.Is(err, store.ErrCategoryInUse):
		return ErrCategoryInUse
	case errors.Is(err, store.ErrNotFound):
		return &NotFoundError{Resource: "Category"}
	}
	return err
}
