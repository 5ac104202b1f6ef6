package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"feed_syncer/internal/domain"
)

type TaxonomyStore struct {
	db *sqlx.DB
}

func NewTaxonomyStore(db *sqlx.DB) *TaxonomyStore {
	return &TaxonomyStore{db: db}
}

// EnsureCategory finds or creates the category named (kind, name). The no-op
// DO UPDATE makes the insert return the existing row instead of racing a
// concurrent creator.
func (s *TaxonomyStore) EnsureCategory(ctx context.Context, kind, name, slug string) (*domain.Category, error) {
	query := `
		INSERT INTO categories (kind, name, slug, status, sort_order)
		VALUES ($1, $2, $3, true, 0)
		ON CONFLICT (kind, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, kind, name, slug, status, sort_order, created_at, updated_at`

	var cat domain.Category
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, kind, name, slug).Scan(
		&cat.ID, &cat.Kind, &cat.Name, &cat.Slug, &cat.Status, &cat.SortOrder,
		&cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("ensure category %q: %w", name, err)
	}
	return &cat, nil
}

// EnsureSubCategory finds or creates the subcategory named name under the
// given category.
func (s *TaxonomyStore) EnsureSubCategory(ctx context.Context, categoryID int64, name, slug string) (*domain.SubCategory, error) {
	query := `
		INSERT INTO sub_categories (category_id, name, slug, status)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (category_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, category_id, name, slug, status, created_at, updated_at`

	var sub domain.SubCategory
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, categoryID, name, slug).Scan(
		&sub.ID, &sub.CategoryID, &sub.Name, &sub.Slug, &sub.Status,
		&sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("ensure subcategory %q: %w", name, err)
	}
	return &sub, nil
}
