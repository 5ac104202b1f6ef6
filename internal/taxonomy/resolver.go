package taxonomy

import (
	"context"
	"fmt"
	"strings"

	"feed_syncer/internal/domain"
)

// Store provisions taxonomy rows, creating them on first sight.
type Store interface {
	EnsureCategory(ctx context.Context, kind, name, slug string) (*domain.Category, error)
	EnsureSubCategory(ctx context.Context, categoryID int64, name, slug string) (*domain.SubCategory, error)
}

// Resolver maps provider-supplied labels to taxonomy ids. It memoizes lookups
// so a label seen on every record of a run costs one round trip. Create one
// per run; it is not safe for concurrent use.
type Resolver struct {
	store         Store
	categories    map[string]int64
	subCategories map[string]int64
}

func NewResolver(store Store) *Resolver {
	return &Resolver{
		store:         store,
		categories:    make(map[string]int64),
		subCategories: make(map[string]int64),
	}
}

// Category returns the id for (kind, name), provisioning the row if needed.
func (r *Resolver) Category(ctx context.Context, kind, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("empty category name")
	}

	key := kind + "/" + name
	if id, ok := r.categories[key]; ok {
		return id, nil
	}

	cat, err := r.store.EnsureCategory(ctx, kind, name, Slugify(name))
	if err != nil {
		return 0, fmt.Errorf("ensure category %q: %w", name, err)
	}

	r.categories[key] = cat.ID
	return cat.ID, nil
}

// SubCategory returns the id for (categoryID, name), provisioning the row if
// needed.
func (r *Resolver) SubCategory(ctx context.Context, categoryID int64, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("empty subcategory name")
	}

	key := fmt.Sprintf("%d:%s", categoryID, name)
	if id, ok := r.subCategories[key]; ok {
		return id, nil
	}

	sub, err := r.store.EnsureSubCategory(ctx, categoryID, name, Slugify(name))
	if err != nil {
		return 0, fmt.Errorf("ensure subcategory %q: %w", name, err)
	}

	r.subCategories[key] = sub.ID
	return sub.ID, nil
}

// Slugify lowercases a label and collapses runs of non-alphanumerics to
// single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
