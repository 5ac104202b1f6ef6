package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"feed_syncer/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Insert stores one article and fills in its id. A second article with the
// same (link, country_code) returns domain.ErrDuplicate.
func (s *ArticleStore) Insert(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (
			title, link, pub_date, country_code, category_id,
			content, image, source, content_type
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING id, created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		article.Title,
		article.Link,
		article.PubDate,
		article.CountryCode,
		article.CategoryID,
		article.Content,
		article.Image,
		article.Source,
		article.ContentType,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)

	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}
