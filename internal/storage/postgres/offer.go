package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"feed_syncer/internal/domain"
)

type OfferStore struct {
	db *sqlx.DB
}

func NewOfferStore(db *sqlx.DB) *OfferStore {
	return &OfferStore{db: db}
}

// Insert stores one offer and fills in its id. A second offer with the same
// goid returns domain.ErrDuplicate.
func (s *OfferStore) Insert(ctx context.Context, offer *domain.Offer) error {
	advertiser, err := json.Marshal(offer.Advertiser)
	if err != nil {
		return fmt.Errorf("marshal advertiser: %w", err)
	}
	rules, err := json.Marshal(offer.OfferRules)
	if err != nil {
		return fmt.Errorf("marshal offer rules: %w", err)
	}
	pageMeta, err := json.Marshal(offer.PageMeta)
	if err != nil {
		return fmt.Errorf("marshal page meta: %w", err)
	}

	query := `
		INSERT INTO offers (
			goid, offer_number, status, name, offer_type, advertiser,
			auto_renew, return_days, start_at, end_at, offer_rules,
			page_meta, fetched_at, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		RETURNING id`

	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		offer.GOID,
		offer.OfferNumber,
		offer.Status,
		offer.Name,
		offer.OfferType,
		advertiser,
		offer.AutoRenew,
		offer.ReturnDays,
		offer.StartAt,
		offer.EndAt,
		rules,
		pageMeta,
		offer.FetchedAt,
		offer.IsActive,
	).Scan(&offer.ID)

	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}
