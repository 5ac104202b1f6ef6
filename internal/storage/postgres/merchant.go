package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"feed_syncer/internal/domain"
)

type MerchantStore struct {
	db *sqlx.DB
}

func NewMerchantStore(db *sqlx.DB) *MerchantStore {
	return &MerchantStore{db: db}
}

// UpsertListing records a catalog sighting of the merchant, keyed by
// advertiser_id. Every sighting refreshes the name and marks the profile as
// pending so a later enrichment pass picks the merchant up again. It reports
// whether the row was newly created.
func (s *MerchantStore) UpsertListing(ctx context.Context, m *domain.Merchant) (bool, error) {
	query := `
		INSERT INTO merchants (advertiser_id, name)
		VALUES ($1, $2)
		ON CONFLICT (advertiser_id) DO UPDATE SET
			name = EXCLUDED.name,
			details_fetched = FALSE,
			updated_at = now()
		RETURNING id, (xmax = 0)`

	var isNew bool
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		m.AdvertiserID,
		m.Name,
	).Scan(&m.ID, &isNew)
	if err != nil {
		return false, fmt.Errorf("upsert merchant %d: %w", m.AdvertiserID, err)
	}
	return isNew, nil
}

// ListPendingDetails returns the merchants whose profile has not been
// enriched yet, oldest sighting first.
func (s *MerchantStore) ListPendingDetails(ctx context.Context) ([]domain.Merchant, error) {
	query := `
		SELECT id, advertiser_id, name
		FROM merchants
		WHERE details_fetched = FALSE
		ORDER BY updated_at ASC`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending merchants: %w", err)
	}
	defer rows.Close()

	var merchants []domain.Merchant
	for rows.Next() {
		var m domain.Merchant
		if err := rows.Scan(&m.ID, &m.AdvertiserID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan merchant: %w", err)
		}
		merchants = append(merchants, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate merchants: %w", err)
	}
	return merchants, nil
}

// UpdateDetails stores the enriched profile and marks the merchant done.
func (s *MerchantStore) UpdateDetails(ctx context.Context, advertiserID int64, details *domain.MerchantDetails) error {
	contact, err := json.Marshal(details.Contact)
	if err != nil {
		return fmt.Errorf("marshal contact: %w", err)
	}

	query := `
		UPDATE merchants SET
			name = COALESCE(NULLIF($2, ''), name),
			url = $3,
			description = $4,
			can_partner = $5,
			contact = $6,
			policies = $7,
			features = $8,
			network = $9,
			details_fetched = TRUE,
			updated_at = now()
		WHERE advertiser_id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		advertiserID,
		details.Name,
		details.URL,
		details.Description,
		details.CanPartner,
		contact,
		nullableJSON(details.Policies),
		nullableJSON(details.Features),
		nullableJSON(details.Network),
	)
	if err != nil {
		return fmt.Errorf("update merchant %d details: %w", advertiserID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update merchant %d details: %w", advertiserID, err)
	}
	if affected == 0 {
		return fmt.Errorf("merchant %d not found", advertiserID)
	}
	return nil
}

// nullableJSON keeps absent provider documents as SQL NULL instead of the
// string "null".
func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
