package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feed_syncer/internal/domain"
)

type AdvertiserStore struct {
	db *sqlx.DB
}

func NewAdvertiserStore(db *sqlx.DB) *AdvertiserStore {
	return &AdvertiserStore{db: db}
}

// Upsert inserts the advertiser or refreshes the existing row keyed by
// advertiser_id. It reports whether the row was newly created.
func (s *AdvertiserStore) Upsert(ctx context.Context, adv *domain.Advertiser) (bool, error) {
	actions, err := json.Marshal(adv.Actions)
	if err != nil {
		return false, fmt.Errorf("marshal actions: %w", err)
	}

	query := `
		INSERT INTO advertisers (
			advertiser_id, advertiser_name, program_name, program_url,
			account_status, seven_day_epc, three_month_epc, language,
			relationship_status, mobile_tracking_certified,
			cookieless_tracking_enabled, network_rank, primary_parent,
			primary_child, performance_incentives, actions, link_types
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		ON CONFLICT (advertiser_id) DO UPDATE SET
			advertiser_name = EXCLUDED.advertiser_name,
			program_name = EXCLUDED.program_name,
			program_url = EXCLUDED.program_url,
			account_status = EXCLUDED.account_status,
			seven_day_epc = EXCLUDED.seven_day_epc,
			three_month_epc = EXCLUDED.three_month_epc,
			language = EXCLUDED.language,
			relationship_status = EXCLUDED.relationship_status,
			mobile_tracking_certified = EXCLUDED.mobile_tracking_certified,
			cookieless_tracking_enabled = EXCLUDED.cookieless_tracking_enabled,
			network_rank = EXCLUDED.network_rank,
			primary_parent = EXCLUDED.primary_parent,
			primary_child = EXCLUDED.primary_child,
			performance_incentives = EXCLUDED.performance_incentives,
			actions = EXCLUDED.actions,
			link_types = EXCLUDED.link_types,
			updated_at = now()
		RETURNING id, (xmax = 0)`

	var isNew bool
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		adv.AdvertiserID,
		adv.AdvertiserName,
		adv.ProgramName,
		adv.ProgramURL,
		adv.AccountStatus,
		adv.SevenDayEPC,
		adv.ThreeMonthEPC,
		adv.Language,
		adv.RelationshipStatus,
		adv.MobileTrackingCertified,
		adv.CookielessTrackingEnabled,
		adv.NetworkRank,
		adv.PrimaryParent,
		adv.PrimaryChild,
		adv.PerformanceIncentives,
		actions,
		pq.Array(adv.LinkTypes),
	).Scan(&adv.ID, &isNew)
	if err != nil {
		return false, fmt.Errorf("upsert advertiser %s: %w", adv.AdvertiserID, err)
	}
	return isNew, nil
}
