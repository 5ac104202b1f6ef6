package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"feed_syncer/internal/domain"
)

type CouponStore struct {
	db *sqlx.DB
}

func NewCouponStore(db *sqlx.DB) *CouponStore {
	return &CouponStore{db: db}
}

// InsertIfAbsent stores the coupon unless a row with the same natural key
// already exists. It reports whether a row was written. Duplicates are
// absorbed by ON CONFLICT DO NOTHING, so the call is safe inside a
// transaction.
func (s *CouponStore) InsertIfAbsent(ctx context.Context, coupon *domain.Coupon) (bool, error) {
	var cjAttrs []byte
	if coupon.CJ != nil {
		var err error
		cjAttrs, err = json.Marshal(coupon.CJ)
		if err != nil {
			return false, fmt.Errorf("marshal cj attributes: %w", err)
		}
	}

	query := `
		INSERT INTO coupons (
			category_id, sub_category_id, promotion_type, offer_description,
			offer_start_date, offer_end_date, coupon_code, click_url,
			impression_pixel, advertiser_id, advertiser_name, network,
			reference, status, last_updated, cj_attributes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
		ON CONFLICT (advertiser_id, offer_description, (coalesce(coupon_code, '')), reference)
			DO NOTHING
		RETURNING id`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		coupon.CategoryID,
		coupon.SubCategoryID,
		coupon.PromotionType,
		coupon.OfferDescription,
		coupon.OfferStartDate,
		coupon.OfferEndDate,
		coupon.CouponCode,
		coupon.ClickURL,
		coupon.ImpressionPixel,
		coupon.AdvertiserID,
		coupon.AdvertiserName,
		coupon.Network,
		coupon.Reference,
		coupon.Status,
		coupon.LastUpdated,
		cjAttrs,
	).Scan(&coupon.ID)

	if errors.Is(err, sql.ErrNoRows) {
		// Conflict: the coupon is already stored.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert coupon: %w", err)
	}
	return true, nil
}
