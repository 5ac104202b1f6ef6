package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"feed_syncer/internal/domain"
	"feed_syncer/internal/taxonomy"
)

// RakutenCouponJob exchanges credentials for an access token, fetches the
// coupon feed in one shot and inserts the coupons not seen before.
type RakutenCouponJob struct {
	source    CouponFeedSource
	coupons   CouponStore
	taxonomy  TaxonomyStore
	syncState SyncStateStore
	locker    Locker
	publisher Publisher
	logger    *slog.Logger
}

func NewRakutenCouponJob(
	source CouponFeedSource,
	coupons CouponStore,
	taxonomyStore TaxonomyStore,
	syncState SyncStateStore,
	locker Locker,
	publisher Publisher,
	logger *slog.Logger,
) *RakutenCouponJob {
	return &RakutenCouponJob{
		source:    source,
		coupons:   coupons,
		taxonomy:  taxonomyStore,
		syncState: syncState,
		locker:    locker,
		publisher: publisher,
		logger:    logger.With("job", JobRakutenCoupon),
	}
}

func (j *RakutenCouponJob) ID() string   { return JobRakutenCoupon }
func (j *RakutenCouponJob) Name() string { return "Rakuten coupon feed" }

func (j *RakutenCouponJob) Run(ctx context.Context) *domain.Result {
	start := time.Now()
	res := &domain.Result{SourceID: JobRakutenCoupon}
	defer func() { res.Duration = time.Since(start) }()

	held, err := j.locker.TryLock(ctx, JobRakutenCoupon)
	if err != nil {
		res.Message = fmt.Sprintf("acquire lock: %v", err)
		return res
	}
	if !held {
		res.Success = true
		res.Message = "skipped: previous run still in progress"
		j.logger.Info("skipping run, lock held elsewhere")
		return res
	}
	defer func() {
		if err := j.locker.Unlock(ctx, JobRakutenCoupon); err != nil {
			j.logger.Warn("release lock", "error", err)
		}
	}()

	j.logger.Info("starting coupon sync")

	if err := j.source.Authenticate(ctx); err != nil {
		j.logger.Error("authenticate", "error", err)
		res.Message = "failed to get access token"
		return res
	}

	page, err := j.source.FetchCoupons(ctx)
	if err != nil {
		j.logger.Error("fetch coupons", "error", err)
		res.Message = "failed to fetch coupon feed"
		return res
	}

	res.TotalFetched = page.RecordsReturned
	res.Pages = 1
	res.Skipped = page.RecordsReturned - len(page.Coupons)

	if page.RecordsReturned == 0 {
		res.Success = true
		res.Message = "no coupons found"
		j.logger.Info("no coupons found")
		return res
	}

	resolver := taxonomy.NewResolver(j.taxonomy)
	categoryID, err := resolver.Category(ctx, domain.CategoryKindCoupon, couponCategoryName)
	if err != nil {
		j.logger.Error("ensure coupon category", "error", err)
		res.Message = "failed to provision coupon category"
		return res
	}

	for i := range page.Coupons {
		coupon := &page.Coupons[i]
		coupon.CategoryID = categoryID

		subID, err := resolver.SubCategory(ctx, categoryID, coupon.CategoryLabel)
		if err != nil {
			j.logger.Warn("resolve subcategory", "label", coupon.CategoryLabel, "error", err)
			res.Skipped++
			continue
		}
		coupon.SubCategoryID = subID

		inserted, err := j.coupons.InsertIfAbsent(ctx, coupon)
		if err != nil {
			j.logger.Warn("insert coupon",
				"advertiser_id", coupon.AdvertiserID,
				"description", coupon.OfferDescription,
				"error", err,
			)
			res.Skipped++
			continue
		}
		if !inserted {
			j.logger.Debug("duplicate coupon",
				"advertiser_id", coupon.AdvertiserID,
				"description", coupon.OfferDescription,
			)
			res.Skipped++
			continue
		}
		res.Inserted++

		if j.publisher != nil {
			if err := j.publisher.Publish(ctx, EntityCoupon, coupon, true); err != nil {
				j.logger.Warn("publish coupon", "error", err)
			}
		}
	}

	if err := j.updateSyncState(ctx, res); err != nil {
		j.logger.Warn("update sync state", "error", err)
	}

	res.Success = true
	res.Message = "coupons processed successfully"
	j.logger.Info("coupon sync completed",
		"fetched", res.TotalFetched,
		"inserted", res.Inserted,
		"skipped", res.Skipped,
		"duration", time.Since(start),
	)
	return res
}

func (j *RakutenCouponJob) updateSyncState(ctx context.Context, res *domain.Result) error {
	state, err := j.syncState.Get(ctx, JobRakutenCoupon)
	if err != nil {
		return err
	}
	state.LastSyncedAt = time.Now()
	state.TotalSynced += int64(res.Inserted)
	return j.syncState.Update(ctx, state)
}
