package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"feed_syncer/internal/domain"
	"feed_syncer/internal/taxonomy"
)

// CJCouponJob pages through the link-search endpoint. A failed page stops
// the run early with the counts gathered so far; the resume cursor keeps the
// last committed page so the next run continues from there. Each page and
// its checkpoint commit in one transaction.
type CJCouponJob struct {
	source    LinkSearchSource
	coupons   CouponStore
	taxonomy  TaxonomyStore
	syncState SyncStateStore
	locker    Locker
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

func NewCJCouponJob(
	source LinkSearchSource,
	coupons CouponStore,
	taxonomyStore TaxonomyStore,
	syncState SyncStateStore,
	locker Locker,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *CJCouponJob {
	return &CJCouponJob{
		source:    source,
		coupons:   coupons,
		taxonomy:  taxonomyStore,
		syncState: syncState,
		locker:    locker,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("job", JobCJCoupon),
	}
}

func (j *CJCouponJob) ID() string   { return JobCJCoupon }
func (j *CJCouponJob) Name() string { return "CJ coupon link search" }

func (j *CJCouponJob) Run(ctx context.Context) *domain.Result {
	start := time.Now()
	res := &domain.Result{SourceID: JobCJCoupon}
	defer func() { res.Duration = time.Since(start) }()

	held, err := j.locker.TryLock(ctx, JobCJCoupon)
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
		if err := j.locker.Unlock(ctx, JobCJCoupon); err != nil {
			j.logger.Warn("release lock", "error", err)
		}
	}()

	j.logger.Info("starting coupon sync")

	if err := j.source.Authenticate(ctx); err != nil {
		j.logger.Error("authenticate", "error", err)
		res.Message = "missing or invalid access token"
		return res
	}

	state, err := j.syncState.Get(ctx, JobCJCoupon)
	if err != nil {
		j.logger.Error("load sync state", "error", err)
		res.Message = "failed to load sync state"
		return res
	}

	resolver := taxonomy.NewResolver(j.taxonomy)
	categoryID, err := resolver.Category(ctx, domain.CategoryKindCoupon, couponCategoryName)
	if err != nil {
		j.logger.Error("ensure coupon category", "error", err)
		res.Message = "failed to provision coupon category"
		return res
	}

	page := state.LastPage + 1
	exhausted := false

	for {
		cp, err := j.source.FetchPage(ctx, page)
		if err != nil {
			// Partial result; the cursor stays on the last committed page.
			j.logger.Error("fetch page", "page", page, "error", err)
			break
		}

		if cp.RecordsReturned == 0 {
			exhausted = true
			break
		}

		res.Pages++
		res.TotalFetched += cp.RecordsReturned

		pageInserted := 0
		pageSkipped := cp.RecordsReturned - len(cp.Coupons)
		var committed []*domain.Coupon

		err = j.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			for i := range cp.Coupons {
				coupon := &cp.Coupons[i]
				coupon.CategoryID = categoryID

				subID, err := resolver.SubCategory(txCtx, categoryID, coupon.CategoryLabel)
				if err != nil {
					j.logger.Warn("resolve subcategory", "label", coupon.CategoryLabel, "error", err)
					pageSkipped++
					continue
				}
				coupon.SubCategoryID = subID

				inserted, err := j.coupons.InsertIfAbsent(txCtx, coupon)
				if err != nil {
					return fmt.Errorf("insert coupon for advertiser %s: %w", coupon.AdvertiserID, err)
				}
				if !inserted {
					pageSkipped++
					continue
				}
				pageInserted++
				committed = append(committed, coupon)
			}

			state.LastPage = cp.PageNumber
			state.LastSyncedAt = time.Now()
			state.TotalSynced += int64(pageInserted)
			return j.syncState.Update(txCtx, state)
		})
		if err != nil {
			j.logger.Error("persist page", "page", page, "error", err)
			break
		}

		res.Inserted += pageInserted
		res.Skipped += pageSkipped

		if j.publisher != nil {
			for _, coupon := range committed {
				if err := j.publisher.Publish(ctx, EntityCoupon, coupon, true); err != nil {
					j.logger.Warn("publish coupon", "advertiser_id", coupon.AdvertiserID, "error", err)
				}
			}
		}

		j.logger.Info("page processed",
			"page", cp.PageNumber,
			"coupons", len(cp.Coupons),
			"total_so_far", res.TotalFetched,
			"total_matched", cp.TotalMatched,
		)

		if res.TotalFetched >= cp.TotalMatched {
			exhausted = true
			break
		}
		page++
	}

	if exhausted {
		state.LastPage = 0
		state.LastSyncedAt = time.Now()
		if err := j.syncState.Update(ctx, state); err != nil {
			j.logger.Warn("reset resume cursor", "error", err)
		}
	}

	res.Success = true
	res.Message = "coupons processed successfully"
	j.logger.Info("coupon sync completed",
		"fetched", res.TotalFetched,
		"inserted", res.Inserted,
		"skipped", res.Skipped,
		"pages", res.Pages,
		"duration", time.Since(start),
	)
	return res
}
