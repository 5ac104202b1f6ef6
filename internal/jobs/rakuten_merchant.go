package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"feed_syncer/internal/domain"
)

// RakutenMerchantJob syncs the partner catalog in two steps: upsert the full
// merchant listing, then walk the merchants whose profile is still pending
// and enrich them one by one. A failed profile fetch leaves the merchant
// pending for the next run.
type RakutenMerchantJob struct {
	source    MerchantSource
	merchants MerchantStore
	syncState SyncStateStore
	locker    Locker
	logger    *slog.Logger
}

func NewRakutenMerchantJob(
	source MerchantSource,
	merchants MerchantStore,
	syncState SyncStateStore,
	locker Locker,
	logger *slog.Logger,
) *RakutenMerchantJob {
	return &RakutenMerchantJob{
		source:    source,
		merchants: merchants,
		syncState: syncState,
		locker:    locker,
		logger:    logger.With("job", JobRakutenMerchant),
	}
}

func (j *RakutenMerchantJob) ID() string   { return JobRakutenMerchant }
func (j *RakutenMerchantJob) Name() string { return "Rakuten merchant catalog" }

func (j *RakutenMerchantJob) Run(ctx context.Context) *domain.Result {
	start := time.Now()
	res := &domain.Result{SourceID: JobRakutenMerchant}
	defer func() { res.Duration = time.Since(start) }()

	held, err := j.locker.TryLock(ctx, JobRakutenMerchant)
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
		if err := j.locker.Unlock(ctx, JobRakutenMerchant); err != nil {
			j.logger.Warn("release lock", "error", err)
		}
	}()

	j.logger.Info("starting merchant sync")

	if err := j.source.Authenticate(ctx); err != nil {
		j.logger.Error("authenticate", "error", err)
		res.Message = "failed to get access token"
		return res
	}

	batch, err := j.source.FetchMerchants(ctx)
	if err != nil {
		j.logger.Error("fetch merchant list", "error", err)
		res.Message = "failed to fetch merchant list"
		return res
	}

	res.TotalFetched = batch.RecordsSeen
	res.Skipped = batch.RecordsSeen - len(batch.Merchants)

	if batch.RecordsSeen == 0 {
		res.Success = true
		res.Message = "no merchants found"
		j.logger.Info("no merchants in catalog")
		return res
	}

	for i := range batch.Merchants {
		merchant := &batch.Merchants[i]
		isNew, err := j.merchants.UpsertListing(ctx, merchant)
		if err != nil {
			j.logger.Warn("upsert merchant", "advertiser_id", merchant.AdvertiserID, "error", err)
			res.Skipped++
			continue
		}
		if isNew {
			res.Inserted++
		}
	}

	detailsFetched := j.enrichPending(ctx, res)

	if err := j.updateSyncState(ctx, res); err != nil {
		j.logger.Warn("update sync state", "error", err)
	}

	res.Success = true
	res.Message = fmt.Sprintf("processed %d merchants and fetched details for %d", len(batch.Merchants), detailsFetched)
	j.logger.Info("merchant sync completed",
		"fetched", res.TotalFetched,
		"inserted", res.Inserted,
		"details_fetched", detailsFetched,
		"skipped", res.Skipped,
		"duration", time.Since(start),
	)
	return res
}

func (j *RakutenMerchantJob) enrichPending(ctx context.Context, res *domain.Result) int {
	pending, err := j.merchants.ListPendingDetails(ctx)
	if err != nil {
		j.logger.Error("list pending merchants", "error", err)
		return 0
	}

	fetched := 0
	for i := range pending {
		merchant := &pending[i]
		details, err := j.source.FetchDetails(ctx, merchant.AdvertiserID)
		if err != nil {
			j.logger.Warn("fetch merchant details", "advertiser_id", merchant.AdvertiserID, "error", err)
			res.Skipped++
			continue
		}
		if err := j.merchants.UpdateDetails(ctx, merchant.AdvertiserID, details); err != nil {
			j.logger.Warn("update merchant details", "advertiser_id", merchant.AdvertiserID, "error", err)
			res.Skipped++
			continue
		}
		fetched++
		res.Updated++
	}
	return fetched
}

func (j *RakutenMerchantJob) updateSyncState(ctx context.Context, res *domain.Result) error {
	state, err := j.syncState.Get(ctx, JobRakutenMerchant)
	if err != nil {
		return err
	}
	state.LastSyncedAt = time.Now()
	state.TotalSynced += int64(res.Inserted + res.Updated)
	return j.syncState.Update(ctx, state)
}
