package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"feed_syncer/internal/domain"
)

// CJAdvertiserJob fetches the joined advertisers in one shot and upserts
// them concurrently; existing rows are refreshed in place.
type CJAdvertiserJob struct {
	source      AdvertiserSource
	advertisers AdvertiserStore
	syncState   SyncStateStore
	locker      Locker
	publisher   Publisher
	logger      *slog.Logger
}

func NewCJAdvertiserJob(
	source AdvertiserSource,
	advertisers AdvertiserStore,
	syncState SyncStateStore,
	locker Locker,
	publisher Publisher,
	logger *slog.Logger,
) *CJAdvertiserJob {
	return &CJAdvertiserJob{
		source:      source,
		advertisers: advertisers,
		syncState:   syncState,
		locker:      locker,
		publisher:   publisher,
		logger:      logger.With("job", JobCJAdvertiser),
	}
}

func (j *CJAdvertiserJob) ID() string   { return JobCJAdvertiser }
func (j *CJAdvertiserJob) Name() string { return "CJ advertiser lookup" }

func (j *CJAdvertiserJob) Run(ctx context.Context) *domain.Result {
	start := time.Now()
	res := &domain.Result{SourceID: JobCJAdvertiser}
	defer func() { res.Duration = time.Since(start) }()

	held, err := j.locker.TryLock(ctx, JobCJAdvertiser)
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
		if err := j.locker.Unlock(ctx, JobCJAdvertiser); err != nil {
			j.logger.Warn("release lock", "error", err)
		}
	}()

	j.logger.Info("starting advertiser sync")

	if err := j.source.Authenticate(ctx); err != nil {
		j.logger.Error("authenticate", "error", err)
		res.Message = "missing or invalid access token"
		return res
	}

	batch, err := j.source.FetchAdvertisers(ctx)
	if err != nil {
		j.logger.Error("fetch advertisers", "error", err)
		res.Message = "failed to fetch advertisers"
		return res
	}

	res.TotalFetched = batch.RecordsSeen
	res.Skipped = batch.RecordsSeen - len(batch.Advertisers)

	if batch.RecordsSeen == 0 {
		res.Success = true
		res.Message = "no advertisers to process"
		j.logger.Info("no advertisers found")
		return res
	}

	type outcome struct {
		ok    bool
		isNew bool
	}
	outcomes := make([]outcome, len(batch.Advertisers))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for i := range batch.Advertisers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			adv := &batch.Advertisers[i]

			isNew, err := j.advertisers.Upsert(ctx, adv)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				j.logger.Warn("upsert advertiser", "advertiser_id", adv.AdvertiserID, "error", err)
				res.Skipped++
				return
			}
			outcomes[i] = outcome{ok: true, isNew: isNew}
			if isNew {
				res.Inserted++
			} else {
				res.Updated++
			}
		}(i)
	}
	wg.Wait()

	if j.publisher != nil {
		for i, o := range outcomes {
			if !o.ok {
				continue
			}
			adv := &batch.Advertisers[i]
			if err := j.publisher.Publish(ctx, EntityAdvertiser, adv, o.isNew); err != nil {
				j.logger.Warn("publish advertiser", "advertiser_id", adv.AdvertiserID, "error", err)
			}
		}
	}

	if err := j.updateSyncState(ctx, res); err != nil {
		j.logger.Warn("update sync state", "error", err)
	}

	res.Success = true
	res.Message = "advertisers processed successfully"
	j.logger.Info("advertiser sync completed",
		"fetched", res.TotalFetched,
		"inserted", res.Inserted,
		"updated", res.Updated,
		"skipped", res.Skipped,
		"duration", time.Since(start),
	)
	return res
}

func (j *CJAdvertiserJob) updateSyncState(ctx context.Context, res *domain.Result) error {
	state, err := j.syncState.Get(ctx, JobCJAdvertiser)
	if err != nil {
		return err
	}
	state.LastSyncedAt = time.Now()
	state.TotalSynced += int64(res.Inserted + res.Updated)
	return j.syncState.Update(ctx, state)
}
