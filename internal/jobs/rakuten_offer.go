package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"feed_syncer/internal/domain"
)

// RakutenOfferJob pages through the offers endpoint. A failed page is
// skipped and the walk continues while the page bound is known; failures
// before the bound is learned stop the run with partial counts. The resume
// cursor survives early stops so the next run picks up where this one left.
type RakutenOfferJob struct {
	source    OfferSource
	offers    OfferStore
	syncState SyncStateStore
	locker    Locker
	publisher Publisher
	logger    *slog.Logger
}

func NewRakutenOfferJob(
	source OfferSource,
	offers OfferStore,
	syncState SyncStateStore,
	locker Locker,
	publisher Publisher,
	logger *slog.Logger,
) *RakutenOfferJob {
	return &RakutenOfferJob{
		source:    source,
		offers:    offers,
		syncState: syncState,
		locker:    locker,
		publisher: publisher,
		logger:    logger.With("job", JobRakutenOffer),
	}
}

func (j *RakutenOfferJob) ID() string   { return JobRakutenOffer }
func (j *RakutenOfferJob) Name() string { return "Rakuten offers" }

func (j *RakutenOfferJob) Run(ctx context.Context) *domain.Result {
	start := time.Now()
	res := &domain.Result{SourceID: JobRakutenOffer}
	defer func() { res.Duration = time.Since(start) }()

	held, err := j.locker.TryLock(ctx, JobRakutenOffer)
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
		if err := j.locker.Unlock(ctx, JobRakutenOffer); err != nil {
			j.logger.Warn("release lock", "error", err)
		}
	}()

	j.logger.Info("starting offer sync")

	if err := j.source.Authenticate(ctx); err != nil {
		j.logger.Error("authenticate", "error", err)
		res.Message = "failed to get access token"
		return res
	}

	state, err := j.syncState.Get(ctx, JobRakutenOffer)
	if err != nil {
		j.logger.Error("load sync state", "error", err)
		res.Message = "failed to load sync state"
		return res
	}

	page := state.LastPage + 1
	totalPages := 0
	exhausted := false

	for {
		op, err := j.source.FetchPage(ctx, page)
		if err != nil {
			j.logger.Error("fetch page", "page", page, "error", err)
			if totalPages == 0 {
				// Bound unknown, walking further would be blind.
				break
			}
			if page >= totalPages {
				exhausted = true
				break
			}
			page++
			continue
		}

		if op.RecordsReturned == 0 {
			exhausted = true
			break
		}

		totalPages = op.TotalPages
		res.Pages++
		res.TotalFetched += op.RecordsReturned
		res.Skipped += op.RecordsReturned - len(op.Offers)

		pageInserted := 0
		for i := range op.Offers {
			offer := &op.Offers[i]
			if err := j.offers.Insert(ctx, offer); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					j.logger.Debug("duplicate offer", "goid", offer.GOID)
				} else {
					j.logger.Warn("insert offer", "goid", offer.GOID, "error", err)
				}
				res.Skipped++
				continue
			}
			pageInserted++

			if j.publisher != nil {
				if err := j.publisher.Publish(ctx, EntityOffer, offer, true); err != nil {
					j.logger.Warn("publish offer", "goid", offer.GOID, "error", err)
				}
			}
		}
		res.Inserted += pageInserted

		state.LastPage = op.Page
		state.LastSyncedAt = time.Now()
		state.TotalSynced += int64(pageInserted)
		if err := j.syncState.Update(ctx, state); err != nil {
			j.logger.Warn("checkpoint page", "page", op.Page, "error", err)
		}

		j.logger.Info("page processed", "page", op.Page, "offers", len(op.Offers), "total_pages", totalPages)

		// Without a declared bound the only stop signal is an empty page.
		if totalPages > 0 && page >= totalPages {
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
	res.Message = fmt.Sprintf("processed %d offers from %d pages", res.Inserted, res.Pages)
	j.logger.Info("offer sync completed",
		"fetched", res.TotalFetched,
		"inserted", res.Inserted,
		"skipped", res.Skipped,
		"pages", res.Pages,
		"duration", time.Since(start),
	)
	return res
}
