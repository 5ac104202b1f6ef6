package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"feed_syncer/internal/domain"
	"feed_syncer/internal/taxonomy"
)

// NewsFeedJob walks the configured feed list, normalizes items and inserts
// the ones not seen before. Failed feeds are logged and skipped; the run
// fails only when every feed fails.
type NewsFeedJob struct {
	feeds     []domain.FeedSpec
	source    FeedSource
	articles  ArticleStore
	taxonomy  TaxonomyStore
	syncState SyncStateStore
	locker    Locker
	publisher Publisher
	logger    *slog.Logger
}

func NewNewsFeedJob(
	feeds []domain.FeedSpec,
	source FeedSource,
	articles ArticleStore,
	taxonomyStore TaxonomyStore,
	syncState SyncStateStore,
	locker Locker,
	publisher Publisher,
	logger *slog.Logger,
) *NewsFeedJob {
	return &NewsFeedJob{
		feeds:     feeds,
		source:    source,
		articles:  articles,
		taxonomy:  taxonomyStore,
		syncState: syncState,
		locker:    locker,
		publisher: publisher,
		logger:    logger.With("job", JobNewsFeed),
	}
}

func (j *NewsFeedJob) ID() string   { return JobNewsFeed }
func (j *NewsFeedJob) Name() string { return "News RSS feeds" }

func (j *NewsFeedJob) Run(ctx context.Context) *domain.Result {
	start := time.Now()
	res := &domain.Result{SourceID: JobNewsFeed}
	defer func() { res.Duration = time.Since(start) }()

	held, err := j.locker.TryLock(ctx, JobNewsFeed)
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
		if err := j.locker.Unlock(ctx, JobNewsFeed); err != nil {
			j.logger.Warn("release lock", "error", err)
		}
	}()

	j.logger.Info("starting news sync", "feeds", len(j.feeds))

	resolver := taxonomy.NewResolver(j.taxonomy)
	failedFeeds := 0

	for _, feed := range j.feeds {
		feedLogger := j.logger.With("feed", feed.URL)

		parsed, err := j.source.Fetch(ctx, feed)
		if err != nil {
			feedLogger.Error("fetch feed", "error", err)
			failedFeeds++
			continue
		}

		categoryID, err := resolver.Category(ctx, domain.CategoryKindFeed, feed.Category)
		if err != nil {
			feedLogger.Error("resolve category", "category", feed.Category, "error", err)
			failedFeeds++
			continue
		}

		res.TotalFetched += parsed.ItemsSeen
		res.Skipped += parsed.ItemsSeen - len(parsed.Articles)

		for i := range parsed.Articles {
			article := &parsed.Articles[i]
			article.CategoryID = categoryID

			if err := j.articles.Insert(ctx, article); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					feedLogger.Debug("duplicate article", "link", article.Link)
				} else {
					feedLogger.Warn("insert article", "link", article.Link, "error", err)
				}
				res.Skipped++
				continue
			}
			res.Inserted++

			if j.publisher != nil {
				if err := j.publisher.Publish(ctx, EntityArticle, article, true); err != nil {
					feedLogger.Warn("publish article", "link", article.Link, "error", err)
				}
			}
		}

		feedLogger.Info("feed processed", "items", parsed.ItemsSeen, "inserted", res.Inserted)
	}

	if err := j.updateSyncState(ctx, res); err != nil {
		j.logger.Warn("update sync state", "error", err)
	}

	if len(j.feeds) > 0 && failedFeeds == len(j.feeds) {
		res.Message = "all feeds failed"
		j.logger.Error("news sync failed", "feeds", len(j.feeds))
		return res
	}

	res.Success = true
	res.Message = "articles processed successfully"
	j.logger.Info("news sync completed",
		"fetched", res.TotalFetched,
		"inserted", res.Inserted,
		"skipped", res.Skipped,
		"failed_feeds", failedFeeds,
		"duration", time.Since(start),
	)
	return res
}

func (j *NewsFeedJob) updateSyncState(ctx context.Context, res *domain.Result) error {
	state, err := j.syncState.Get(ctx, JobNewsFeed)
	if err != nil {
		return err
	}
	state.LastSyncedAt = time.Now()
	state.TotalSynced += int64(res.Inserted)
	return j.syncState.Update(ctx, state)
}
