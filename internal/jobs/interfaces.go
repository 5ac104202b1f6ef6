package jobs

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"feed_syncer/internal/domain"
)

type ArticleStore interface {
	// Insert returns domain.ErrDuplicate when (link, country_code) exists.
	Insert(ctx context.Context, article *domain.Article) error
}

type CouponStore interface {
	// InsertIfAbsent reports whether a row was written; an existing coupon
	// with the same natural key leaves the store untouched.
	InsertIfAbsent(ctx context.Context, coupon *domain.Coupon) (bool, error)
}

type OfferStore interface {
	// Insert returns domain.ErrDuplicate when the goid exists.
	Insert(ctx context.Context, offer *domain.Offer) error
}

type AdvertiserStore interface {
	// Upsert reports whether the advertiser was newly inserted.
	Upsert(ctx context.Context, advertiser *domain.Advertiser) (bool, error)
}

type TaxonomyStore interface {
	EnsureCategory(ctx context.Context, kind, name, slug string) (*domain.Category, error)
	EnsureSubCategory(ctx context.Context, categoryID int64, name, slug string) (*domain.SubCategory, error)
}

type SyncStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

// Locker serializes runs of the same job across processes.
type Locker interface {
	TryLock(ctx context.Context, name string) (bool, error)
	Unlock(ctx context.Context, name string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, entity string, record any, isNew bool) error
	Close() error
}

// FeedSource fetches and normalizes one RSS/Atom feed.
type FeedSource interface {
	Fetch(ctx context.Context, feed domain.FeedSpec) (*domain.FeedResult, error)
}

// CouponFeedSource is the Rakuten coupon feed: authenticate once per run,
// then a single fetch.
type CouponFeedSource interface {
	Authenticate(ctx context.Context) error
	FetchCoupons(ctx context.Context) (*domain.CouponPage, error)
}

// OfferSource is the Rakuten offers endpoint, paginated by page number.
type OfferSource interface {
	Authenticate(ctx context.Context) error
	FetchPage(ctx context.Context, page int) (*domain.OfferPage, error)
}

// LinkSearchSource is the CJ link-search endpoint, paginated by page number.
type LinkSearchSource interface {
	Authenticate(ctx context.Context) error
	FetchPage(ctx context.Context, page int) (*domain.CouponPage, error)
}

// MerchantSource is the Rakuten advertiser-search catalog plus the
// per-merchant profile endpoint.
type MerchantSource interface {
	Authenticate(ctx context.Context) error
	FetchMerchants(ctx context.Context) (*domain.MerchantBatch, error)
	FetchDetails(ctx context.Context, advertiserID int64) (*domain.MerchantDetails, error)
}

type MerchantStore interface {
	// UpsertListing reports whether the merchant was newly inserted. Every
	// catalog sighting marks the merchant's profile as pending again.
	UpsertListing(ctx context.Context, merchant *domain.Merchant) (bool, error)
	ListPendingDetails(ctx context.Context) ([]domain.Merchant, error)
	UpdateDetails(ctx context.Context, advertiserID int64, details *domain.MerchantDetails) error
}

// AdvertiserSource is the CJ advertiser-lookup endpoint, single shot.
type AdvertiserSource interface {
	Authenticate(ctx context.Context) error
	FetchAdvertisers(ctx context.Context) (*domain.AdvertiserBatch, error)
}
