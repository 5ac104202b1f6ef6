package jobs

// Job identifiers. Used as advisory lock names, sync_state keys and the
// SourceID of results.
const (
	JobNewsFeed        = "news-rss"
	JobRakutenCoupon   = "rakuten-coupon"
	JobRakutenOffer    = "rakuten-offer"
	JobRakutenMerchant = "rakuten-merchant"
	JobCJCoupon        = "cj-coupon"
	JobCJAdvertiser    = "cj-advertiser"
)

// Entity names carried in published ingest events.
const (
	EntityArticle    = "article"
	EntityCoupon     = "coupon"
	EntityOffer      = "offer"
	EntityAdvertiser = "advertiser"
)

// Parent category provisioned for all coupon subcategories.
const couponCategoryName = "Coupons"
