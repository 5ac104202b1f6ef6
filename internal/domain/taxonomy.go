package domain

import "time"

// Category kinds. Feed categories group articles, coupon categories group
// coupons; both live in the same table and are distinguished by Kind.
const (
	CategoryKindFeed   = "feed"
	CategoryKindCoupon = "coupon"
)

// Category is an auto-provisioned grouping. (Kind, Name) is the natural key.
type Category struct {
	ID        int64
	Kind      string
	Name      string
	Slug      string
	Status    bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubCategory is a coupon subcategory under a Category. (CategoryID, Name) is
// the natural key.
type SubCategory struct {
	ID         int64
	CategoryID int64
	Name       string
	Slug       string
	Status     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
