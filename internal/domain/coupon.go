package domain

import "time"

// Provenance tags for coupons, recorded in Coupon.Reference.
const (
	ReferenceRakuten = "rakuten"
	ReferenceCJ      = "CJ"
)

// Coupon is a normalized affiliate coupon/offer link. The natural key is
// (AdvertiserID, OfferDescription, CouponCode, Reference).
type Coupon struct {
	ID               int64
	CategoryID       int64
	SubCategoryID    int64
	PromotionType    string
	OfferDescription string
	OfferStartDate   *time.Time
	OfferEndDate     *time.Time
	CouponCode       *string
	ClickURL         string
	ImpressionPixel  string
	AdvertiserID     string
	AdvertiserName   string
	Network          string
	Reference        string
	Status           bool
	LastUpdated      *time.Time
	CJ               *CJLinkAttributes
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// CategoryLabel is the provider-supplied subcategory label; it is
	// resolved into SubCategoryID before persisting and never stored.
	CategoryLabel string
}

// CJLinkAttributes carries the CJ link-search passthrough fields, persisted
// as a single document alongside the coupon.
type CJLinkAttributes struct {
	ClickCommission      float64 `json:"click_commission"`
	CreativeHeight       int     `json:"creative_height"`
	CreativeWidth        int     `json:"creative_width"`
	Language             string  `json:"language"`
	LinkCodeHTML         string  `json:"link_code_html"`
	LinkCodeJavascript   string  `json:"link_code_javascript"`
	Destination          string  `json:"destination"`
	LinkID               int64   `json:"link_id"`
	LinkName             string  `json:"link_name"`
	LinkType             string  `json:"link_type"`
	AllowDeepLinking     bool    `json:"allow_deep_linking"`
	PerformanceIncentive bool    `json:"performance_incentive"`
	SaleCommission       float64 `json:"sale_commission"`
	MobileOptimized      bool    `json:"mobile_optimized"`
	MobileAppDownload    bool    `json:"mobile_app_download"`
	CrossDeviceOnly      bool    `json:"cross_device_only"`
	TargetedCountries    string  `json:"targeted_countries"`
	EventName            string  `json:"event_name"`
	AdContent            string  `json:"ad_content"`
	SevenDayEPC          float64 `json:"seven_day_epc"`
	ThreeMonthEPC        float64 `json:"three_month_epc"`
}

// CouponPage is one page of coupons from a provider. RecordsReturned is the
// provider-declared row count for the page; records that failed
// normalization are absent from Coupons but still counted there.
type CouponPage struct {
	Coupons         []Coupon
	PageNumber      int
	RecordsReturned int
	TotalMatched    int
}
