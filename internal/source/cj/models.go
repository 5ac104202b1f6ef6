package cj

import "encoding/xml"

type linkSearchResponse struct {
	XMLName xml.Name  `xml:"cj-api"`
	Links   linksNode `xml:"links"`
}

type linksNode struct {
	TotalMatched    int      `xml:"total-matched,attr"`
	RecordsReturned int      `xml:"records-returned,attr"`
	PageNumber      int      `xml:"page-number,attr"`
	Links           []cjLink `xml:"link"`
}

type cjLink struct {
	AdvertiserID         string `xml:"advertiser-id"`
	AdvertiserName       string `xml:"advertiser-name"`
	Description          string `xml:"description"`
	Category             string `xml:"category"`
	CouponCode           string `xml:"coupon-code"`
	PromotionType        string `xml:"promotion-type"`
	PromotionStartDate   string `xml:"promotion-start-date"`
	PromotionEndDate     string `xml:"promotion-end-date"`
	ClickURL             string `xml:"clickUrl"`
	ClickCommission      string `xml:"click-commission"`
	SaleCommission       string `xml:"sale-commission"`
	CreativeHeight       int    `xml:"creative-height"`
	CreativeWidth        int    `xml:"creative-width"`
	Language             string `xml:"language"`
	LinkCodeHTML         string `xml:"link-code-html"`
	LinkCodeJavascript   string `xml:"link-code-javascript"`
	Destination          string `xml:"destination"`
	LinkID               int64  `xml:"link-id"`
	LinkName             string `xml:"link-name"`
	LinkType             string `xml:"link-type"`
	RelationshipStatus   string `xml:"relationship-status"`
	AllowDeepLinking     bool   `xml:"allow-deep-linking"`
	PerformanceIncentive bool   `xml:"performance-incentive"`
	MobileOptimized      bool   `xml:"mobile-optimized"`
	MobileAppDownload    bool   `xml:"mobile-app-download"`
	CrossDeviceOnly      bool   `xml:"cross-device-only"`
	TargetedCountries    string `xml:"targeted-countries"`
	EventName            string `xml:"event-name"`
	AdContent            string `xml:"ad-content"`
	LastUpdated          string `xml:"last-updated"`
	SevenDayEPC          string `xml:"seven-day-epc"`
	ThreeMonthEPC        string `xml:"three-month-epc"`
}

type advertiserLookupResponse struct {
	XMLName     xml.Name        `xml:"cj-api"`
	Advertisers advertisersNode `xml:"advertisers"`
}

type advertisersNode struct {
	TotalMatched    int            `xml:"total-matched,attr"`
	RecordsReturned int            `xml:"records-returned,attr"`
	Advertisers     []cjAdvertiser `xml:"advertiser"`
}

type cjAdvertiser struct {
	AdvertiserID              string          `xml:"advertiser-id"`
	AdvertiserName            string          `xml:"advertiser-name"`
	ProgramName               string          `xml:"program-name"`
	ProgramURL                string          `xml:"program-url"`
	AccountStatus             string          `xml:"account-status"`
	SevenDayEPC               string          `xml:"seven-day-epc"`
	ThreeMonthEPC             string          `xml:"three-month-epc"`
	Language                  string          `xml:"language"`
	RelationshipStatus        string          `xml:"relationship-status"`
	MobileTrackingCertified   bool            `xml:"mobile-tracking-certified"`
	CookielessTrackingEnabled bool            `xml:"cookieless-tracking-enabled"`
	NetworkRank               string          `xml:"network-rank"`
	PrimaryCategory           primaryCategory `xml:"primary-category"`
	PerformanceIncentives     bool            `xml:"performance-incentives"`
	Actions                   []cjAction      `xml:"actions>action"`
	LinkTypes                 []string        `xml:"link-types>link-type"`
}

type primaryCategory struct {
	Parent string `xml:"parent"`
	Child  string `xml:"child"`
}

type cjAction struct {
	Name       string       `xml:"name"`
	Type       string       `xml:"type"`
	ID         string       `xml:"id"`
	Commission cjCommission `xml:"commission"`
}

type cjCommission struct {
	Default string             `xml:"default"`
	Items   []cjCommissionItem `xml:"itemlist"`
}

// cjCommissionItem carries its value as element text with name/id attrs.
type cjCommissionItem struct {
	Value string `xml:",chardata"`
	Name  string `xml:"name,attr"`
	ID    string `xml:"id,attr"`
}
