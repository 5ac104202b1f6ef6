package rakuten

import (
	"encoding/xml"

	"feed_syncer/internal/domain"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type couponFeed struct {
	XMLName      xml.Name     `xml:"couponfeed"`
	TotalMatches int          `xml:"TotalMatches"`
	TotalPages   int          `xml:"TotalPages"`
	PageNumber   int          `xml:"PageNumberRequested"`
	Links        []couponLink `xml:"link"`
}

type couponLink struct {
	Categories       []labeledValue `xml:"categories>category"`
	PromotionTypes   []labeledValue `xml:"promotiontypes>promotiontype"`
	OfferDescription string         `xml:"offerdescription"`
	OfferStartDate   string         `xml:"offerstartdate"`
	OfferEndDate     string         `xml:"offerenddate"`
	CouponCode       string         `xml:"couponcode"`
	ClickURL         string         `xml:"clickurl"`
	ImpressionPixel  string         `xml:"impressionpixel"`
	AdvertiserID     string         `xml:"advertiserid"`
	AdvertiserName   string         `xml:"advertisername"`
	Network          labeledValue   `xml:"network"`
}

// labeledValue is an element carrying both an id attribute and text, e.g.
// <category id="17">Apparel</category>.
type labeledValue struct {
	ID   string `xml:"id,attr"`
	Text string `xml:",chardata"`
}

type offersResponse struct {
	Offers   []offerRecord `json:"offers"`
	Metadata offersMeta    `json:"metadata"`
}

type offersMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type advertiserSearchResult struct {
	XMLName      xml.Name        `xml:"result"`
	TotalMatches int             `xml:"TotalMatches"`
	Merchants    []merchantEntry `xml:"midlist>merchant"`
}

type merchantEntry struct {
	MID          int64  `xml:"mid"`
	MerchantName string `xml:"merchantname"`
}

type advertiserDetailResponse struct {
	Advertiser domain.MerchantDetails `json:"advertiser"`
}

type offerRecord struct {
	GOID        int64                  `json:"goid"`
	OfferNumber string                 `json:"offer_number"`
	Status      string                 `json:"status"`
	Name        string                 `json:"name"`
	OfferType   string                 `json:"offer_type"`
	Advertiser  domain.OfferAdvertiser `json:"advertiser"`
	AutoRenew   bool                   `json:"auto_renew"`
	ReturnDays  int                    `json:"return_days"`
	StartDate   string                 `json:"start_date"`
	EndDate     string                 `json:"end_date"`
	OfferRules  []domain.OfferRule     `json:"offer_rules"`
}
