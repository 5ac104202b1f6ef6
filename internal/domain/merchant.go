package domain

import (
	"encoding/json"
	"time"
)

// Merchant is one Rakuten advertiser from the partner catalog. AdvertiserID
// is unique, enforced by a unique index. A catalog sighting stores only the
// id and name; the profile fields arrive in a second enrichment step and
// DetailsFetched records whether that step has run.
type Merchant struct {
	ID             int64
	AdvertiserID   int64
	Name           string
	URL            string
	Description    string
	CanPartner     bool
	Contact        MerchantContact
	Policies       json.RawMessage
	Features       json.RawMessage
	Network        json.RawMessage
	DetailsFetched bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type MerchantContact struct {
	Name     string `json:"name"`
	JobTitle string `json:"job_title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
}

// MerchantDetails is the profile payload for one merchant. Policies,
// Features and Network are provider-shaped documents passed through as-is.
type MerchantDetails struct {
	Name        string          `json:"name"`
	URL         string          `json:"url"`
	Description string          `json:"description"`
	CanPartner  bool            `json:"can_partner"`
	Contact     MerchantContact `json:"contact"`
	Policies    json.RawMessage `json:"policies"`
	Features    json.RawMessage `json:"features"`
	Network     json.RawMessage `json:"network"`
}

// MerchantBatch is the full advertiser-search catalog; the endpoint is not
// paginated for our account.
type MerchantBatch struct {
	Merchants   []Merchant
	RecordsSeen int
}
