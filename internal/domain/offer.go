package domain

import "time"

// Offer is a normalized affiliate offer. GOID is the provider's global offer
// id and is unique, enforced by a unique index.
type Offer struct {
	ID          int64
	GOID        int64
	OfferNumber string
	Status      string
	Name        string
	OfferType   string
	Advertiser  OfferAdvertiser
	AutoRenew   bool
	ReturnDays  int
	StartAt     time.Time
	EndAt       time.Time
	OfferRules  []OfferRule
	PageMeta    PageMeta
	FetchedAt   time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OfferAdvertiser struct {
	ID                  int64  `json:"id"`
	Network             string `json:"network"`
	Name                string `json:"name"`
	Status              string `json:"status"`
	ExistingPartnership bool   `json:"existing_partnership"`
	Details             string `json:"details"`
}

type OfferRule struct {
	OID              int64        `json:"oid"`
	OfferNumber      string       `json:"offer_number"`
	IsBaseCommission bool         `json:"is_base_commission"`
	IsFirstClick     bool         `json:"is_first_click"`
	IsDynamic        bool         `json:"is_dynamic"`
	Commissions      []Commission `json:"commissions"`
}

type Commission struct {
	CommissionType string           `json:"commission_type"`
	Description    string           `json:"description"`
	Tiers          []CommissionTier `json:"tiers"`
}

type CommissionTier struct {
	Commission     float64  `json:"commission"`
	Threshold      float64  `json:"threshold"`
	UpperThreshold *float64 `json:"upper_threshold"`
}

// PageMeta records which page of which run an offer was fetched on.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// OfferPage is one page of offers. Total is the provider-declared number of
// matching offers across all pages.
type OfferPage struct {
	Offers          []Offer
	Page            int
	RecordsReturned int
	Total           int
	TotalPages      int
}
