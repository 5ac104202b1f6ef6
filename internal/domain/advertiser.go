package domain

import "time"

// Advertiser is a joined affiliate program. AdvertiserID is unique, enforced
// by a unique index; subsequent sightings update the row in place.
type Advertiser struct {
	ID                        int64
	AdvertiserID              string
	AdvertiserName            string
	ProgramName               string
	ProgramURL                string
	AccountStatus             string
	SevenDayEPC               float64
	ThreeMonthEPC             float64
	Language                  string
	RelationshipStatus        string
	MobileTrackingCertified   bool
	CookielessTrackingEnabled bool
	NetworkRank               int
	PrimaryParent             string
	PrimaryChild              string
	PerformanceIncentives     bool
	Actions                   []AdvertiserAction
	LinkTypes                 []string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

type AdvertiserAction struct {
	Name       string           `json:"name"`
	Type       string           `json:"type"`
	ID         string           `json:"id"`
	Commission ActionCommission `json:"commission"`
}

type ActionCommission struct {
	Default string           `json:"default"`
	Items   []CommissionItem `json:"itemlist"`
}

type CommissionItem struct {
	Value string `json:"value"`
	Name  string `json:"name"`
	ID    string `json:"id"`
}

// AdvertiserBatch is the full advertiser-lookup result; the endpoint is not
// paginated.
type AdvertiserBatch struct {
	Advertisers []Advertiser
	RecordsSeen int
}
