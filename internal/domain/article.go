package domain

import "time"

type ContentType string

const (
	ContentTypeNews ContentType = "news"
	ContentTypeBlog ContentType = "blog"
)

// Article is one ingested feed item. (Link, CountryCode) is the natural key,
// enforced by a unique index.
type Article struct {
	ID          int64
	Title       string
	Link        string
	PubDate     time.Time
	CountryCode string
	CategoryID  int64
	Content     string
	Image       string
	Source      string
	ContentType ContentType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FeedSpec is one entry of the configured feed list.
type FeedSpec struct {
	URL         string `yaml:"url"`
	Category    string `yaml:"category"`
	CountryCode string `yaml:"country_code"`
	Source      string `yaml:"source"`
}

// FeedResult is one parsed feed. ItemsSeen counts raw items including the
// ones dropped during normalization, so callers can account for skips.
type FeedResult struct {
	Articles  []Article
	ItemsSeen int
}
