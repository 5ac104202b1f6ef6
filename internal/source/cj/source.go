package cj

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"feed_syncer/internal/domain"
)

// Config holds the CJ personal access token and endpoints.
type Config struct {
	Token               string
	WebsiteID           string
	CompanyID           string
	LinkSearchURL       string
	AdvertiserLookupURL string

	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source talks to the CJ Affiliate APIs with a static bearer token.
type Source struct {
	httpClient     *http.Client
	cfg            Config
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg:            cfg,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "cj"),
	}
}

// Authenticate verifies the static token is configured; there is no
// exchange step.
func (s *Source) Authenticate(_ context.Context) error {
	if s.cfg.Token == "" {
		return errors.New("access token not configured")
	}
	return nil
}

// FetchPage retrieves one page of joined coupon links.
func (s *Source) FetchPage(ctx context.Context, page int) (*domain.CouponPage, error) {
	q := url.Values{}
	q.Set("website-id", s.cfg.WebsiteID)
	q.Set("advertiser-ids", "joined")
	q.Set("promotion-type", "coupon")
	q.Set("page-number", strconv.Itoa(page))

	body, err := s.fetch(ctx, s.cfg.LinkSearchURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var resp linkSearchResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse link search page %d: %w", page, err)
	}

	result := &domain.CouponPage{
		PageNumber:      resp.Links.PageNumber,
		RecordsReturned: resp.Links.RecordsReturned,
		TotalMatched:    resp.Links.TotalMatched,
	}
	if result.PageNumber == 0 {
		result.PageNumber = page
	}
	if result.RecordsReturned == 0 {
		result.RecordsReturned = len(resp.Links.Links)
	}

	for _, link := range resp.Links.Links {
		result.Coupons = append(result.Coupons, s.transformLink(link))
	}
	return result, nil
}

var imgSrcRe = regexp.MustCompile(`<img[^>]+src=["'](.*?)["']`)

func (s *Source) transformLink(link cjLink) domain.Coupon {
	coupon := domain.Coupon{
		PromotionType:    link.PromotionType,
		OfferDescription: strings.TrimSpace(link.Description),
		OfferStartDate:   parseDate(link.PromotionStartDate),
		OfferEndDate:     parseDate(link.PromotionEndDate),
		ClickURL:         link.ClickURL,
		ImpressionPixel:  extractImpressionPixel(link.LinkCodeHTML),
		AdvertiserID:     link.AdvertiserID,
		AdvertiserName:   link.AdvertiserName,
		Network:          "CJ",
		Reference:        domain.ReferenceCJ,
		Status:           link.RelationshipStatus == "joined",
		LastUpdated:      parseDate(link.LastUpdated),
		CategoryLabel:    strings.TrimSpace(link.Category),
		CJ: &domain.CJLinkAttributes{
			ClickCommission:      parseMoney(link.ClickCommission),
			CreativeHeight:       link.CreativeHeight,
			CreativeWidth:        link.CreativeWidth,
			Language:             link.Language,
			LinkCodeHTML:         link.LinkCodeHTML,
			LinkCodeJavascript:   link.LinkCodeJavascript,
			Destination:          link.Destination,
			LinkID:               link.LinkID,
			LinkName:             link.LinkName,
			LinkType:             link.LinkType,
			AllowDeepLinking:     link.AllowDeepLinking,
			PerformanceIncentive: link.PerformanceIncentive,
			SaleCommission:       parseMoney(link.SaleCommission),
			MobileOptimized:      link.MobileOptimized,
			MobileAppDownload:    link.MobileAppDownload,
			CrossDeviceOnly:      link.CrossDeviceOnly,
			TargetedCountries:    link.TargetedCountries,
			EventName:            link.EventName,
			AdContent:            link.AdContent,
			SevenDayEPC:          parseMoney(link.SevenDayEPC),
			ThreeMonthEPC:        parseMoney(link.ThreeMonthEPC),
		},
	}
	if coupon.CategoryLabel == "" {
		coupon.CategoryLabel = "Uncategorized"
	}
	if code := strings.TrimSpace(link.CouponCode); code != "" {
		coupon.CouponCode = &code
	}
	return coupon
}

// FetchAdvertisers retrieves every joined advertiser; the endpoint is not
// paginated for our account size.
func (s *Source) FetchAdvertisers(ctx context.Context) (*domain.AdvertiserBatch, error) {
	q := url.Values{}
	q.Set("requestor-cid", s.cfg.CompanyID)
	q.Set("advertiser-ids", "joined")

	body, err := s.fetch(ctx, s.cfg.AdvertiserLookupURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var resp advertiserLookupResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse advertiser lookup: %w", err)
	}

	batch := &domain.AdvertiserBatch{
		RecordsSeen: resp.Advertisers.RecordsReturned,
	}
	if batch.RecordsSeen == 0 {
		batch.RecordsSeen = len(resp.Advertisers.Advertisers)
	}

	for _, adv := range resp.Advertisers.Advertisers {
		if adv.AdvertiserID == "" {
			s.logger.Warn("dropping advertiser without id", "name", adv.AdvertiserName)
			continue
		}
		batch.Advertisers = append(batch.Advertisers, s.transformAdvertiser(adv))
	}
	return batch, nil
}

func (s *Source) transformAdvertiser(adv cjAdvertiser) domain.Advertiser {
	rank, _ := strconv.Atoi(strings.TrimSpace(adv.NetworkRank))

	out := domain.Advertiser{
		AdvertiserID:              adv.AdvertiserID,
		AdvertiserName:            adv.AdvertiserName,
		ProgramName:               adv.ProgramName,
		ProgramURL:                adv.ProgramURL,
		AccountStatus:             adv.AccountStatus,
		SevenDayEPC:               parseMoney(adv.SevenDayEPC),
		ThreeMonthEPC:             parseMoney(adv.ThreeMonthEPC),
		Language:                  adv.Language,
		RelationshipStatus:        adv.RelationshipStatus,
		MobileTrackingCertified:   adv.MobileTrackingCertified,
		CookielessTrackingEnabled: adv.CookielessTrackingEnabled,
		NetworkRank:               rank,
		PrimaryParent:             adv.PrimaryCategory.Parent,
		PrimaryChild:              adv.PrimaryCategory.Child,
		PerformanceIncentives:     adv.PerformanceIncentives,
		LinkTypes:                 adv.LinkTypes,
	}

	for _, action := range adv.Actions {
		converted := domain.AdvertiserAction{
			Name: action.Name,
			Type: action.Type,
			ID:   action.ID,
			Commission: domain.ActionCommission{
				Default: action.Commission.Default,
			},
		}
		for _, item := range action.Commission.Items {
			converted.Commission.Items = append(converted.Commission.Items, domain.CommissionItem{
				Value: strings.TrimSpace(item.Value),
				Name:  item.Name,
				ID:    item.ID,
			})
		}
		out.Actions = append(out.Actions, converted)
	}
	return out
}

// errRateLimited marks a throttled response; it is the only failure the
// fetch loop retries. Anything else fails the page attempt outright.
var errRateLimited = errors.New("rate limited")

func (s *Source) fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		body, err = s.doRequest(ctx, url)
		if err == nil {
			return body, nil
		}
		if !errors.Is(err, errRateLimited) {
			return nil, err
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/xml")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func extractImpressionPixel(linkCode string) string {
	if m := imgSrcRe.FindStringSubmatch(linkCode); m != nil {
		return m[1]
	}
	return ""
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05-0700",
	"2006-01-02",
}

func parseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// parseMoney coerces commission and EPC strings ("1.50", "4.00%", "$0.75",
// "N/A") to a number; anything unparsable is zero.
func parseMoney(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "n/a") {
		return 0
	}
	value = strings.TrimPrefix(value, "$")
	value = strings.TrimSuffix(value, "%")
	value = strings.ReplaceAll(value, ",", "")
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}
