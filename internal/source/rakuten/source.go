package rakuten

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"feed_syncer/internal/domain"
)

// Config holds the Rakuten credentials and endpoints. BearerToken is the
// base64 client credential for the token exchange, not an access token.
type Config struct {
	TokenURL            string
	CouponURL           string
	OfferURL            string
	AdvertiserSearchURL string
	AdvertiserDetailURL string
	BearerToken         string
	PublisherSID        string
	Scope               string
	OfferLimit          int

	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source talks to the Rakuten Advertising APIs. Each run starts with
// Authenticate, which exchanges the stored credential for a short-lived
// access token; the token is never reused across runs.
type Source struct {
	httpClient     *http.Client
	cfg            Config
	accessToken    string
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
		logger:         logger.With("source", "rakuten"),
	}
}

// Authenticate performs the password-grant token exchange.
func (s *Source) Authenticate(ctx context.Context) error {
	if s.cfg.BearerToken == "" {
		return errors.New("bearer token not configured")
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("scope", s.cfg.Scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+s.cfg.BearerToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return errors.New("token response carried no access token")
	}

	s.accessToken = token.AccessToken
	return nil
}

// FetchCoupons retrieves the coupon feed. The endpoint is effectively
// single-shot for our publisher account.
func (s *Source) FetchCoupons(ctx context.Context) (*domain.CouponPage, error) {
	feedURL := s.cfg.CouponURL
	if s.cfg.PublisherSID != "" {
		feedURL += "?sid=" + url.QueryEscape(s.cfg.PublisherSID)
	}

	body, err := s.fetch(ctx, feedURL, "application/xml")
	if err != nil {
		return nil, err
	}

	var feed couponFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("parse coupon feed: %w", err)
	}

	page := &domain.CouponPage{
		PageNumber:      feed.PageNumber,
		RecordsReturned: len(feed.Links),
		TotalMatched:    feed.TotalMatches,
	}
	if page.PageNumber == 0 {
		page.PageNumber = 1
	}
	if page.TotalMatched == 0 {
		page.TotalMatched = len(feed.Links)
	}

	for _, link := range feed.Links {
		page.Coupons = append(page.Coupons, s.transformCoupon(link))
	}
	return page, nil
}

func (s *Source) transformCoupon(link couponLink) domain.Coupon {
	coupon := domain.Coupon{
		PromotionType:    firstText(link.PromotionTypes),
		OfferDescription: strings.TrimSpace(link.OfferDescription),
		OfferStartDate:   parseDate(link.OfferStartDate),
		OfferEndDate:     parseDate(link.OfferEndDate),
		ClickURL:         link.ClickURL,
		ImpressionPixel:  link.ImpressionPixel,
		AdvertiserID:     link.AdvertiserID,
		AdvertiserName:   link.AdvertiserName,
		Network:          strings.TrimSpace(link.Network.Text),
		Reference:        domain.ReferenceRakuten,
		Status:           true,
		CategoryLabel:    firstText(link.Categories),
	}
	if coupon.AdvertiserID == "" {
		coupon.AdvertiserID = "unknown"
	}
	if coupon.CategoryLabel == "" {
		coupon.CategoryLabel = "Uncategorized"
	}
	if code := strings.TrimSpace(link.CouponCode); code != "" {
		coupon.CouponCode = &code
	}
	return coupon
}

// FetchPage retrieves one page of active offers.
func (s *Source) FetchPage(ctx context.Context, page int) (*domain.OfferPage, error) {
	limit := s.cfg.OfferLimit
	reqURL := fmt.Sprintf("%s?offer_status=active&page=%d&limit=%d", s.cfg.OfferURL, page, limit)

	body, err := s.fetch(ctx, reqURL, "application/json")
	if err != nil {
		return nil, err
	}

	var resp offersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse offers page %d: %w", page, err)
	}

	totalPages := 0
	if resp.Metadata.Total > 0 && limit > 0 {
		totalPages = (resp.Metadata.Total + limit - 1) / limit
	}

	result := &domain.OfferPage{
		Page:            page,
		RecordsReturned: len(resp.Offers),
		Total:           resp.Metadata.Total,
		TotalPages:      totalPages,
	}

	now := time.Now()
	for _, rec := range resp.Offers {
		offer := domain.Offer{
			GOID:        rec.GOID,
			OfferNumber: rec.OfferNumber,
			Status:      rec.Status,
			Name:        rec.Name,
			OfferType:   rec.OfferType,
			Advertiser:  rec.Advertiser,
			AutoRenew:   rec.AutoRenew,
			ReturnDays:  rec.ReturnDays,
			OfferRules:  rec.OfferRules,
			PageMeta: domain.PageMeta{
				Page:       page,
				Limit:      limit,
				Total:      resp.Metadata.Total,
				TotalPages: totalPages,
			},
			FetchedAt: now,
			IsActive:  rec.Status == "active",
		}
		if t := parseDate(rec.StartDate); t != nil {
			offer.StartAt = *t
		}
		if t := parseDate(rec.EndDate); t != nil {
			offer.EndAt = *t
		}
		result.Offers = append(result.Offers, offer)
	}
	return result, nil
}

// errRateLimited marks a throttled response; it is the only failure the
// fetch loop retries. Anything else fails the page attempt outright.
var errRateLimited = errors.New("rate limited")

// FetchMerchants retrieves the advertiser-search partner catalog: id and
// name per merchant, profile fields come from FetchDetails.
func (s *Source) FetchMerchants(ctx context.Context) (*domain.MerchantBatch, error) {
	body, err := s.fetch(ctx, s.cfg.AdvertiserSearchURL, "application/xml")
	if err != nil {
		return nil, err
	}

	var result advertiserSearchResult
	if err := xml.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse advertiser search: %w", err)
	}

	batch := &domain.MerchantBatch{
		RecordsSeen: len(result.Merchants),
	}
	for _, entry := range result.Merchants {
		if entry.MID == 0 {
			s.logger.Warn("dropping merchant without id", "name", entry.MerchantName)
			continue
		}
		name := strings.TrimSpace(entry.MerchantName)
		if name == "" {
			name = "Unknown"
		}
		batch.Merchants = append(batch.Merchants, domain.Merchant{
			AdvertiserID: entry.MID,
			Name:         name,
		})
	}
	return batch, nil
}

// FetchDetails retrieves the profile for one merchant.
func (s *Source) FetchDetails(ctx context.Context, advertiserID int64) (*domain.MerchantDetails, error) {
	body, err := s.fetch(ctx, fmt.Sprintf("%s/%d", s.cfg.AdvertiserDetailURL, advertiserID), "application/json")
	if err != nil {
		return nil, err
	}

	var resp advertiserDetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse advertiser %d details: %w", advertiserID, err)
	}
	return &resp.Advertiser, nil
}

func (s *Source) fetch(ctx context.Context, url, accept string) ([]byte, error) {
	var body []byte
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		body, err = s.doRequest(ctx, url, accept)
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

func (s *Source) doRequest(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

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

func firstText(values []labeledValue) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0].Text)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
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
	// epoch seconds show up in some offer payloads
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil && secs > 0 {
		t := time.Unix(secs, 0)
		return &t
	}
	return nil
}
