package rss

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"feed_syncer/internal/domain"
)

// Config holds the shared HTTP settings for feed fetching.
type Config struct {
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source fetches RSS 2.0 and Atom feeds and normalizes their items into
// articles.
type Source struct {
	httpClient     *http.Client
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
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "rss"),
	}
}

var imgSrcRe = regexp.MustCompile(`<img[^>]+src=["'](.*?)["']`)

// pubDate formats seen in the wild, most common first.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func (s *Source) Fetch(ctx context.Context, feed domain.FeedSpec) (*domain.FeedResult, error) {
	body, err := s.fetch(ctx, feed.URL)
	if err != nil {
		return nil, err
	}

	var doc rssDocument
	if err := xml.Unmarshal(body, &doc); err == nil {
		return s.transformRSS(feed, doc.Channel.Items), nil
	}

	var atom atomFeed
	if err := xml.Unmarshal(body, &atom); err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feed.URL, err)
	}
	return s.transformAtom(feed, atom.Entries), nil
}

// errRateLimited marks a throttled response; it is the only failure the
// fetch loop retries. Anything else fails the feed attempt outright.
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
			"url", url,
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

	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")
	req.Header.Set("User-Agent", "FeedSyncer/1.0")

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

func (s *Source) transformRSS(feed domain.FeedSpec, items []rssItem) *domain.FeedResult {
	result := &domain.FeedResult{ItemsSeen: len(items)}

	for _, item := range items {
		if item.Link == "" || item.Title == "" {
			s.logger.Warn("dropping feed item without link or title", "feed", feed.URL)
			continue
		}

		pubDate, ok := parseDate(item.PubDate)
		if !ok {
			s.logger.Warn("dropping feed item with unparsable date",
				"feed", feed.URL,
				"pub_date", item.PubDate,
			)
			continue
		}

		result.Articles = append(result.Articles, domain.Article{
			Title:       strings.TrimSpace(item.Title),
			Link:        item.Link,
			PubDate:     pubDate,
			CountryCode: feed.CountryCode,
			Content:     cleanSnippet(item.Description),
			Image:       findImage(item),
			Source:      feed.Source,
			ContentType: contentTypeFor(feed.Category),
		})
	}

	return result
}

func (s *Source) transformAtom(feed domain.FeedSpec, entries []atomEntry) *domain.FeedResult {
	result := &domain.FeedResult{ItemsSeen: len(entries)}

	for _, entry := range entries {
		link := atomEntryLink(entry)
		if link == "" || entry.Title == "" {
			s.logger.Warn("dropping feed entry without link or title", "feed", feed.URL)
			continue
		}

		dateStr := entry.Published
		if dateStr == "" {
			dateStr = entry.Updated
		}
		pubDate, ok := parseDate(dateStr)
		if !ok {
			s.logger.Warn("dropping feed entry with unparsable date",
				"feed", feed.URL,
				"published", dateStr,
			)
			continue
		}

		content := entry.Summary
		if content == "" {
			content = entry.Content
		}

		result.Articles = append(result.Articles, domain.Article{
			Title:       strings.TrimSpace(entry.Title),
			Link:        link,
			PubDate:     pubDate,
			CountryCode: feed.CountryCode,
			Content:     cleanSnippet(content),
			Image:       firstImgSrc(entry.Content),
			Source:      feed.Source,
			ContentType: contentTypeFor(feed.Category),
		})
	}

	return result
}

func atomEntryLink(entry atomEntry) string {
	for _, l := range entry.Links {
		if l.Rel == "" || l.Rel == "alternate" {
			return l.Href
		}
	}
	if len(entry.Links) > 0 {
		return entry.Links[0].Href
	}
	return ""
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now(), true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// cleanSnippet strips markup, deduplicates repeated lines and collapses the
// result into one line.
func cleanSnippet(snippet string) string {
	snippet = stripTags(snippet)

	seen := make(map[string]struct{})
	var lines []string
	for _, line := range strings.Split(snippet, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}
	return strings.Join(lines, " ")
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

func findImage(item rssItem) string {
	if item.Enclosure.URL != "" && strings.HasPrefix(item.Enclosure.Type, "image/") {
		return item.Enclosure.URL
	}
	if src := firstImgSrc(item.Content); src != "" {
		return src
	}
	return firstImgSrc(item.Description)
}

func firstImgSrc(html string) string {
	if m := imgSrcRe.FindStringSubmatch(html); m != nil {
		return m[1]
	}
	return ""
}

func contentTypeFor(category string) domain.ContentType {
	if strings.Contains(strings.ToLower(category), "blog") {
		return domain.ContentTypeBlog
	}
	return domain.ContentTypeNews
}
