package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"feed_syncer/internal/domain"
)

// LoadFeeds reads the configured feed list. The file is a yaml document with
// a top-level `feeds` list.
func LoadFeeds(path string) ([]domain.FeedSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}

	var doc struct {
		Feeds []domain.FeedSpec `yaml:"feeds"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse feeds file: %w", err)
	}

	for i, f := range doc.Feeds {
		if f.URL == "" {
			return nil, fmt.Errorf("feeds[%d]: missing url", i)
		}
		if f.Category == "" {
			return nil, fmt.Errorf("feeds[%d]: missing category", i)
		}
	}

	return doc.Feeds, nil
}
