package cfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Subscription is one feed entry in the subscriptions file.
type Subscription struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	FeedURL string `yaml:"feed_url"` // optional pre-seeded base
}

type subscriptionsFile struct {
	Feeds []Subscription `yaml:"feeds"`
}

// LoadSubscriptions reads the YAML subscriptions file used in batch
// mode.
func LoadSubscriptions(path string) ([]Subscription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subscriptions file: %w", err)
	}

	var file subscriptionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse subscriptions file: %w", err)
	}

	for i, sub := range file.Feeds {
		if sub.URL == "" {
			return nil, fmt.Errorf("subscription %d: missing url", i)
		}
		if sub.Name == "" {
			file.Feeds[i].Name = sub.URL
		}
	}

	return file.Feeds, nil
}
