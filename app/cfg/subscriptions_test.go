package cfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSubscriptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yml")
	data := `feeds:
  - name: example
    url: https://example.com/feed.xml
  - url: https://other.com/atom.xml
    feed_url: https://other.com/
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	subs, err := LoadSubscriptions(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("Expected 2 subscriptions, got: %d", len(subs))
	}
	if subs[0].Name != "example" {
		t.Errorf("Expected name 'example', got: %s", subs[0].Name)
	}
	if subs[1].Name != "https://other.com/atom.xml" {
		t.Errorf("Expected name defaulted to URL, got: %s", subs[1].Name)
	}
	if subs[1].FeedURL != "https://other.com/" {
		t.Errorf("Expected feed_url preserved, got: %s", subs[1].FeedURL)
	}
}

func TestLoadSubscriptionsMissingURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yml")
	if err := os.WriteFile(path, []byte("feeds:\n  - name: broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSubscriptions(path); err == nil {
		t.Fatal("Expected error for subscription without url")
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}
