package database

import "time"

// Feed is one row of the feeds table.
type Feed struct {
	ID          int64
	Name        string
	URL         string
	Title       string
	Link        string
	Description string
	Language    string
	ImageURL    string
	UpdatedAt   *time.Time
}

// Article is one row of the articles table.
type Article struct {
	ID          int64
	FeedID      int64
	GUID        string
	Title       string
	Link        string
	Description string
	Summary     string
	Author      string
	Categories  []string
	PublishedAt *time.Time
	UpdatedAt   *time.Time
	ContentHash string
	CreatedAt   time.Time
}
