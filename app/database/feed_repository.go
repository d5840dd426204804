package database

import (
	"database/sql"
	"fmt"

	"github.com/lazutkin/feedwire/app/normalize"
)

// FeedRepository handles database operations for feeds.
type FeedRepository struct {
	db *DB
}

func NewFeedRepository(db *DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// UpsertFeed registers a feed by name and returns its id. The URL is
// updated in place when the subscription moved.
func (r *FeedRepository) UpsertFeed(name, url string) (int64, error) {
	_, err := r.db.Exec(`
		INSERT INTO feeds (name, url) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET url = excluded.url`,
		name, url)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert feed: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(`SELECT id FROM feeds WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to read feed id: %w", err)
	}
	return id, nil
}

// UpdateMetadata stores the normalized feed metadata on the feed row.
func (r *FeedRepository) UpdateMetadata(feedID int64, meta *normalize.FeedMeta) error {
	_, err := r.db.Exec(`
		UPDATE feeds
		SET title = ?, link = ?, description = ?, language = ?, image_url = ?, updated_at = ?
		WHERE id = ?`,
		meta.Title, meta.Link, meta.Description, meta.Language, meta.Image.URL,
		meta.Date, feedID)
	if err != nil {
		return fmt.Errorf("failed to update feed metadata: %w", err)
	}
	return nil
}

// GetFeed returns a feed row by name.
func (r *FeedRepository) GetFeed(name string) (*Feed, error) {
	var f Feed
	var title, link, description, language, imageURL sql.NullString
	var updatedAt sql.NullTime

	err := r.db.QueryRow(`
		SELECT id, name, url, title, link, description, language, image_url, updated_at
		FROM feeds WHERE name = ?`, name).
		Scan(&f.ID, &f.Name, &f.URL, &title, &link, &description, &language, &imageURL, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}

	f.Title = title.String
	f.Link = link.String
	f.Description = description.String
	f.Language = language.String
	f.ImageURL = imageURL.String
	if updatedAt.Valid {
		f.UpdatedAt = &updatedAt.Time
	}
	return &f, nil
}
