package database

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/lazutkin/feedwire/app/normalize"
)

// ArticleRepository handles database operations for articles.
type ArticleRepository struct {
	db *DB
}

func NewArticleRepository(db *DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// ContentHash identifies an article for deduplication. Only title and
// link feed the hash, so a reworded description does not register as a
// new article.
func ContentHash(title, link string) string {
	hash := sha256.Sum256([]byte(title + "|" + link))
	return hex.EncodeToString(hash[:])
}

// CheckDuplicate reports whether an article with the given content
// hash already exists for the feed.
func (r *ArticleRepository) CheckDuplicate(feedID int64, contentHash string) (bool, error) {
	var id int64
	err := r.db.QueryRow(`
		SELECT id FROM articles WHERE feed_id = ? AND content_hash = ? LIMIT 1`,
		feedID, contentHash).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate: %w", err)
	}
	return true, nil
}

// StoreArticle stores a normalized article, updating the existing row
// when the (feed, guid) pair was seen before.
func (r *ArticleRepository) StoreArticle(feedID int64, a *normalize.Article) error {
	guid := a.GUID
	if guid == "" {
		guid = a.Link
	}
	if guid == "" {
		return fmt.Errorf("article %q has no guid or link", a.Title)
	}

	categories, err := json.Marshal(a.Categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO articles (
			feed_id, guid, title, link, description, summary, author,
			categories, published_at, updated_at, content_hash
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (feed_id, guid) DO UPDATE SET
			title = excluded.title,
			link = excluded.link,
			description = excluded.description,
			summary = excluded.summary,
			author = excluded.author,
			categories = excluded.categories,
			published_at = excluded.published_at,
			updated_at = excluded.updated_at,
			content_hash = excluded.content_hash`,
		feedID, guid, a.Title, a.Link, a.Description, a.Summary, a.Author,
		string(categories), a.PubDate, a.Date, ContentHash(a.Title, a.Link))
	if err != nil {
		return fmt.Errorf("failed to store article: %w", err)
	}
	return nil
}

// GetArticles returns up to limit stored articles for a feed, newest
// first.
func (r *ArticleRepository) GetArticles(feedID int64, limit int) ([]Article, error) {
	rows, err := r.db.Query(`
		SELECT id, feed_id, guid, title, link, description, summary, author,
		       categories, published_at, updated_at, content_hash, created_at
		FROM articles
		WHERE feed_id = ?
		ORDER BY published_at DESC, id DESC
		LIMIT ?`, feedID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		var title, link, description, summary, author, categories sql.NullString
		var publishedAt, updatedAt sql.NullTime

		err := rows.Scan(&a.ID, &a.FeedID, &a.GUID, &title, &link, &description,
			&summary, &author, &categories, &publishedAt, &updatedAt,
			&a.ContentHash, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}

		a.Title = title.String
		a.Link = link.String
		a.Description = description.String
		a.Summary = summary.String
		a.Author = author.String
		if categories.Valid && categories.String != "" {
			if err := json.Unmarshal([]byte(categories.String), &a.Categories); err != nil {
				return nil, fmt.Errorf("failed to decode categories: %w", err)
			}
		}
		if publishedAt.Valid {
			a.PublishedAt = &publishedAt.Time
		}
		if updatedAt.Valid {
			a.UpdatedAt = &updatedAt.Time
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// CountArticles returns the number of stored articles for a feed.
func (r *ArticleRepository) CountArticles(feedID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM articles WHERE feed_id = ?`, feedID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}
