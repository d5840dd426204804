package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lazutkin/feedwire/app/cfg"
	"github.com/lazutkin/feedwire/app/database"
	"github.com/lazutkin/feedwire/app/fetch"
	"github.com/lazutkin/feedwire/app/normalize"
	"github.com/lazutkin/feedwire/app/parser"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(appCfg); err != nil {
		slog.Error("feedwire failed", "error", err)
		os.Exit(1)
	}
}

func run(appCfg *cfg.Cfg) error {
	ctx := context.Background()
	client := fetch.NewClient(appCfg.UserAgent, time.Duration(appCfg.Timeout)*time.Second)

	if appCfg.FeedsFile != "" {
		return runBatch(ctx, appCfg, client)
	}

	if appCfg.FeedRef == "" {
		return fmt.Errorf("no feed given: pass a URL/path or --feeds")
	}
	return runSingle(ctx, appCfg, client)
}

// runSingle parses one feed and dumps the result as JSON on stdout.
func runSingle(ctx context.Context, appCfg *cfg.Cfg, client *fetch.Client) error {
	meta, articles, err := parseFeed(ctx, appCfg, client, appCfg.FeedRef, appCfg.FeedURL)
	if err != nil {
		return err
	}

	out := struct {
		Meta     *normalize.FeedMeta  `json:"meta"`
		Articles []*normalize.Article `json:"articles"`
	}{meta, articles}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// runBatch pulls every subscribed feed and stores the articles.
func runBatch(ctx context.Context, appCfg *cfg.Cfg, client *fetch.Client) error {
	if appCfg.DBPath == "" {
		return fmt.Errorf("batch mode requires --db")
	}

	subs, err := cfg.LoadSubscriptions(appCfg.FeedsFile)
	if err != nil {
		return err
	}
	slog.Info("Loaded subscriptions", "count", len(subs))

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		return err
	}
	slog.Debug("Migrations applied", "version", version, "dirty", dirty)

	feeds := database.NewFeedRepository(db)
	articles := database.NewArticleRepository(db)

	failures := 0
	for _, sub := range subs {
		if err := pullFeed(ctx, appCfg, client, feeds, articles, sub); err != nil {
			slog.Error("Failed to process feed", "feed", sub.Name, "error", err)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d feeds failed", failures, len(subs))
	}
	return nil
}

func pullFeed(ctx context.Context, appCfg *cfg.Cfg, client *fetch.Client,
	feeds *database.FeedRepository, articles *database.ArticleRepository, sub cfg.Subscription) error {

	meta, items, err := parseFeed(ctx, appCfg, client, sub.URL, sub.FeedURL)
	if err != nil {
		return err
	}

	feedID, err := feeds.UpsertFeed(sub.Name, sub.URL)
	if err != nil {
		return err
	}
	if err := feeds.UpdateMetadata(feedID, meta); err != nil {
		return err
	}

	newCount := 0
	duplicateCount := 0
	for _, item := range items {
		dup, err := articles.CheckDuplicate(feedID, database.ContentHash(item.Title, item.Link))
		if err != nil {
			return err
		}
		if dup {
			duplicateCount++
			continue
		}
		if err := articles.StoreArticle(feedID, item); err != nil {
			return err
		}
		newCount++
	}

	slog.Info("Processed feed", "feed", sub.Name, "title", meta.Title,
		"new", newCount, "duplicates", duplicateCount)
	return nil
}

func parseFeed(ctx context.Context, appCfg *cfg.Cfg, client *fetch.Client,
	ref, feedURL string) (*normalize.FeedMeta, []*normalize.Article, error) {

	body, err := client.Open(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	defer body.Close()

	opts := parser.Options{
		Strict:    appCfg.Strict,
		Normalize: !appCfg.Raw,
		AddMeta:   !appCfg.NoMeta,
		FeedURL:   feedURL,
	}

	var meta *normalize.FeedMeta
	var articles []*normalize.Article

	err = parser.NewWithOptions(opts).Stream(body, parser.Events{
		Meta: func(m *normalize.FeedMeta) {
			meta = m
			slog.Debug("Feed metadata", "feed", ref, "type", m.Type, "version", m.Version)
		},
		Article: func(a *normalize.Article) {
			articles = append(articles, a)
		},
		Warning: func(err error) {
			slog.Warn("Parser warning", "feed", ref, "warning", err)
		},
		End: func(all []*normalize.Article) {
			articles = all
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse feed %s: %w", ref, err)
	}
	if meta == nil {
		return nil, nil, fmt.Errorf("feed %s produced no metadata", ref)
	}
	return meta, articles, nil
}
