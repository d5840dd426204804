package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	FeedsFile string `long:"feeds" env:"FEEDS_FILE" description:"YAML file listing feeds to pull in batch mode"`
	DBPath    string `long:"db" env:"DB_PATH" description:"SQLite database path; when set, parsed articles are stored"`

	Strict  bool   `long:"strict" env:"STRICT" description:"Reject malformed XML instead of tolerating quibbles"`
	Raw     bool   `long:"raw" env:"RAW" description:"Skip normalization and emit raw element trees"`
	NoMeta  bool   `long:"no-meta" env:"NO_META" description:"Do not attach feed metadata to every article"`
	FeedURL string `long:"feed-url" env:"FEED_URL" description:"Base URL used to resolve relative links before the feed declares one"`

	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"feedwire/1.0" description:"User agent string for HTTP requests"`
	Timeout   int    `long:"timeout" env:"TIMEOUT" default:"30" description:"HTTP fetch timeout in seconds"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		Feed string `positional-arg-name:"feed" description:"Feed URL or file path"`
	} `positional-args:"yes"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		FeedRef:   raw.Args.Feed,
		FeedsFile: raw.FeedsFile,
		Strict:    raw.Strict,
		Raw:       raw.Raw,
		NoMeta:    raw.NoMeta,
		FeedURL:   raw.FeedURL,
		DBPath:    raw.DBPath,
		UserAgent: raw.UserAgent,
		Timeout:   raw.Timeout,
		Debug:     raw.Debug,
		Version:   GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
