package cfg

type Cfg struct {
	// Input selection
	FeedRef   string // positional: feed URL or file path
	FeedsFile string // YAML subscriptions file for batch mode

	// Parser options
	Strict  bool
	Raw     bool
	NoMeta  bool
	FeedURL string

	// Storage
	DBPath string

	// Fetching
	UserAgent string
	Timeout   int // seconds

	// Application metadata
	Debug   bool
	Version string
}
