package parser

import (
	"errors"

	"github.com/lazutkin/feedwire/app/normalize"
)

// ErrNotAFeed is reported when the document root is not a recognized
// syndication dialect.
var ErrNotAFeed = errors.New("not a feed")

// Options configure a parse session.
type Options struct {
	// Strict makes the tokenizer reject malformed XML. Default off:
	// common quibbles (unknown entities, tags the decoder can
	// autoclose) are tolerated.
	Strict bool

	// Normalize maps subtrees onto the canonical FeedMeta/Article
	// schema. Off returns raw child maps. Default on.
	Normalize bool

	// AddMeta attaches a back-reference to the feed meta on every
	// emitted article. Default on.
	AddMeta bool

	// FeedURL pre-seeds the xml:base used before any xml:base
	// attribute or Atom self link is seen.
	FeedURL string
}

// DefaultOptions returns the options a zero-config caller gets.
func DefaultOptions() Options {
	return Options{Normalize: true, AddMeta: true}
}

// Events is the observable-style sink. Nil callbacks are skipped.
// Ordering guarantee: Meta fires exactly once, strictly before any
// Article; Articles fire in document order; End fires exactly once,
// last, with the full article list.
type Events struct {
	Meta    func(*normalize.FeedMeta)
	Article func(*normalize.Article)
	Warning func(error)
	Error   func(error)
	End     func([]*normalize.Article)
}
