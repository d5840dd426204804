package normalize

import (
	"time"

	"github.com/lazutkin/feedwire/app/tree"
)

// Namespace is one xmlns declaration seen on the document.
type Namespace struct {
	Prefix string `json:"prefix"`
	URI    string `json:"uri"`
}

// RootAttr is one attribute of the root element, canonical name form.
type RootAttr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Image is a feed or article image reference.
type Image struct {
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`
}

// Enclosure is an attached media resource.
type Enclosure struct {
	URL    string `json:"url"`
	Type   string `json:"type,omitempty"`
	Length string `json:"length,omitempty"`
}

// Source is the upstream feed an article was republished from.
type Source struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// FeedMeta is the dialect-agnostic feed-metadata record.
type FeedMeta struct {
	Namespaces []Namespace `json:"namespaces,omitempty"`
	RootAttrs  []RootAttr  `json:"root_attrs,omitempty"`

	Type    string `json:"type"`
	Version string `json:"version,omitempty"`

	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	PubDate     *time.Time `json:"pubdate,omitempty"`
	Link        string     `json:"link,omitempty"`
	XMLURL      string     `json:"xmlurl,omitempty"`
	Author      string     `json:"author,omitempty"`
	Language    string     `json:"language,omitempty"`
	Image       Image      `json:"image,omitempty"`
	Favicon     string     `json:"favicon,omitempty"`
	Copyright   string     `json:"copyright,omitempty"`
	Generator   string     `json:"generator,omitempty"`
	Categories  []string   `json:"categories,omitempty"`

	// Extra preserves every channel/feed child under its canonical key
	// for downstream consumers.
	Extra tree.Map `json:"extra,omitempty"`
}

// Article is the dialect-agnostic per-item record.
type Article struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Summary     string      `json:"summary,omitempty"`
	Date        *time.Time  `json:"date,omitempty"`
	PubDate     *time.Time  `json:"pubdate,omitempty"`
	Link        string      `json:"link,omitempty"`
	OrigLink    string      `json:"origlink,omitempty"`
	Author      string      `json:"author,omitempty"`
	GUID        string      `json:"guid,omitempty"`
	Comments    string      `json:"comments,omitempty"`
	Image       Image       `json:"image,omitempty"`
	Source      Source      `json:"source,omitempty"`
	Categories  []string    `json:"categories,omitempty"`
	Enclosures  []Enclosure `json:"enclosures,omitempty"`

	// Meta backlinks the owning feed when the addmeta option is set.
	Meta *FeedMeta `json:"meta,omitempty"`

	// Extra preserves every item/entry child under its canonical key.
	Extra tree.Map `json:"extra,omitempty"`
}

// Options steer normalization.
type Options struct {
	// Normalize off returns the raw child map in Extra, untouched.
	Normalize bool

	// BaseActive tells the meta normalizer an xml:base is already in
	// effect, so a discovered self link must not replace it.
	BaseActive bool

	// OnSelfURL is invoked when an Atom rel="self" link provides the
	// feed URL and no base is active. Returning true means the caller
	// adopted the URL as base; the subtree under normalization is then
	// retroactively resolved against it.
	OnSelfURL func(url string) bool
}
