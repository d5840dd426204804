// Package xmlns maps syndication namespace URIs onto canonical prefixes.
//
// The registry is the single point that decides dialect identity: a feed
// that binds "a:" to the Atom namespace is recognized exactly as one that
// uses the default namespace.
package xmlns

import "strings"

// Dialect identifiers attached to recognized root elements.
const (
	RSS  = "rss"
	RDF  = "rdf"
	Atom = "atom"
)

// Canonical prefixes override whatever prefix the feed declares.
// Namespace table derived from the ones shipped by the popular feed
// parser implementations. Keys are normalized: lowercase, no trailing
// slash.
var canonical = map[string]string{
	"http://www.w3.org/2005/atom":                                    Atom,
	"http://purl.org/atom/ns#":                                       Atom,
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#":                    RDF,
	"http://purl.org/rss/1.0":                                        RSS,
	"http://my.netscape.com/rdf/simple/0.9":                          RSS,
	"http://channel.netscape.com/rdf/simple/0.9":                     RSS,
	"http://purl.org/dc/elements/1.1":                                "dc",
	"http://purl.org/dc/elements/1.0":                                "dc",
	"http://www.itunes.com/dtds/podcast-1.0.dtd":                     "itunes",
	"http://search.yahoo.com/mrss":                                   "media",
	"http://web.resource.org/cc":                                     "cc",
	"http://creativecommons.org/ns#":                                 "cc",
	"http://cyber.law.harvard.edu/rss/creativecommonsrssmodule.html": "creativecommons",
	"http://backend.userland.com/creativecommonsrssmodule":           "creativecommons",
	"http://webns.net/mvcb":                                          "admin",
	"http://rssnamespace.org/feedburner/ext/1.0":                     "feedburner",
	"http://www.pheedo.com/namespace/pheedo":                         "pheedo",
	"http://www.w3.org/xml/1998/namespace":                           "xml",
	// Go's XML decoder reports the predeclared xml prefix literally.
	"xml": "xml",
}

// Atom 0.3 uses a distinct namespace; the root handler needs to tell the
// two apart to report the feed version.
const atom03URI = "http://purl.org/atom/ns#"

func normalize(uri string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(uri)), "/")
}

// CanonicalPrefix returns the canonical prefix for a registered namespace
// URI, or "" when the URI is unknown. Lookup is case-insensitive and
// tolerates a trailing slash.
func CanonicalPrefix(uri string) string {
	if uri == "" {
		return ""
	}
	return canonical[normalize(uri)]
}

// BelongsTo reports whether uri is one of the registered URIs for prefix.
func BelongsTo(uri, prefix string) bool {
	return prefix != "" && CanonicalPrefix(uri) == prefix
}

// IsAtom03 reports whether uri is the Atom 0.3 namespace.
func IsAtom03(uri string) bool {
	return normalize(uri) == normalize(atom03URI)
}
