// Package parser is a streaming syndication-feed parser. It drives an
// XML pull tokenizer over RSS 0.9x/2.0, RDF (RSS 1.0) and Atom 0.3/1.0
// documents and emits one normalized FeedMeta plus a sequence of
// normalized Articles, preserving all non-core namespaced XML.
//
// Memory stays bounded by one article subtree plus the feed-level
// metadata block: only the spine from the root to the current element
// is retained, and a closed item/entry subtree is handed to the
// normalizer and dropped.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"

	"github.com/lazutkin/feedwire/app/normalize"
	"github.com/lazutkin/feedwire/app/tree"
	"github.com/lazutkin/feedwire/app/urlutil"
	"github.com/lazutkin/feedwire/app/xmlns"
)

// Parser holds the options shared by its parse sessions. A Parser is
// stateless across calls; each Parse/Stream runs an independent
// session, so one Parser may serve concurrent parses.
type Parser struct {
	opts Options
}

// New creates a parser with default options.
func New() *Parser {
	return &Parser{opts: DefaultOptions()}
}

// NewWithOptions creates a parser with the given options.
func NewWithOptions(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse is the completion-style API: it consumes r to the end and
// returns the feed metadata and articles. On accumulated parse errors
// the joined error is returned alongside whatever was recovered.
func (p *Parser) Parse(r io.Reader) (*normalize.FeedMeta, []*normalize.Article, error) {
	s := newSession(p.opts, Events{})
	err := s.run(r)
	return s.meta, s.articles, err
}

// Stream is the observable-style API: events fire in document order
// while r is consumed. The returned error joins everything that went
// wrong; recovered metadata and articles were already delivered.
func (p *Parser) Stream(r io.Reader, ev Events) error {
	s := newSession(p.opts, ev)
	return s.run(r)
}

// baseFrame is one xml:base scope, keyed by the qualified name of the
// element that established it.
type baseFrame struct {
	name string
	url  string
}

// session owns all per-parse state. One session per document.
type session struct {
	opts   Options
	events Events
	xp     *xpp.XMLPullParser

	stack []*tree.Node // last element is the innermost open node
	bases []baseFrame  // last element is the active base

	xhtml     strings.Builder
	xhtmlName string
	inXHTML   bool

	meta        *normalize.FeedMeta
	metaEmitted bool
	articles    []*normalize.Article
	errs        []error
}

func newSession(opts Options, ev Events) *session {
	s := &session{opts: opts, events: ev, meta: &normalize.FeedMeta{}}
	if opts.FeedURL != "" {
		// Seeded base uses a frame name no element can close.
		s.bases = append(s.bases, baseFrame{name: "xml", url: opts.FeedURL})
	}
	return s
}

func (s *session) run(r io.Reader) error {
	s.xp = xpp.NewXMLPullParser(r, s.opts.Strict, s.charsetReader)

	for {
		tok, err := s.xp.NextToken()
		if err != nil {
			s.fail(fmt.Errorf("tokenizer: %w", err))
			break
		}

		switch tok {
		case xpp.StartTag:
			s.openTag()
		case xpp.EndTag:
			s.closeTag()
		case xpp.Text, xpp.IgnorableWhitespace:
			s.text(s.xp.Text)
		case xpp.EndDocument:
			s.finish()
			return s.err()
		}
	}

	s.finish()
	return s.err()
}

// charsetReader converts non-UTF-8 input. An unknown charset is
// reported as a warning and the raw bytes pass through.
func (s *session) charsetReader(label string, input io.Reader) (io.Reader, error) {
	r, err := charset.NewReaderLabel(label, input)
	if err != nil {
		s.warn(fmt.Errorf("charset %q: %w", label, err))
		return input, nil
	}
	return r, nil
}

func (s *session) top() *tree.Node {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

func (s *session) pop() *tree.Node {
	n := s.top()
	if n != nil {
		s.stack = s.stack[:len(s.stack)-1]
	}
	return n
}

func (s *session) activeBase() string {
	if len(s.bases) == 0 {
		return ""
	}
	return s.bases[len(s.bases)-1].url
}

func (s *session) pushBase(name, url string) {
	s.bases = append(s.bases, baseFrame{name: name, url: url})
}

// popBaseIf pops the active base when it was established by the
// element now closing.
func (s *session) popBaseIf(name string) {
	if len(s.bases) > 0 && s.bases[len(s.bases)-1].name == name {
		s.bases = s.bases[:len(s.bases)-1]
	}
}

// prefixFor returns the prefix the document declared for uri, or "".
func (s *session) prefixFor(uri string) string {
	if uri == "" {
		return ""
	}
	return s.xp.Spaces[uri]
}

func (s *session) qualifiedName() (name, prefix, local string) {
	local = strings.ToLower(s.xp.Name)
	prefix = s.prefixFor(s.xp.Space)
	name = local
	if prefix != "" {
		name = prefix + ":" + local
	}
	return name, prefix, local
}

func (s *session) openTag() {
	name, prefix, local := s.qualifiedName()

	n := &tree.Node{Name: name, Prefix: prefix, Local: local, URI: s.xp.Space}
	ordered := s.canonicalAttrs(n)

	// Inside XHTML capture, descendants are serialized verbatim and
	// never reach the stack.
	if s.inXHTML && name != s.xhtmlName {
		s.xhtml.WriteByte('<')
		s.xhtml.WriteString(name)
		for _, key := range ordered {
			s.xhtml.WriteByte(' ')
			s.xhtml.WriteString(key)
			s.xhtml.WriteString(`="`)
			s.xhtml.WriteString(n.Attr(key))
			s.xhtml.WriteByte('"')
		}
		s.xhtml.WriteByte('>')
		return
	}

	if len(s.stack) == 0 {
		s.handleRoot(n, ordered)
	}

	s.stack = append(s.stack, n)
}

// handleRoot identifies the dialect from the root element and records
// its version, attributes and namespace declarations.
func (s *session) handleRoot(n *tree.Node, ordered []string) {
	switch {
	case n.Local == "rss":
		s.meta.Type = xmlns.RSS
	case n.Local == "rdf" && xmlns.BelongsTo(n.URI, xmlns.RDF):
		s.meta.Type = xmlns.RDF
	case n.Local == "feed" && xmlns.BelongsTo(n.URI, xmlns.Atom):
		s.meta.Type = xmlns.Atom
	default:
		s.fail(fmt.Errorf("root element <%s>: %w", n.Name, ErrNotAFeed))
		return
	}

	switch {
	case n.Attr("version") != "":
		s.meta.Version = n.Attr("version")
	case s.meta.Type == xmlns.Atom && xmlns.IsAtom03(n.URI):
		s.meta.Version = "0.3"
	default:
		s.meta.Version = "1.0"
	}

	for _, key := range ordered {
		if key == "version" {
			continue
		}
		s.meta.RootAttrs = append(s.meta.RootAttrs, normalize.RootAttr{
			Name:  key,
			Value: n.Attr(key),
		})
	}
}

// canonicalAttrs canonicalizes the current tag's attributes into n and
// returns the keys in document order. Side effects: namespace
// declarations are recorded on the meta, xml:base frames are pushed,
// and type="xhtml" activates capture for this element.
func (s *session) canonicalAttrs(n *tree.Node) []string {
	base := s.activeBase()
	var ordered []string

	for _, attr := range s.xp.Attrs {
		local := strings.ToLower(attr.Name.Local)
		space := attr.Name.Space
		value := strings.TrimSpace(attr.Value)

		// xmlns declarations join the feed's namespace list.
		if space == "xmlns" || (space == "" && local == "xmlns") {
			key, prefix := "xmlns", ""
			if space == "xmlns" {
				key, prefix = "xmlns:"+local, local
			}
			s.meta.Namespaces = append(s.meta.Namespaces, normalize.Namespace{
				Prefix: prefix,
				URI:    value,
			})
			n.SetAttr(key, value)
			ordered = append(ordered, key)
			continue
		}

		key := local
		if space != "" {
			declared := s.prefixFor(space)
			if (declared != "" && !xmlns.BelongsTo(space, declared)) || xmlns.BelongsTo(space, "xml") {
				cp := xmlns.CanonicalPrefix(space)
				if cp == "" {
					cp = declared
				}
				key = cp + ":" + local
			}
		}

		if base != "" && (local == "href" || local == "src" || local == "uri") {
			value = urlutil.Resolve(base, value)
		}

		if local == "base" && xmlns.BelongsTo(space, "xml") {
			if base != "" {
				value = urlutil.Resolve(base, value)
			}
			s.pushBase(n.Name, value)
		}

		if local == "type" && value == "xhtml" && !s.inXHTML {
			s.inXHTML = true
			s.xhtmlName = n.Name
			s.xhtml.Reset()
		}

		n.SetAttr(key, value)
		ordered = append(ordered, key)
	}

	return ordered
}

func (s *session) text(t string) {
	if s.inXHTML {
		s.xhtml.WriteString(t)
		return
	}
	if top := s.top(); top != nil {
		top.Text += t
	}
}

func (s *session) closeTag() {
	name, _, _ := s.qualifiedName()

	// Mid-capture closes serialize; nothing was pushed for them.
	if s.inXHTML && name != s.xhtmlName {
		s.popBaseIf(name)
		s.xhtml.WriteString("</" + name + ">")
		return
	}

	n := s.pop()
	if n == nil {
		return
	}

	n.Type = canonicalType(n)

	// The element's own xml:base still applies to its text.
	base := s.activeBase()
	s.popBaseIf(n.Name)

	if s.inXHTML && name == s.xhtmlName {
		n.Text += strings.TrimSpace(s.xhtml.String())
		n.Children.Clear()
		s.xhtml.Reset()
		s.inXHTML = false
		s.xhtmlName = ""
	} else if (n.Local == "logo" || n.Local == "icon") && xmlns.BelongsTo(n.URI, xmlns.Atom) {
		if base != "" {
			n.Text = urlutil.Resolve(base, strings.TrimSpace(n.Text))
		}
	}

	n.Text = strings.TrimSpace(n.Text)

	switch {
	case isItem(n):
		s.handleItem(n)
		return
	case isChannel(n):
		if !s.metaEmitted {
			s.emitMeta(n)
		}
		return
	}

	parent := s.top()
	if parent == nil {
		return
	}
	parent.Children.Add(attachKey(n), collapse(n))
}

// canonicalType is the dialect tag attached to a closed element: atom
// and rdf win outright, then the registry, then the raw prefix.
func canonicalType(n *tree.Node) string {
	if xmlns.BelongsTo(n.URI, xmlns.Atom) {
		return xmlns.Atom
	}
	if xmlns.BelongsTo(n.URI, xmlns.RDF) {
		return xmlns.RDF
	}
	if cp := xmlns.CanonicalPrefix(n.URI); cp != "" {
		return cp
	}
	return n.Prefix
}

// attachKey picks the child-map key: bare local name for core dialect
// elements, canonical prefix:local for extension namespaces.
func attachKey(n *tree.Node) string {
	key := n.Local
	if key == "" {
		key = n.Name
	}
	if n.Prefix == "" {
		return key
	}
	switch n.Type {
	case xmlns.RSS, xmlns.RDF, xmlns.Atom:
		return key
	}
	cp := n.Type
	if cp == "" {
		cp = n.Prefix
	}
	return cp + ":" + n.Local
}

// collapse substitutes a bare string for elements that carried only
// character data.
func collapse(n *tree.Node) tree.Value {
	if len(n.Attrs) == 0 && n.Children.Len() == 0 {
		return tree.Text(n.Text)
	}
	return n
}

func isItem(n *tree.Node) bool {
	if n.Name == "item" || n.Name == "entry" {
		return true
	}
	if n.Local == "item" && (n.Prefix == "" || n.Type == xmlns.RDF) {
		return true
	}
	if n.Local == "entry" && (n.Prefix == "" || n.Type == xmlns.Atom) {
		return true
	}
	return false
}

func isChannel(n *tree.Node) bool {
	if n.Name == "channel" || n.Name == "feed" {
		return true
	}
	if n.Local == "channel" && (n.Prefix == "" || n.Type == xmlns.RDF) {
		return true
	}
	if n.Local == "feed" && (n.Prefix == "" || n.Type == xmlns.Atom) {
		return true
	}
	return false
}

// handleItem normalizes a closed item/entry and emits the article. If
// the feed meta was not emitted yet, it is normalized first from the
// still-open channel/feed, and an xml:base discovered there (Atom self
// link) retroactively resolves this item's URLs.
func (s *session) handleItem(n *tree.Node) {
	if !s.metaEmitted {
		if discovered := s.emitMeta(s.top()); discovered != "" {
			tree.Reresolve(n, discovered)
		}
	}

	a := normalize.Item(n, s.meta.Type, normalize.Options{Normalize: s.opts.Normalize})
	if s.opts.Normalize && a.Author == "" {
		a.Author = s.meta.Author
	}
	if s.opts.AddMeta {
		a.Meta = s.meta
	}

	s.articles = append(s.articles, a)
	if s.events.Article != nil {
		s.events.Article(a)
	}
}

// emitMeta normalizes node into the feed meta and fires the meta
// event. It returns the feed URL when one was discovered and adopted
// as xml:base during normalization.
func (s *session) emitMeta(node *tree.Node) (discovered string) {
	if node != nil {
		normalize.FillMeta(s.meta, node, normalize.Options{
			Normalize:  s.opts.Normalize,
			BaseActive: s.activeBase() != "",
			OnSelfURL: func(u string) bool {
				s.pushBase("xml", u)
				discovered = u
				return true
			},
		})
	}

	s.metaEmitted = true
	if s.events.Meta != nil {
		s.events.Meta(s.meta)
	}
	return discovered
}

func (s *session) finish() {
	if s.events.End != nil {
		s.events.End(s.articles)
	}
}

func (s *session) warn(err error) {
	if s.events.Warning != nil {
		s.events.Warning(err)
	}
}

func (s *session) fail(err error) {
	s.errs = append(s.errs, err)
	if s.events.Error != nil {
		s.events.Error(err)
	}
}

func (s *session) err() error {
	return errors.Join(s.errs...)
}
