package normalize

import (
	"strings"

	"github.com/lazutkin/feedwire/app/tree"
)

// Dedup drops duplicate strings, keeping the first occurrence order.
// Comparison is exact and case-sensitive; values are not trimmed here.
func Dedup(in []string) []string {
	if len(in) < 2 {
		return in
	}
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// personName extracts a human-readable author from an Atom person
// construct (name, email or uri children) or a bare text element.
func personName(v tree.Value) string {
	if n, ok := tree.First(v).(*tree.Node); ok && n.Children.Len() > 0 {
		if s := tree.ChildText(n, "name"); s != "" {
			return s
		}
		if s := tree.ChildText(n, "email"); s != "" {
			return s
		}
		if s := tree.ChildText(n, "uri"); s != "" {
			return s
		}
	}
	return tree.TextOf(v)
}

// collectCategories appends the categories expressed by el under the
// given child key, one entry per logical category.
func collectCategories(cats []string, key string, el tree.Value) []string {
	tree.Each(el, func(v tree.Value) {
		switch key {
		case "category":
			// Atom categories carry a term attribute; RSS ones are
			// comma-separated text.
			if term := tree.AttrOf(v, "term"); term != "" {
				cats = append(cats, term)
				return
			}
			for _, part := range strings.Split(tree.TextOf(v), ",") {
				if p := strings.TrimSpace(part); p != "" {
					cats = append(cats, p)
				}
			}
		case "dc:subject":
			cats = append(cats, strings.Fields(tree.TextOf(v))...)
		case "itunes:category":
			top := strings.TrimSpace(tree.AttrOf(v, "text"))
			if top == "" {
				return
			}
			nested := 0
			if sub, ok := tree.ChildOf(v, "itunes:category"); ok {
				tree.Each(sub, func(sv tree.Value) {
					if st := strings.TrimSpace(tree.AttrOf(sv, "text")); st != "" {
						cats = append(cats, top+"/"+st)
						nested++
					}
				})
			}
			if nested == 0 {
				cats = append(cats, top)
			}
		case "media:category":
			if s := strings.TrimSpace(tree.TextOf(v)); s != "" {
				cats = append(cats, s)
			}
		}
	})
	return cats
}

// resourceAttr returns the first rdf:resource attribute in a single
// value or a list. The attribute keys as "rdf:resource" when the feed
// binds a non-canonical prefix and as "resource" otherwise; both are
// accepted.
func resourceAttr(el tree.Value) string {
	var found string
	tree.Each(el, func(v tree.Value) {
		if found != "" {
			return
		}
		if s := tree.AttrOf(v, "rdf:resource", "resource"); s != "" {
			found = s
		}
	})
	return found
}

// childTextOf returns the flattened text of node's child under key,
// or "".
func childTextOf(node *tree.Node, key string) string {
	v, ok := node.Children.Get(key)
	if !ok {
		return ""
	}
	return tree.TextOf(v)
}
