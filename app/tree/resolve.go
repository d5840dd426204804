package tree

import (
	"github.com/lazutkin/feedwire/app/urlutil"
	"github.com/lazutkin/feedwire/app/xmlns"
)

// Attributes that carry URL references resolved against xml:base.
var uriAttrs = map[string]bool{
	"href": true,
	"src":  true,
	"uri":  true,
}

// Reresolve walks the subtree rooted at n and resolves every href, src
// and uri attribute, plus the text of Atom logo/icon elements, against
// base. Used to retroactively fix URLs when the canonical feed URL is
// only discovered mid-parse.
func Reresolve(n *Node, base string) {
	if n == nil || base == "" {
		return
	}

	for name := range n.Attrs {
		if uriAttrs[name] {
			n.Attrs[name] = urlutil.Resolve(base, n.Attrs[name])
		}
	}

	if (n.Local == "logo" || n.Local == "icon") && xmlns.BelongsTo(n.URI, xmlns.Atom) {
		n.Text = urlutil.Resolve(base, n.Text)
	}

	atomParent := xmlns.BelongsTo(n.URI, xmlns.Atom)
	for _, key := range n.Children.Keys() {
		v, _ := n.Children.Get(key)
		// Atom logo/icon children that collapsed to bare text.
		if t, ok := v.(Text); ok && atomParent && (key == "logo" || key == "icon") {
			n.Children.Set(key, Text(urlutil.Resolve(base, string(t))))
			continue
		}
		Each(v, func(e Value) {
			if child, ok := e.(*Node); ok {
				Reresolve(child, base)
			}
		})
	}
}
