package normalize

import (
	"strings"

	"github.com/lazutkin/feedwire/app/tree"
)

// FillMeta maps a channel/feed subtree onto meta. The parser populates
// Type, Version, Namespaces and RootAttrs beforehand; this fills the
// content fields and the preserved child map.
func FillMeta(meta *FeedMeta, node *tree.Node, o Options) {
	if !o.Normalize {
		for _, key := range node.Children.Keys() {
			v, _ := node.Children.Get(key)
			meta.Extra.Set(key, v)
		}
		return
	}

	baseActive := o.BaseActive
	var cats []string

	for _, key := range node.Children.Keys() {
		el, _ := node.Children.Get(key)

		switch key {
		case "title":
			meta.Title = tree.TextOf(el)
		case "description", "subtitle":
			meta.Description = tree.TextOf(el)
		case "pubdate", "published":
			if d := ParseDate(tree.TextOf(el)); d != nil {
				meta.PubDate = d
				if meta.Date == nil {
					meta.Date = d
				}
			}
		case "lastbuilddate", "modified", "updated", "dc:date":
			if d := ParseDate(tree.TextOf(el)); d != nil {
				meta.Date = d
				if meta.PubDate == nil {
					meta.PubDate = d
				}
			}
		case "link", "atom:link", "atom10:link":
			tree.Each(el, func(v tree.Value) {
				href := tree.AttrOf(v, "href")
				if href == "" {
					// RSS link: bare text.
					if meta.Link == "" {
						meta.Link = tree.TextOf(v)
					}
					return
				}
				switch tree.AttrOf(v, "rel") {
				case "", "alternate":
					if meta.Link == "" {
						meta.Link = href
					}
				case "self":
					meta.XMLURL = href
					if !baseActive && o.OnSelfURL != nil && o.OnSelfURL(href) {
						baseActive = true
						tree.Reresolve(node, href)
					}
				}
			})
		case "managingeditor", "webmaster":
			if meta.Author == "" {
				meta.Author = tree.TextOf(el)
			}
		case "author":
			meta.Author = personName(el)
		case "language":
			meta.Language = tree.TextOf(el)
		case "image", "logo":
			if u := tree.ChildText(el, "url"); u != "" {
				meta.Image.URL = u
			} else {
				meta.Image.URL = tree.TextOf(el)
			}
			if t := tree.ChildText(el, "title"); t != "" {
				meta.Image.Title = t
			}
		case "icon":
			meta.Favicon = tree.TextOf(el)
		case "copyright", "rights", "dc:rights":
			meta.Copyright = tree.TextOf(el)
		case "generator":
			meta.Generator = tree.TextOf(el)
			if v := tree.AttrOf(el, "version"); v != "" {
				meta.Generator += " v" + v
			}
			if u := tree.AttrOf(el, "uri"); u != "" {
				meta.Generator += " (" + u + ")"
			}
		case "category", "dc:subject", "itunes:category", "media:category":
			cats = collectCategories(cats, key, el)
		}
	}

	metaFallbacks(meta, node)
	meta.Categories = Dedup(cats)

	for _, key := range node.Children.Keys() {
		if strings.HasPrefix(key, "#") {
			continue
		}
		v, _ := node.Children.Get(key)
		if strings.Contains(key, ":") {
			meta.Extra.Set(key, v)
		} else {
			meta.Extra.Set(meta.Type+":"+key, v)
		}
	}
}

// metaFallbacks fills fields still unset from the secondary namespaces.
func metaFallbacks(meta *FeedMeta, node *tree.Node) {
	if meta.Description == "" {
		if s := childTextOf(node, "itunes:summary"); s != "" {
			meta.Description = s
		} else if s := childTextOf(node, "tagline"); s != "" {
			meta.Description = s
		}
	}

	if meta.Author == "" {
		if s := childTextOf(node, "itunes:author"); s != "" {
			meta.Author = s
		} else if owner, ok := node.Children.Get("itunes:owner"); ok {
			meta.Author = tree.ChildText(owner, "itunes:name")
		}
		if meta.Author == "" {
			if s := childTextOf(node, "dc:creator"); s != "" {
				meta.Author = s
			} else if s := childTextOf(node, "dc:publisher"); s != "" {
				meta.Author = s
			}
		}
	}

	if meta.Language == "" {
		if s := node.Attr("xml:lang"); s != "" {
			meta.Language = s
		} else {
			meta.Language = childTextOf(node, "dc:language")
		}
	}

	if meta.Image.URL == "" {
		if v, ok := node.Children.Get("itunes:image"); ok {
			meta.Image.URL = tree.AttrOf(v, "href")
		}
		if meta.Image.URL == "" {
			if v, ok := node.Children.Get("media:thumbnail"); ok {
				meta.Image.URL = tree.AttrOf(v, "url")
			}
		}
	}

	if meta.Copyright == "" {
		if s := childTextOf(node, "media:copyright"); s != "" {
			meta.Copyright = s
		} else if s := childTextOf(node, "dc:rights"); s != "" {
			meta.Copyright = s
		} else if s := childTextOf(node, "creativecommons:license"); s != "" {
			meta.Copyright = s
		} else if v, ok := node.Children.Get("cc:license"); ok {
			meta.Copyright = resourceAttr(v)
		}
	}

	if meta.Generator == "" {
		if v, ok := node.Children.Get("admin:generatoragent"); ok {
			meta.Generator = resourceAttr(v)
		}
	}
}
