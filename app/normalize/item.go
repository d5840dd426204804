package normalize

import (
	"strings"

	"github.com/lazutkin/feedwire/app/tree"
)

// Item maps an item/entry subtree onto an Article. feedType is the
// dialect of the owning feed, used to rekey unprefixed extension
// elements.
func Item(node *tree.Node, feedType string, o Options) *Article {
	a := &Article{}

	if !o.Normalize {
		for _, key := range node.Children.Keys() {
			v, _ := node.Children.Get(key)
			a.Extra.Set(key, v)
		}
		return a
	}

	var cats []string

	for _, key := range node.Children.Keys() {
		el, _ := node.Children.Get(key)

		switch key {
		case "title":
			a.Title = tree.TextOf(el)
		case "description", "summary":
			a.Summary = tree.TextOf(el)
			if a.Description == "" {
				a.Description = a.Summary
			}
		case "content", "content:encoded", "xhtml:body":
			a.Description = tree.TextOf(el)
		case "pubdate", "published", "issued":
			if d := ParseDate(tree.TextOf(el)); d != nil {
				a.PubDate = d
				if a.Date == nil {
					a.Date = d
				}
			}
		case "modified", "updated", "dc:date":
			if d := ParseDate(tree.TextOf(el)); d != nil {
				a.Date = d
				if a.PubDate == nil {
					a.PubDate = d
				}
			}
		case "link", "atom:link", "atom10:link":
			tree.Each(el, func(v tree.Value) {
				href := tree.AttrOf(v, "href")
				if href == "" {
					if a.Link == "" {
						a.Link = tree.TextOf(v)
					}
					return
				}
				switch tree.AttrOf(v, "rel") {
				case "", "alternate":
					if a.Link == "" {
						a.Link = href
					}
				case "canonical":
					a.OrigLink = href
				case "replies":
					if a.Comments == "" {
						a.Comments = href
					}
				case "enclosure":
					a.addEnclosure(Enclosure{
						URL:    href,
						Type:   tree.AttrOf(v, "type"),
						Length: tree.AttrOf(v, "length"),
					})
				}
			})
			if a.GUID == "" {
				a.GUID = a.Link
			}
		case "guid", "id":
			a.GUID = tree.TextOf(el)
		case "author":
			a.Author = personName(el)
		case "dc:creator":
			a.Author = tree.TextOf(el)
		case "comments":
			a.Comments = tree.TextOf(el)
		case "source":
			if t, ok := tree.ChildOf(el, "title"); ok {
				// Atom source: title and link children.
				a.Source.Title = tree.TextOf(t)
				if l, ok := tree.ChildOf(el, "link"); ok {
					a.Source.URL = tree.AttrOf(l, "href")
				}
			} else {
				a.Source.Title = tree.TextOf(el)
				a.Source.URL = tree.AttrOf(el, "url")
			}
		case "enclosure", "media:content":
			tree.Each(el, func(v tree.Value) {
				u := tree.AttrOf(v, "url")
				if u == "" {
					return
				}
				a.addEnclosure(Enclosure{
					URL:    u,
					Type:   tree.AttrOf(v, "type", "medium"),
					Length: tree.AttrOf(v, "length", "filesize"),
				})
			})
		case "category", "dc:subject", "itunes:category", "media:category":
			cats = collectCategories(cats, key, el)
		case "feedburner:origlink", "pheedo:origlink":
			if a.OrigLink == "" {
				a.OrigLink = tree.TextOf(el)
			}
		}
	}

	itemFallbacks(a, node)
	a.Categories = Dedup(cats)

	for _, key := range node.Children.Keys() {
		if strings.HasPrefix(key, "#") {
			continue
		}
		v, _ := node.Children.Get(key)
		if strings.Contains(key, ":") {
			a.Extra.Set(key, v)
		} else {
			a.Extra.Set(feedType+":"+key, v)
		}
	}

	return a
}

// addEnclosure appends e unless an enclosure with the same URL exists.
func (a *Article) addEnclosure(e Enclosure) {
	for _, have := range a.Enclosures {
		if have.URL == e.URL {
			return
		}
	}
	a.Enclosures = append(a.Enclosures, e)
}

func itemFallbacks(a *Article, node *tree.Node) {
	if a.Description == "" {
		a.Description = childTextOf(node, "itunes:summary")
	}

	if a.Author == "" {
		if s := childTextOf(node, "itunes:author"); s != "" {
			a.Author = s
		} else if owner, ok := node.Children.Get("itunes:owner"); ok {
			a.Author = tree.ChildText(owner, "itunes:name")
		}
		if a.Author == "" {
			a.Author = childTextOf(node, "dc:publisher")
		}
	}

	if a.Image.URL == "" {
		a.Image.URL = itemImageURL(node)
	}
}

// itemImageURL probes the iTunes and Media RSS spellings for an
// article thumbnail, outermost first.
func itemImageURL(node *tree.Node) string {
	if v, ok := node.Children.Get("itunes:image"); ok {
		if u := tree.AttrOf(v, "href"); u != "" {
			return u
		}
	}
	if v, ok := node.Children.Get("media:thumbnail"); ok {
		if u := tree.AttrOf(v, "url"); u != "" {
			return u
		}
	}
	if v, ok := node.Children.Get("media:content"); ok {
		if t, ok := tree.ChildOf(v, "media:thumbnail"); ok {
			if u := tree.AttrOf(t, "url"); u != "" {
				return u
			}
		}
	}
	if group, ok := node.Children.Get("media:group"); ok {
		if t, ok := tree.ChildOf(group, "media:thumbnail"); ok {
			if u := tree.AttrOf(t, "url"); u != "" {
				return u
			}
		}
		if c, ok := tree.ChildOf(group, "media:content"); ok {
			if t, ok := tree.ChildOf(c, "media:thumbnail"); ok {
				if u := tree.AttrOf(t, "url"); u != "" {
					return u
				}
			}
		}
	}
	return ""
}
