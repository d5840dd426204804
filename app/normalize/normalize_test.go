package normalize

import (
	"testing"
	"time"

	"github.com/lazutkin/feedwire/app/tree"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"Mon, 01 Jan 2024 00:00:00 GMT", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2023-07-03T12:00:00Z", time.Date(2023, 7, 3, 12, 0, 0, 0, time.UTC)},
		{"2023-07-03T12:00:00+02:00", time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		got := ParseDate(c.in)
		if got == nil {
			t.Errorf("ParseDate(%q) = nil", c.in)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if ParseDate("") != nil {
		t.Error("Expected nil for empty input")
	}
	if ParseDate("not a date") != nil {
		t.Error("Expected nil for garbage input")
	}
}

func TestDedup(t *testing.T) {
	got := Dedup([]string{"news", "tech", "news", "Tech"})
	want := []string{"news", "tech", "Tech"}
	if len(got) != len(want) {
		t.Fatalf("Dedup = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dedup[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPersonName(t *testing.T) {
	author := &tree.Node{Local: "author"}
	author.Children.Add("name", tree.Text("Alice"))
	author.Children.Add("email", tree.Text("a@example.com"))
	if got := personName(author); got != "Alice" {
		t.Errorf("personName = %q, want Alice", got)
	}

	emailOnly := &tree.Node{Local: "author"}
	emailOnly.Children.Add("email", tree.Text("a@example.com"))
	if got := personName(emailOnly); got != "a@example.com" {
		t.Errorf("personName = %q, want email", got)
	}

	if got := personName(tree.Text("bare@example.com (Bare)")); got != "bare@example.com (Bare)" {
		t.Errorf("personName = %q, want bare text", got)
	}
}

func TestCollectCategoriesDCSubject(t *testing.T) {
	got := collectCategories(nil, "dc:subject", tree.Text("go parsing feeds"))
	want := []string{"go", "parsing", "feeds"}
	if len(got) != len(want) {
		t.Fatalf("collectCategories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCollectCategoriesAtomTerm(t *testing.T) {
	cat := &tree.Node{Local: "category"}
	cat.SetAttr("term", "golang")
	got := collectCategories(nil, "category", cat)
	if len(got) != 1 || got[0] != "golang" {
		t.Errorf("collectCategories = %v, want [golang]", got)
	}
}

func TestFillMetaFallbacks(t *testing.T) {
	node := &tree.Node{Local: "channel"}
	node.Children.Add("title", tree.Text("T"))
	node.Children.Add("itunes:summary", tree.Text("a podcast"))
	node.Children.Add("itunes:author", tree.Text("Alice"))

	img := &tree.Node{Local: "image", Prefix: "itunes"}
	img.SetAttr("href", "http://x/cover.jpg")
	node.Children.Add("itunes:image", img)

	meta := &FeedMeta{Type: "rss"}
	FillMeta(meta, node, Options{Normalize: true})

	if meta.Description != "a podcast" {
		t.Errorf("Expected itunes:summary fallback, got: %s", meta.Description)
	}
	if meta.Author != "Alice" {
		t.Errorf("Expected itunes:author fallback, got: %s", meta.Author)
	}
	if meta.Image.URL != "http://x/cover.jpg" {
		t.Errorf("Expected itunes:image fallback, got: %s", meta.Image.URL)
	}
	if _, ok := meta.Extra.Get("rss:title"); !ok {
		t.Error("Expected title retained under rss:title")
	}
}

func TestItemSummaryAndContent(t *testing.T) {
	node := &tree.Node{Local: "item"}
	node.Children.Add("title", tree.Text("T"))
	node.Children.Add("description", tree.Text("short"))
	node.Children.Add("content:encoded", tree.Text("full"))

	a := Item(node, "rss", Options{Normalize: true})
	if a.Summary != "short" {
		t.Errorf("Expected summary 'short', got: %s", a.Summary)
	}
	if a.Description != "full" {
		t.Errorf("Expected description 'full', got: %s", a.Description)
	}
}

func TestItemSourceRSS(t *testing.T) {
	src := &tree.Node{Local: "source", Text: "Upstream"}
	src.SetAttr("url", "http://up/feed.xml")

	node := &tree.Node{Local: "item"}
	node.Children.Add("source", src)

	a := Item(node, "rss", Options{Normalize: true})
	if a.Source.Title != "Upstream" || a.Source.URL != "http://up/feed.xml" {
		t.Errorf("Unexpected source: %+v", a.Source)
	}
}
