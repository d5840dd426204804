package tree

import "testing"

func TestMapPromotion(t *testing.T) {
	var m Map

	m.Add("category", Text("news"))
	if v, _ := m.Get("category"); v != Text("news") {
		t.Fatalf("Expected single Text value, got %#v", v)
	}

	m.Add("category", Text("tech"))
	v, _ := m.Get("category")
	list, ok := v.(List)
	if !ok {
		t.Fatalf("Expected List after duplicate insert, got %#v", v)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(list))
	}

	m.Add("category", Text("sports"))
	v, _ = m.Get("category")
	if list, _ := v.(List); len(list) != 3 {
		t.Errorf("Expected 3 entries after third insert, got %#v", v)
	}

	if keys := m.Keys(); len(keys) != 1 || keys[0] != "category" {
		t.Errorf("Expected single key 'category', got %v", keys)
	}
}

func TestMapOrder(t *testing.T) {
	var m Map
	m.Add("title", Text("A"))
	m.Add("link", Text("http://x/"))
	m.Add("description", Text("d"))

	want := []string{"title", "link", "description"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Key %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTextOf(t *testing.T) {
	if got := TextOf(Text("hello")); got != "hello" {
		t.Errorf("TextOf(Text) = %q", got)
	}

	n := &Node{Text: "node text"}
	if got := TextOf(n); got != "node text" {
		t.Errorf("TextOf(*Node) = %q", got)
	}

	if got := TextOf(List{Text("first"), Text("second")}); got != "first" {
		t.Errorf("TextOf(List) = %q", got)
	}

	if got := TextOf(nil); got != "" {
		t.Errorf("TextOf(nil) = %q", got)
	}
}

func TestAttrOf(t *testing.T) {
	n := &Node{}
	n.SetAttr("url", "http://x/img.png")

	if got := AttrOf(n, "url"); got != "http://x/img.png" {
		t.Errorf("AttrOf = %q", got)
	}
	if got := AttrOf(n, "rdf:resource", "url"); got != "http://x/img.png" {
		t.Errorf("AttrOf with fallback names = %q", got)
	}
	if got := AttrOf(List{n}, "url"); got != "http://x/img.png" {
		t.Errorf("AttrOf over List = %q", got)
	}
	if got := AttrOf(Text("x"), "url"); got != "" {
		t.Errorf("AttrOf over Text = %q", got)
	}
}

func TestReresolve(t *testing.T) {
	link := &Node{Local: "link"}
	link.SetAttr("href", "a")
	link.SetAttr("rel", "alternate")

	logo := &Node{Local: "logo", URI: "http://www.w3.org/2005/Atom", Text: "img/logo.png"}

	root := &Node{Local: "feed"}
	root.Children.Add("link", link)
	root.Children.Add("logo", logo)

	Reresolve(root, "http://example.com/")

	if got := link.Attr("href"); got != "http://example.com/a" {
		t.Errorf("Expected resolved href, got %q", got)
	}
	if got := link.Attr("rel"); got != "alternate" {
		t.Errorf("rel attribute should be untouched, got %q", got)
	}
	if logo.Text != "http://example.com/img/logo.png" {
		t.Errorf("Expected resolved logo text, got %q", logo.Text)
	}
}
