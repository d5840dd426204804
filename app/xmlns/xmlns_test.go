package xmlns

import "testing"

func TestCanonicalPrefix(t *testing.T) {
	cases := []struct {
		uri  string
		want string
	}{
		{"http://www.w3.org/2005/Atom", "atom"},
		{"http://www.w3.org/2005/Atom/", "atom"},
		{"HTTP://WWW.W3.ORG/2005/ATOM", "atom"},
		{"http://purl.org/atom/ns#", "atom"},
		{"http://www.w3.org/1999/02/22-rdf-syntax-ns#", "rdf"},
		{"http://purl.org/rss/1.0/", "rss"},
		{"http://purl.org/rss/1.0", "rss"},
		{"http://purl.org/dc/elements/1.1/", "dc"},
		{"http://www.itunes.com/dtds/podcast-1.0.dtd", "itunes"},
		{"http://search.yahoo.com/mrss/", "media"},
		{"http://search.yahoo.com/mrss", "media"},
		{"http://webns.net/mvcb/", "admin"},
		{"http://rssnamespace.org/feedburner/ext/1.0", "feedburner"},
		{"http://example.com/unknown", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := CanonicalPrefix(c.uri); got != c.want {
			t.Errorf("CanonicalPrefix(%q) = %q, want %q", c.uri, got, c.want)
		}
	}
}

func TestBelongsTo(t *testing.T) {
	if !BelongsTo("http://www.w3.org/2005/Atom", "atom") {
		t.Error("Expected Atom namespace to belong to atom")
	}
	if BelongsTo("http://www.w3.org/2005/Atom", "rss") {
		t.Error("Atom namespace should not belong to rss")
	}
	if !BelongsTo("http://www.w3.org/XML/1998/namespace", "xml") {
		t.Error("Expected XML namespace to belong to xml")
	}
	if !BelongsTo("xml", "xml") {
		t.Error("Expected literal xml prefix to belong to xml")
	}
	if BelongsTo("http://example.com/unknown", "") {
		t.Error("Empty prefix should never match")
	}
}

func TestIsAtom03(t *testing.T) {
	if !IsAtom03("http://purl.org/atom/ns#") {
		t.Error("Expected Atom 0.3 namespace to be detected")
	}
	if IsAtom03("http://www.w3.org/2005/Atom") {
		t.Error("Atom 1.0 namespace is not Atom 0.3")
	}
}
