package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOpenURL(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<rss/>"))
	}))
	defer server.Close()

	c := NewClient("feedwire-test/1.0", 5*time.Second)
	body, err := c.Open(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "<rss/>" {
		t.Errorf("Unexpected body: %s", data)
	}
	if gotUA != "feedwire-test/1.0" {
		t.Errorf("Expected custom User-Agent, got: %s", gotUA)
	}
}

func TestOpenURLBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient("feedwire-test/1.0", 5*time.Second)
	if _, err := c.Open(context.Background(), server.URL); err == nil {
		t.Fatal("Expected error for 404 response")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.xml")
	if err := os.WriteFile(path, []byte("<rss/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewClient("feedwire-test/1.0", 5*time.Second)
	body, err := c.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	defer body.Close()

	data, _ := io.ReadAll(body)
	if string(data) != "<rss/>" {
		t.Errorf("Unexpected file contents: %s", data)
	}
}
