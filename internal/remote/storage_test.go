package remote

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUploadAndPublicURL(t *testing.T) {
	var gotPath, gotType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	url, err := client.Upload(context.Background(), BucketImages, "abc123.jpg", "image/jpeg", []byte("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if gotPath != "/storage/v1/object/event-images/abc123.jpg" {
		t.Fatalf("unexpected upload path %q", gotPath)
	}
	if gotType != "image/jpeg" {
		t.Fatalf("unexpected content type %q", gotType)
	}
	if string(gotBody) != "jpeg-bytes" {
		t.Fatalf("unexpected upload body %q", gotBody)
	}

	want := server.URL + "/storage/v1/object/public/event-images/abc123.jpg"
	if url != want {
		t.Fatalf("expected public URL %q, got %q", want, url)
	}
}

func TestRemove(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	if err := client.Remove(context.Background(), BucketThumbnails, "abc123.jpg"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/storage/v1/object/event-thumbnails/abc123.jpg" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestObjectName(t *testing.T) {
	client := NewClient("https://backend.example.com", "secret-key")

	name, ok := client.ObjectName(BucketImages, "https://backend.example.com/storage/v1/object/public/event-images/abc.jpg")
	if !ok || name != "abc.jpg" {
		t.Fatalf("expected abc.jpg, got %q ok=%v", name, ok)
	}

	if _, ok := client.ObjectName(BucketThumbnails, "https://backend.example.com/storage/v1/object/public/event-images/abc.jpg"); ok {
		t.Fatalf("expected mismatched bucket to fail")
	}
	if _, ok := client.ObjectName(BucketImages, "https://elsewhere.example.com/storage/v1/object/public/event-images/abc.jpg"); ok {
		t.Fatalf("expected foreign host to fail")
	}
	if _, ok := client.ObjectName(BucketImages, ""); ok {
		t.Fatalf("expected empty URL to fail")
	}
}
