// Package remote is the HTTP client for the hosted backend: a PostgREST-style
// table API for event records and a companion object-storage API for image
// blobs. The package distinguishes "not configured" (no endpoint/credentials)
// from "request failed" so the store facade can branch on the two conditions.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/example/glass-calendar/internal/calendar"
	"github.com/example/glass-calendar/internal/event"
)

const eventsTable = "events"

// Client talks to the remote table and storage APIs.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option tweaks client construction.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a client for the given endpoint. Returns nil (meaning
// unconfigured) when either the URL or the key is absent; callers branch on
// that explicitly rather than on a stub implementation.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	apiKey = strings.TrimSpace(apiKey)
	if baseURL == "" || apiKey == "" {
		return nil
	}
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// QueryRange fetches events whose date lies inside the window, ordered by
// date then start time ascending.
func (c *Client) QueryRange(ctx context.Context, window calendar.Window) ([]event.Event, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	query := url.Values{}
	query.Set("select", "*")
	query.Add("date", "gte."+window.Start.Format(event.DateLayout))
	query.Add("date", "lte."+window.End.Format(event.DateLayout))
	query.Set("order", "date.asc,start_time.asc")

	req, err := c.newRequest(ctx, http.MethodGet, c.tableURL(query), nil)
	if err != nil {
		return nil, err
	}

	var events []event.Event
	if err := c.do(req, "query events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Insert creates a record from the draft and returns the stored
// representation with its server-assigned id and timestamps.
func (c *Client) Insert(ctx context.Context, draft event.Draft, image *ImageRecord) (event.Event, error) {
	if c == nil {
		return event.Event{}, ErrNotConfigured
	}

	payload := insertPayload{Draft: draft}
	if image != nil {
		payload.ImageURL = &image.URL
		payload.ThumbnailURL = &image.ThumbnailURL
		payload.ImageFilename = &image.Filename
	}

	body, err := json.Marshal([]insertPayload{payload})
	if err != nil {
		return event.Event{}, &RequestError{Operation: "insert event", Message: err.Error(), Err: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.tableURL(nil), bytes.NewReader(body))
	if err != nil {
		return event.Event{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	var inserted []event.Event
	if err := c.do(req, "insert event", &inserted); err != nil {
		return event.Event{}, err
	}
	if len(inserted) != 1 {
		return event.Event{}, &RequestError{Operation: "insert event", Message: "backend returned no representation"}
	}
	return inserted[0], nil
}

// Update applies a partial patch to the record with the given id and returns
// the stored representation.
func (c *Client) Update(ctx context.Context, id string, patch event.Patch) (event.Event, error) {
	if c == nil {
		return event.Event{}, ErrNotConfigured
	}

	body, err := json.Marshal(patch)
	if err != nil {
		return event.Event{}, &RequestError{Operation: "update event", Message: err.Error(), Err: err}
	}

	query := url.Values{}
	query.Set("id", "eq."+id)
	req, err := c.newRequest(ctx, http.MethodPatch, c.tableURL(query), bytes.NewReader(body))
	if err != nil {
		return event.Event{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	var updated []event.Event
	if err := c.do(req, "update event", &updated); err != nil {
		return event.Event{}, err
	}
	if len(updated) != 1 {
		return event.Event{}, &RequestError{Operation: "update event", Status: http.StatusNotFound, Message: "no record matched id " + id}
	}
	return updated[0], nil
}

// Delete removes the record with the given id. Deleting an absent id is not
// an error at this layer; the table API treats it as a no-op.
func (c *Client) Delete(ctx context.Context, id string) error {
	if c == nil {
		return ErrNotConfigured
	}

	query := url.Values{}
	query.Set("id", "eq."+id)
	req, err := c.newRequest(ctx, http.MethodDelete, c.tableURL(query), nil)
	if err != nil {
		return err
	}
	return c.do(req, "delete event", nil)
}

func (c *Client) tableURL(query url.Values) string {
	u := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, eventsTable)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &RequestError{Operation: "build request", Message: err.Error(), Err: err}
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}

// do executes the request, treats any 2xx status as success, and decodes a
// JSON body into out when provided.
func (c *Client) do(req *http.Request, operation string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Operation: operation, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{
			Operation: operation,
			Status:    resp.StatusCode,
			Message:   readErrorBody(resp.Body),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Operation: operation, Message: "malformed response body: " + err.Error(), Err: err}
	}
	return nil
}

func readErrorBody(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no error detail"
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(raw))
}

type insertPayload struct {
	event.Draft
	ImageURL      *string `json:"image_url,omitempty"`
	ThumbnailURL  *string `json:"thumbnail_url,omitempty"`
	ImageFilename *string `json:"image_filename,omitempty"`
}
