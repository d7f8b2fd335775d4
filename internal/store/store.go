// Package store implements the data-access facade over events. Reads try the
// remote backend first and transparently substitute the fallback dataset when
// it is unconfigured or unreachable; writes require a configured backend and
// propagate failures. The facade owns the in-memory event cache and notifies
// observers after every cache change, so UI binding is a thin adapter.
package store

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/example/glass-calendar/internal/calendar"
	"github.com/example/glass-calendar/internal/event"
	"github.com/example/glass-calendar/internal/logging"
	"github.com/example/glass-calendar/internal/remote"
)

// Backend is the explicit remote-or-unconfigured variant the facade branches
// on. A nil Remote means the backend is not configured; no stub client stands
// in for the real one.
type Backend struct {
	Remote *remote.Client
}

// Configured reports whether a reachable endpoint and credentials were
// supplied.
func (b Backend) Configured() bool {
	return b.Remote != nil
}

// FallbackSource is the read-only sample dataset consulted when the backend
// cannot serve a read.
type FallbackSource interface {
	QueryRange(ctx context.Context, window calendar.Window) ([]event.Event, error)
}

// ImageAttachment carries the derived blobs of an uploaded image, produced by
// the image pipeline before Create is called.
type ImageAttachment struct {
	Filename    string
	ContentType string
	Compressed  []byte
	Thumbnail   []byte
}

// Snapshot is the synchronous view of the facade's state handed to observers
// and getters.
type Snapshot struct {
	Events        []event.Event
	UsingFallback bool
	Configured    bool
}

// Observer receives a snapshot after every cache change.
type Observer func(Snapshot)

// Store is the facade. All exported methods are safe for concurrent use; the
// cache is only mutated in response to completed operations.
type Store struct {
	backend   Backend
	fallback  FallbackSource
	organizer string
	logger    *slog.Logger
	now       func() time.Time

	mu            sync.Mutex
	cache         []event.Event
	usingFallback bool
	observers     []Observer
}

// New wires the facade. organizer is the caller-supplied identity applied to
// drafts that omit one; logger and now fall back to sensible defaults.
func New(backend Backend, fallback FallbackSource, organizer string, logger *slog.Logger, now func() time.Time) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Store{
		backend:   backend,
		fallback:  fallback,
		organizer: organizer,
		logger:    logger,
		now:       now,
	}
}

// Configured reports whether mutating operations can succeed.
func (s *Store) Configured() bool {
	return s.backend.Configured()
}

// Subscribe registers an observer for cache changes. Observers run after the
// mutation completes, outside the facade's lock.
func (s *Store) Subscribe(fn Observer) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Snapshot returns a copy of the current cache state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Fetch loads events for the window, preferring the remote backend and
// serving the fallback dataset when the backend is unconfigured or the query
// fails. The caller never sees a hard failure for reads; the returned
// snapshot's UsingFallback flag records which source served it. The cache is
// replaced wholesale with the result.
func (s *Store) Fetch(ctx context.Context, window calendar.Window) Snapshot {
	logger := s.log(ctx)

	var (
		events        []event.Event
		usingFallback bool
	)

	if !s.backend.Configured() {
		logger.WarnContext(ctx, "backend not configured, serving fallback data")
		events = s.fetchFallback(ctx, window)
		usingFallback = true
	} else {
		remoteEvents, err := s.backend.Remote.QueryRange(ctx, window)
		if err != nil {
			logger.WarnContext(ctx, "remote query failed, serving fallback data", "error", err)
			events = s.fetchFallback(ctx, window)
			usingFallback = true
		} else {
			events = remoteEvents
		}
	}

	s.mu.Lock()
	s.cache = events
	s.usingFallback = usingFallback
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return snap
}

// Create validates the draft, uploads any image blobs, inserts the record and
// appends it to the cache, which is then re-sorted by (date, start_time).
// With no configured backend it fails immediately and leaves the cache
// untouched.
func (s *Store) Create(ctx context.Context, draft event.Draft, attachment *ImageAttachment) (event.Event, error) {
	if !s.backend.Configured() {
		return event.Event{}, fmt.Errorf("cannot create events: %w", ErrNotConfigured)
	}

	draft.Normalize(s.organizer)
	if err := draft.Validate(); err != nil {
		return event.Event{}, err
	}

	var image *remote.ImageRecord
	if attachment != nil {
		uploaded, err := s.uploadAttachment(ctx, attachment)
		if err != nil {
			return event.Event{}, err
		}
		image = uploaded
	}

	created, err := s.backend.Remote.Insert(ctx, draft, image)
	if err != nil {
		return event.Event{}, err
	}

	s.mu.Lock()
	s.cache = append(s.cache, created.Clone())
	event.Sort(s.cache)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return created, nil
}

// Update applies a partial patch to the event and replaces the matching cache
// entry in place. The cache is not re-sorted: patches are assumed not to
// change the ordering keys. This mirrors the historical behavior and is not
// enforced; see DESIGN.md.
func (s *Store) Update(ctx context.Context, id string, patch event.Patch) (event.Event, error) {
	if !s.backend.Configured() {
		return event.Event{}, fmt.Errorf("cannot update events: %w", ErrNotConfigured)
	}

	if err := patch.Validate(); err != nil {
		return event.Event{}, err
	}

	patch.UpdatedAt = s.now().UTC()
	updated, err := s.backend.Remote.Update(ctx, id, patch)
	if err != nil {
		return event.Event{}, mapRemoteError(err)
	}

	s.mu.Lock()
	for i := range s.cache {
		if s.cache[i].ID == id {
			s.cache[i] = updated.Clone()
			break
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return updated, nil
}

// Delete removes the record first, then best-effort removes its blobs. Blob
// removal failures are logged and swallowed; an orphaned blob is a lesser
// failure than a stuck delete.
func (s *Store) Delete(ctx context.Context, id string) error {
	if !s.backend.Configured() {
		return fmt.Errorf("cannot delete events: %w", ErrNotConfigured)
	}

	s.mu.Lock()
	var doomed *event.Event
	for i := range s.cache {
		if s.cache[i].ID == id {
			clone := s.cache[i].Clone()
			doomed = &clone
			break
		}
	}
	s.mu.Unlock()

	if err := s.backend.Remote.Delete(ctx, id); err != nil {
		return mapRemoteError(err)
	}

	if doomed != nil && doomed.HasImage() {
		s.removeBlobs(ctx, *doomed)
	}

	s.mu.Lock()
	filtered := s.cache[:0]
	for _, e := range s.cache {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	s.cache = filtered
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// uploadAttachment stores the compressed image and its thumbnail as two
// independent blobs. Both uploads run concurrently and both must succeed; on
// failure any blob that did land is best-effort removed so no dangling
// reference survives.
func (s *Store) uploadAttachment(ctx context.Context, attachment *ImageAttachment) (*remote.ImageRecord, error) {
	name := objectName(attachment.Compressed)

	var (
		imageURL string
		thumbURL string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := s.backend.Remote.Upload(gctx, remote.BucketImages, name, attachment.ContentType, attachment.Compressed)
		if err != nil {
			return err
		}
		imageURL = url
		return nil
	})
	g.Go(func() error {
		url, err := s.backend.Remote.Upload(gctx, remote.BucketThumbnails, name, attachment.ContentType, attachment.Thumbnail)
		if err != nil {
			return err
		}
		thumbURL = url
		return nil
	})

	if err := g.Wait(); err != nil {
		logger := s.log(ctx)
		for _, bucket := range []string{remote.BucketImages, remote.BucketThumbnails} {
			if rmErr := s.backend.Remote.Remove(ctx, bucket, name); rmErr != nil {
				logger.WarnContext(ctx, "failed to clean up blob after aborted create",
					"bucket", bucket, "name", name, "error", rmErr)
			}
		}
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	return &remote.ImageRecord{
		URL:          imageURL,
		ThumbnailURL: thumbURL,
		Filename:     attachment.Filename,
	}, nil
}

func (s *Store) removeBlobs(ctx context.Context, e event.Event) {
	logger := s.log(ctx)
	targets := []struct {
		bucket string
		url    *string
	}{
		{remote.BucketImages, e.ImageURL},
		{remote.BucketThumbnails, e.ThumbnailURL},
	}
	for _, target := range targets {
		if target.url == nil {
			continue
		}
		name, ok := s.backend.Remote.ObjectName(target.bucket, *target.url)
		if !ok {
			logger.WarnContext(ctx, "skipping blob removal for foreign URL",
				"event_id", e.ID, "bucket", target.bucket)
			continue
		}
		if err := s.backend.Remote.Remove(ctx, target.bucket, name); err != nil {
			logger.WarnContext(ctx, "failed to remove event blob",
				"event_id", e.ID, "bucket", target.bucket, "name", name, "error", err)
		}
	}
}

func (s *Store) fetchFallback(ctx context.Context, window calendar.Window) []event.Event {
	if s.fallback == nil {
		return nil
	}
	events, err := s.fallback.QueryRange(ctx, window)
	if err != nil {
		// The fallback dataset is in-process; a failure here still must not
		// surface as a read error.
		s.log(ctx).ErrorContext(ctx, "fallback query failed", "error", err)
		return nil
	}
	return events
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Events:        event.CloneAll(s.cache),
		UsingFallback: s.usingFallback,
		Configured:    s.backend.Configured(),
	}
}

func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()
	for _, fn := range observers {
		fn(snap)
	}
}

func (s *Store) log(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}
	return s.logger
}

// objectName derives a content-addressed blob name so re-uploads of identical
// bytes collide harmlessly. The same name keys both buckets.
func objectName(data []byte) string {
	digest := blake2b.Sum256(data)
	return hex.EncodeToString(digest[:12]) + ".jpg"
}

func mapRemoteError(err error) error {
	if err == nil {
		return nil
	}
	var reqErr *remote.RequestError
	if errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
