package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/glass-calendar/internal/event"
)

var eventCounter uint64

var referenceTime = time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures. It
// falls inside the demo week the fallback dataset is seeded around.
func ReferenceTime() time.Time {
	return referenceTime
}

// EventOption configures the generated event fixture.
type EventOption func(*event.Event)

// NewEvent returns a deterministic calendar event with optional overrides.
// Successive calls land on the same date one hour apart so a handful of
// fixtures naturally share a day without colliding on start time.
func NewEvent(opts ...EventOption) event.Event {
	idx := atomic.AddUint64(&eventCounter, 1)
	start := 9 + int(idx%8)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	fixture := event.Event{
		ID:          fmt.Sprintf("event-%03d", idx),
		Title:       fmt.Sprintf("Event %03d", idx),
		Description: fmt.Sprintf("Description for event %03d", idx),
		Date:        referenceTime.Format("2006-01-02"),
		StartTime:   fmt.Sprintf("%02d:00", start),
		EndTime:     fmt.Sprintf("%02d:00", start+1),
		Location:    "Conference Room",
		Color:       event.DefaultColor,
		Organizer:   "You",
		Attendees:   []string{"Alice", "Bob"},
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithID overrides the event identifier.
func WithID(id string) EventOption {
	return func(e *event.Event) { e.ID = id }
}

// WithTitle overrides the event title.
func WithTitle(title string) EventOption {
	return func(e *event.Event) { e.Title = title }
}

// WithDate overrides the event date (YYYY-MM-DD).
func WithDate(date string) EventOption {
	return func(e *event.Event) { e.Date = date }
}

// WithTimes overrides the start and end clock values (HH:MM).
func WithTimes(start, end string) EventOption {
	return func(e *event.Event) {
		e.StartTime = start
		e.EndTime = end
	}
}

// WithColor overrides the palette token.
func WithColor(color string) EventOption {
	return func(e *event.Event) { e.Color = color }
}

// WithOrganizer overrides the organizer.
func WithOrganizer(organizer string) EventOption {
	return func(e *event.Event) { e.Organizer = organizer }
}

// WithAttendees replaces the attendee list.
func WithAttendees(attendees ...string) EventOption {
	return func(e *event.Event) { e.Attendees = attendees }
}

// WithImage attaches image URLs and the stored filename.
func WithImage(url, thumbnailURL, filename string) EventOption {
	return func(e *event.Event) {
		e.ImageURL = &url
		e.ThumbnailURL = &thumbnailURL
		e.ImageFilename = &filename
	}
}

// ResetEventCounter rewinds the fixture sequence so tests that assert on
// generated identifiers stay deterministic.
func ResetEventCounter() {
	atomic.StoreUint64(&eventCounter, 0)
}
