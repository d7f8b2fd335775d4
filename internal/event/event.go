package event

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the wire format for the calendar date of an event.
const DateLayout = "2006-01-02"

// Event is a calendar entry as stored in the events table. Date carries no time
// component; StartTime and EndTime are zero-padded "HH:MM" wall-clock strings,
// which makes lexicographic comparison equivalent to temporal comparison.
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Location      string    `json:"location"`
	Color         string    `json:"color"`
	Organizer     string    `json:"organizer"`
	Attendees     []string  `json:"attendees"`
	ImageURL      *string   `json:"image_url,omitempty"`
	ThumbnailURL  *string   `json:"thumbnail_url,omitempty"`
	ImageFilename *string   `json:"image_filename,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Day parses the event date into a civil day at midnight UTC.
func (e Event) Day() (time.Time, error) {
	day, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("event %s has malformed date %q: %w", e.ID, e.Date, err)
	}
	return day, nil
}

// HasImage reports whether the event carries an attached image. The image
// columns are all present together or all absent.
func (e Event) HasImage() bool {
	return e.ImageURL != nil && *e.ImageURL != ""
}

// Clone returns a deep copy so cache snapshots cannot be mutated by callers.
func (e Event) Clone() Event {
	out := e
	out.Attendees = append([]string(nil), e.Attendees...)
	out.ImageURL = cloneString(e.ImageURL)
	out.ThumbnailURL = cloneString(e.ThumbnailURL)
	out.ImageFilename = cloneString(e.ImageFilename)
	return out
}

// CloneAll deep-copies a slice of events.
func CloneAll(events []Event) []Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]Event, 0, len(events))
	for _, e := range events {
		out = append(out, e.Clone())
	}
	return out
}

// Less orders events by date ascending, then start time ascending. Both keys
// are zero-padded strings, so string comparison is the temporal one.
func Less(a, b Event) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.StartTime < b.StartTime
}

// Sort orders events in place by (date, start_time) ascending. The sort is
// stable so ties keep their incoming order.
func Sort(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return Less(events[i], events[j])
	})
}

// SplitAttendees derives the attendee list from a comma-separated input,
// trimming whitespace and discarding empty entries.
func SplitAttendees(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
