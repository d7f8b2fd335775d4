package fallback

import (
	"context"
	"testing"
	"time"

	"github.com/example/glass-calendar/internal/calendar"
	"github.com/example/glass-calendar/internal/event"
)

func openDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Open()
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := ds.Close(); err != nil {
			t.Errorf("Close returned error: %v", err)
		}
	})
	return ds
}

func window(start, end string) calendar.Window {
	s, _ := time.Parse(event.DateLayout, start)
	e, _ := time.Parse(event.DateLayout, end)
	return calendar.Window{Start: s, End: e}
}

func TestQueryRangeFiltersAndOrders(t *testing.T) {
	ds := openDataset(t)

	events, err := ds.QueryRange(context.Background(), window("2025-03-02", "2025-03-08"))
	if err != nil {
		t.Fatalf("QueryRange returned error: %v", err)
	}
	if len(events) != 9 {
		t.Fatalf("expected 9 events in the demo week, got %d", len(events))
	}

	for i := 1; i < len(events); i++ {
		prev, cur := events[i-1], events[i]
		if prev.Date > cur.Date || (prev.Date == cur.Date && prev.StartTime > cur.StartTime) {
			t.Fatalf("events out of order at %d: %s %s before %s %s",
				i, prev.Date, prev.StartTime, cur.Date, cur.StartTime)
		}
	}

	for _, e := range events {
		if e.ID == "sample-10" {
			t.Fatalf("event outside the window leaked into the result")
		}
	}
}

func TestQueryRangeBoundsAreInclusive(t *testing.T) {
	ds := openDataset(t)

	events, err := ds.QueryRange(context.Background(), window("2025-03-03", "2025-03-03"))
	if err != nil {
		t.Fatalf("QueryRange returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected the two events on the start day, got %d", len(events))
	}

	events, err = ds.QueryRange(context.Background(), window("2025-02-01", "2025-02-28"))
	if err != nil {
		t.Fatalf("QueryRange returned error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events outside the demo window, got %d", len(events))
	}
}

func TestQueryRangeRoundTripsAllColumns(t *testing.T) {
	ds := openDataset(t)

	events, err := ds.QueryRange(context.Background(), window("2025-03-03", "2025-03-03"))
	if err != nil {
		t.Fatalf("QueryRange returned error: %v", err)
	}
	if len(events) == 0 {
		t.Fatalf("no events to inspect")
	}

	first := events[0]
	if first.ID != "sample-1" || first.Title != "Team Standup" {
		t.Fatalf("unexpected first event: %+v", first)
	}
	if len(first.Attendees) != 3 {
		t.Fatalf("expected attendees decoded from JSON column, got %v", first.Attendees)
	}
	if !event.ValidColor(first.Color) {
		t.Fatalf("sample event carries an off-palette color %q", first.Color)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to round trip, got %+v", first)
	}
}

func TestSampleEventsAreValidDrafts(t *testing.T) {
	for _, e := range SampleEvents() {
		draft := event.Draft{
			Title:     e.Title,
			Date:      e.Date,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Color:     e.Color,
		}
		if err := draft.Validate(); err != nil {
			t.Fatalf("sample event %s does not validate: %v", e.ID, err)
		}
	}
}
