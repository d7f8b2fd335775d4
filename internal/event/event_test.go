package event

import (
	"testing"
	"time"
)

func TestEventDay(t *testing.T) {
	e := Event{ID: "evt-1", Date: "2025-03-05"}
	day, err := e.Day()
	if err != nil {
		t.Fatalf("Day returned error: %v", err)
	}
	want := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Fatalf("expected %v, got %v", want, day)
	}

	e.Date = "March 5"
	if _, err := e.Day(); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestSortOrdersByDateThenStartTime(t *testing.T) {
	events := []Event{
		{ID: "c", Date: "2025-03-06", StartTime: "09:00"},
		{ID: "b", Date: "2025-03-05", StartTime: "14:00"},
		{ID: "a", Date: "2025-03-05", StartTime: "09:00"},
	}

	Sort(events)

	order := []string{"a", "b", "c"}
	for i, id := range order {
		if events[i].ID != id {
			t.Fatalf("expected order %v, got %v %v %v", order, events[0].ID, events[1].ID, events[2].ID)
		}
	}
}

func TestCloneIsolatesMutableFields(t *testing.T) {
	url := "https://cdn.example.com/full.jpg"
	original := Event{
		ID:        "evt-1",
		Attendees: []string{"Alice"},
		ImageURL:  &url,
	}

	clone := original.Clone()
	clone.Attendees[0] = "Mallory"
	*clone.ImageURL = "https://cdn.example.com/other.jpg"

	if original.Attendees[0] != "Alice" {
		t.Fatalf("clone shares attendee backing array")
	}
	if *original.ImageURL != url {
		t.Fatalf("clone shares image URL pointer")
	}
}

func TestHasImage(t *testing.T) {
	if (Event{}).HasImage() {
		t.Fatalf("expected event without image columns to report no image")
	}
	empty := ""
	if (Event{ImageURL: &empty}).HasImage() {
		t.Fatalf("expected blank image URL to report no image")
	}
	url := "https://cdn.example.com/full.jpg"
	if !(Event{ImageURL: &url}).HasImage() {
		t.Fatalf("expected populated image URL to report an image")
	}
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("ParseClock returned error: %v", err)
	}
	if hour != 9 || minute != 30 {
		t.Fatalf("expected 9:30, got %d:%d", hour, minute)
	}

	for _, bad := range []string{"9:30", "09-30", "24:00", "12:60", ""} {
		if _, _, err := ParseClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestClockDecimal(t *testing.T) {
	got, err := ClockDecimal("09:30")
	if err != nil {
		t.Fatalf("ClockDecimal returned error: %v", err)
	}
	if got != 9.5 {
		t.Fatalf("expected 9.5, got %v", got)
	}
}

func TestPaletteIsClosed(t *testing.T) {
	colors := Palette()
	if len(colors) != 10 {
		t.Fatalf("expected 10 palette colors, got %d", len(colors))
	}
	if !ValidColor(DefaultColor) {
		t.Fatalf("default color %q must be in the palette", DefaultColor)
	}
	if ValidColor("magenta") {
		t.Fatalf("expected magenta to be rejected")
	}

	colors[0].Token = "mutated"
	if Palette()[0].Token != "blue" {
		t.Fatalf("Palette must return a copy")
	}
}
