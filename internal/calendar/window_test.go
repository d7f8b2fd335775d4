package calendar

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseView(t *testing.T) {
	for _, token := range []string{"day", "week", "month"} {
		view, err := ParseView(token)
		if err != nil {
			t.Fatalf("ParseView(%q) returned error: %v", token, err)
		}
		if string(view) != token {
			t.Fatalf("ParseView(%q) returned %q", token, view)
		}
	}
	if _, err := ParseView("fortnight"); err == nil {
		t.Fatalf("expected error for unknown view")
	}
}

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name   string
		view   View
		anchor time.Time
		start  time.Time
		end    time.Time
	}{
		{
			name:   "day window is the anchor itself",
			view:   ViewDay,
			anchor: day(2025, time.March, 5),
			start:  day(2025, time.March, 5),
			end:    day(2025, time.March, 5),
		},
		{
			name:   "week runs Sunday through Saturday",
			view:   ViewWeek,
			anchor: day(2025, time.March, 5), // a Wednesday
			start:  day(2025, time.March, 2),
			end:    day(2025, time.March, 8),
		},
		{
			name:   "Saturday anchor ends its own week",
			view:   ViewWeek,
			anchor: day(2025, time.February, 8),
			start:  day(2025, time.February, 2),
			end:    day(2025, time.February, 8),
		},
		{
			name:   "Sunday anchor starts its own week",
			view:   ViewWeek,
			anchor: day(2025, time.March, 2),
			start:  day(2025, time.March, 2),
			end:    day(2025, time.March, 8),
		},
		{
			name:   "month spans first through last day",
			view:   ViewMonth,
			anchor: day(2025, time.February, 8),
			start:  day(2025, time.February, 1),
			end:    day(2025, time.February, 28),
		},
		{
			name:   "month handles 31-day months",
			view:   ViewMonth,
			anchor: day(2025, time.March, 15),
			start:  day(2025, time.March, 1),
			end:    day(2025, time.March, 31),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			window := Compute(tc.view, tc.anchor)
			if !window.Start.Equal(tc.start) || !window.End.Equal(tc.end) {
				t.Fatalf("expected [%v, %v], got [%v, %v]", tc.start, tc.end, window.Start, window.End)
			}
			if window.End.Before(window.Start) {
				t.Fatalf("window end precedes start")
			}
		})
	}
}

func TestComputeTruncatesAnchorTime(t *testing.T) {
	anchor := time.Date(2025, time.March, 5, 23, 45, 0, 0, time.UTC)
	window := Compute(ViewDay, anchor)
	if !window.Start.Equal(day(2025, time.March, 5)) {
		t.Fatalf("expected anchor truncated to midnight, got %v", window.Start)
	}
}

func TestWindowContains(t *testing.T) {
	window := Compute(ViewWeek, day(2025, time.February, 8))

	for _, in := range []time.Time{day(2025, time.February, 2), day(2025, time.February, 5), day(2025, time.February, 8)} {
		if !window.Contains(in) {
			t.Fatalf("expected window to contain %v", in)
		}
	}
	for _, out := range []time.Time{day(2025, time.February, 1), day(2025, time.February, 9), day(2025, time.February, 10)} {
		if window.Contains(out) {
			t.Fatalf("expected window to exclude %v", out)
		}
	}
}

func TestNextAndPrevious(t *testing.T) {
	anchor := day(2025, time.March, 5)

	if got := Next(ViewDay, anchor); !got.Equal(day(2025, time.March, 6)) {
		t.Fatalf("Next day returned %v", got)
	}
	if got := Next(ViewWeek, anchor); !got.Equal(day(2025, time.March, 12)) {
		t.Fatalf("Next week returned %v", got)
	}
	if got := Next(ViewMonth, anchor); !got.Equal(day(2025, time.April, 5)) {
		t.Fatalf("Next month returned %v", got)
	}
	if got := Previous(ViewWeek, anchor); !got.Equal(day(2025, time.February, 26)) {
		t.Fatalf("Previous week returned %v", got)
	}

	// A round trip lands back on the anchor.
	if got := Previous(ViewMonth, Next(ViewMonth, anchor)); !got.Equal(anchor) {
		t.Fatalf("month round trip returned %v", got)
	}
}
