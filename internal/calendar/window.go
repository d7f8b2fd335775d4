// Package calendar implements the pure event-layout engine: the active date
// window for a view, per-day and per-slot bucketing of events, and pixel
// geometry for the hourly grid. Nothing here performs I/O.
package calendar

import (
	"fmt"
	"time"
)

// View selects the calendar granularity.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ParseView validates a view token from the transport layer.
func ParseView(value string) (View, error) {
	switch View(value) {
	case ViewDay, ViewWeek, ViewMonth:
		return View(value), nil
	}
	return "", fmt.Errorf("unknown view %q", value)
}

// Window is the inclusive date range displayed for a view and anchor date.
// Both bounds are civil days at midnight.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls inside the window, bounds included.
func (w Window) Contains(day time.Time) bool {
	day = truncate(day)
	return !day.Before(w.Start) && !day.After(w.End)
}

// Compute derives the window for a view mode and anchor date.
//
// day: the anchor itself. week: the Sunday-through-Saturday span containing
// the anchor, regardless of locale. month: first through last day of the
// anchor's month.
func Compute(view View, anchor time.Time) Window {
	anchor = truncate(anchor)
	switch view {
	case ViewDay:
		return Window{Start: anchor, End: anchor}
	case ViewWeek:
		start := anchor.AddDate(0, 0, -int(anchor.Weekday()))
		return Window{Start: start, End: start.AddDate(0, 0, 6)}
	case ViewMonth:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		// Day zero of the next month is the last day of this one.
		end := time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, anchor.Location())
		return Window{Start: start, End: end}
	}
	return Window{Start: anchor, End: anchor}
}

// Next moves the anchor forward by one step of the view: a day, a week, or a
// month.
func Next(view View, anchor time.Time) time.Time {
	return step(view, anchor, 1)
}

// Previous moves the anchor backward by one step of the view.
func Previous(view View, anchor time.Time) time.Time {
	return step(view, anchor, -1)
}

func step(view View, anchor time.Time, direction int) time.Time {
	anchor = truncate(anchor)
	switch view {
	case ViewDay:
		return anchor.AddDate(0, 0, direction)
	case ViewWeek:
		return anchor.AddDate(0, 0, 7*direction)
	case ViewMonth:
		return anchor.AddDate(0, direction, 0)
	}
	return anchor
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
