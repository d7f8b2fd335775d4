package calendar

import (
	"github.com/example/glass-calendar/internal/event"
)

// Coarse time-of-day slots used by the mobile weekly layout.
const (
	SlotMorning   = 0 // [06:00, 12:00)
	SlotAfternoon = 1 // [12:00, 18:00)
	SlotEvening   = 2 // everything else
)

// SlotLabels maps coarse slot indices to their display names.
var SlotLabels = [3]string{"Morning", "Afternoon", "Evening"}

// Stacking policy for a mobile cell holding several events.
const (
	// MaxVisibleCards caps how many stacked cards a cell renders.
	MaxVisibleCards = 3
	// StackOffsetPx and StackRotationDeg are applied cumulatively per card to
	// suggest a physical stack.
	StackOffsetPx    = 4
	StackRotationDeg = 2
)

// DayBlock is one positioned event in a desktop day column.
type DayBlock struct {
	Event    event.Event   `json:"event"`
	Geometry BlockGeometry `json:"geometry"`
}

// DayColumn holds the ordered blocks of one weekday column. Day is 1-based
// with Sunday = 1, matching the grid's column order.
type DayColumn struct {
	Day    int        `json:"day"`
	Blocks []DayBlock `json:"blocks"`
}

// Cell is one (day, slot) grouping in the mobile weekly layout. Events holds
// the full group in data-layer order so detail navigation can cycle through
// all of it; only the first Visible entries render as stacked cards, the
// first entry on top.
type Cell struct {
	Day    int           `json:"day"`
	Slot   int           `json:"slot"`
	Events []event.Event `json:"events"`
	// Visible is how many events render as stacked cards, at most
	// MaxVisibleCards.
	Visible int `json:"visible"`
	// Overflow is the badge count of hidden events, zero unless
	// Total > MaxVisibleCards.
	Overflow int `json:"overflow"`
	Total    int `json:"total"`
}

// CoarseSlot maps a start time to its mobile slot index. Input is assumed
// validated upstream; no bounds clamping is applied here.
func CoarseSlot(startTime string) int {
	hour, _, err := event.ParseClock(startTime)
	if err != nil {
		return SlotEvening
	}
	switch {
	case hour >= 6 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 18:
		return SlotAfternoon
	default:
		return SlotEvening
	}
}

// DayIndex returns the 1-based weekday column (Sunday = 1) for an event date,
// or 0 when the date cannot be parsed.
func DayIndex(e event.Event) int {
	day, err := e.Day()
	if err != nil {
		return 0
	}
	return int(day.Weekday()) + 1
}

// DesktopWeek buckets events into the seven weekday columns of the desktop
// grid, each event positioned by its clock extent. Events whose geometry
// cannot be derived are dropped from the layout; the ones that remain keep
// the order the data layer returned them in.
func DesktopWeek(events []event.Event) []DayColumn {
	columns := make([]DayColumn, 7)
	for i := range columns {
		columns[i].Day = i + 1
	}
	for _, e := range events {
		day := DayIndex(e)
		if day < 1 || day > 7 {
			continue
		}
		geo, err := Position(e.StartTime, e.EndTime)
		if err != nil {
			continue
		}
		col := &columns[day-1]
		col.Blocks = append(col.Blocks, DayBlock{Event: e.Clone(), Geometry: geo})
	}
	return columns
}

// MobileWeek groups events by (day, coarse slot) and applies the stacking
// policy. Cells come back ordered by day then slot; empty cells are omitted.
func MobileWeek(events []event.Event) []Cell {
	var grid [7][3][]event.Event
	for _, e := range events {
		day := DayIndex(e)
		if day < 1 || day > 7 {
			continue
		}
		slot := CoarseSlot(e.StartTime)
		grid[day-1][slot] = append(grid[day-1][slot], e.Clone())
	}

	cells := make([]Cell, 0)
	for day := 0; day < 7; day++ {
		for slot := 0; slot < 3; slot++ {
			group := grid[day][slot]
			if len(group) == 0 {
				continue
			}
			cells = append(cells, newCell(day+1, slot, group))
		}
	}
	return cells
}

func newCell(day, slot int, group []event.Event) Cell {
	cell := Cell{Day: day, Slot: slot, Events: group, Total: len(group)}
	cell.Visible = len(group)
	if cell.Visible > MaxVisibleCards {
		cell.Visible = MaxVisibleCards
		cell.Overflow = len(group) - MaxVisibleCards
	}
	return cell
}

// CardTransform returns the cumulative pixel offset and rotation for the
// stacked card at position i, where 0 is the top card. Z-order is highest for
// the top card, so later cards render beneath earlier ones.
func CardTransform(i int) (offsetPx, rotationDeg int) {
	return i * StackOffsetPx, i * StackRotationDeg
}

// NextInGroup cycles the selection forward through a cell's full group,
// wrapping from the last event back to the first.
func (c Cell) NextInGroup(index int) int {
	if c.Total <= 0 {
		return 0
	}
	return (index + 1) % c.Total
}
