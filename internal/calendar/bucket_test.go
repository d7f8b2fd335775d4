package calendar

import (
	"testing"

	"github.com/example/glass-calendar/internal/event"
)

func weekEvent(id, date, start, end string) event.Event {
	return event.Event{ID: id, Title: id, Date: date, StartTime: start, EndTime: end}
}

func TestCoarseSlot(t *testing.T) {
	tests := []struct {
		start string
		slot  int
	}{
		{start: "06:00", slot: SlotMorning},
		{start: "11:59", slot: SlotMorning},
		{start: "12:00", slot: SlotAfternoon},
		{start: "17:59", slot: SlotAfternoon},
		{start: "18:00", slot: SlotEvening},
		{start: "23:30", slot: SlotEvening},
		{start: "05:00", slot: SlotEvening},
		{start: "00:00", slot: SlotEvening},
	}
	for _, tc := range tests {
		if got := CoarseSlot(tc.start); got != tc.slot {
			t.Fatalf("CoarseSlot(%q) = %d, expected %d", tc.start, got, tc.slot)
		}
	}
}

func TestDayIndex(t *testing.T) {
	// 2025-03-02 is a Sunday.
	if got := DayIndex(event.Event{Date: "2025-03-02"}); got != 1 {
		t.Fatalf("expected Sunday to map to column 1, got %d", got)
	}
	if got := DayIndex(event.Event{Date: "2025-03-08"}); got != 7 {
		t.Fatalf("expected Saturday to map to column 7, got %d", got)
	}
	if got := DayIndex(event.Event{Date: "not-a-date"}); got != 0 {
		t.Fatalf("expected unparseable date to map to 0, got %d", got)
	}
}

func TestDesktopWeek(t *testing.T) {
	events := []event.Event{
		weekEvent("sun-morning", "2025-03-02", "09:00", "10:00"),
		weekEvent("wed-first", "2025-03-05", "09:00", "10:30"),
		weekEvent("wed-second", "2025-03-05", "14:00", "15:00"),
		weekEvent("broken", "2025-03-05", "morning", "noon"),
	}

	columns := DesktopWeek(events)
	if len(columns) != 7 {
		t.Fatalf("expected 7 columns, got %d", len(columns))
	}
	for i, col := range columns {
		if col.Day != i+1 {
			t.Fatalf("column %d carries day %d", i, col.Day)
		}
	}

	sunday := columns[0]
	if len(sunday.Blocks) != 1 || sunday.Blocks[0].Event.ID != "sun-morning" {
		t.Fatalf("unexpected Sunday column: %+v", sunday)
	}
	if got := sunday.Blocks[0].Geometry; got.Top != 80 || got.Height != 80 {
		t.Fatalf("unexpected Sunday geometry: %+v", got)
	}

	wednesday := columns[3]
	if len(wednesday.Blocks) != 2 {
		t.Fatalf("expected 2 Wednesday blocks, got %d", len(wednesday.Blocks))
	}
	if wednesday.Blocks[0].Event.ID != "wed-first" || wednesday.Blocks[1].Event.ID != "wed-second" {
		t.Fatalf("Wednesday blocks out of order: %+v", wednesday.Blocks)
	}
	if got := wednesday.Blocks[0].Geometry; got.Top != 80 || got.Height != 120 {
		t.Fatalf("unexpected geometry for 09:00-10:30: %+v", got)
	}

	for _, col := range columns[1:3] {
		if len(col.Blocks) != 0 {
			t.Fatalf("expected empty column for day %d, got %+v", col.Day, col.Blocks)
		}
	}
}

func TestMobileWeekGroupsAndStacks(t *testing.T) {
	events := []event.Event{
		weekEvent("m1", "2025-03-05", "08:00", "09:00"),
		weekEvent("m2", "2025-03-05", "09:00", "10:00"),
		weekEvent("m3", "2025-03-05", "10:00", "11:00"),
		weekEvent("m4", "2025-03-05", "10:30", "11:30"),
		weekEvent("m5", "2025-03-05", "11:00", "12:00"),
		weekEvent("pm", "2025-03-05", "14:00", "15:00"),
		weekEvent("eve", "2025-03-07", "19:00", "20:00"),
	}

	cells := MobileWeek(events)
	if len(cells) != 3 {
		t.Fatalf("expected 3 populated cells, got %d", len(cells))
	}

	morning := cells[0]
	if morning.Day != 4 || morning.Slot != SlotMorning {
		t.Fatalf("unexpected first cell: %+v", morning)
	}
	if morning.Total != 5 || morning.Visible != MaxVisibleCards || morning.Overflow != 2 {
		t.Fatalf("expected total 5 visible 3 overflow 2, got %+v", morning)
	}
	if len(morning.Events) != 5 {
		t.Fatalf("cell must carry the full group, got %d events", len(morning.Events))
	}
	if morning.Events[0].ID != "m1" {
		t.Fatalf("expected data-layer order preserved, got %q first", morning.Events[0].ID)
	}

	afternoon := cells[1]
	if afternoon.Slot != SlotAfternoon || afternoon.Total != 1 || afternoon.Overflow != 0 {
		t.Fatalf("unexpected afternoon cell: %+v", afternoon)
	}

	evening := cells[2]
	if evening.Day != 6 || evening.Slot != SlotEvening {
		t.Fatalf("unexpected evening cell: %+v", evening)
	}
}

func TestCardTransform(t *testing.T) {
	for i, want := range []struct{ offset, rotation int }{
		{0, 0},
		{StackOffsetPx, StackRotationDeg},
		{2 * StackOffsetPx, 2 * StackRotationDeg},
	} {
		offset, rotation := CardTransform(i)
		if offset != want.offset || rotation != want.rotation {
			t.Fatalf("CardTransform(%d) = (%d, %d), expected (%d, %d)", i, offset, rotation, want.offset, want.rotation)
		}
	}
}

func TestNextInGroupWraps(t *testing.T) {
	cell := newCell(4, SlotMorning, []event.Event{
		weekEvent("a", "2025-03-05", "08:00", "09:00"),
		weekEvent("b", "2025-03-05", "09:00", "10:00"),
		weekEvent("c", "2025-03-05", "10:00", "11:00"),
		weekEvent("d", "2025-03-05", "10:30", "11:30"),
	})

	// Cycling visits hidden events too, then wraps to the top card.
	index := 0
	seen := []int{}
	for i := 0; i < cell.Total; i++ {
		index = cell.NextInGroup(index)
		seen = append(seen, index)
	}
	want := []int{1, 2, 3, 0}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected cycle %v, got %v", want, seen)
		}
	}

	empty := Cell{}
	if empty.NextInGroup(0) != 0 {
		t.Fatalf("empty cell must stay at index 0")
	}
}
