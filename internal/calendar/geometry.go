package calendar

import "github.com/example/glass-calendar/internal/event"

// Desktop hourly grid constants. The grid shows nine hour rows starting at
// 8 AM, each 80 pixels tall.
const (
	GridOriginHour = 8
	GridHourRows   = 9
	PixelsPerHour  = 80
)

// BlockGeometry is the absolute position of an event block inside a day
// column, in pixels from the grid origin.
type BlockGeometry struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Position converts an event's wall-clock extent into pixel geometry. Height
// is positive whenever start < end holds; events outside the grid's hour span
// simply land above or below it, geometry does not clip.
func Position(startTime, endTime string) (BlockGeometry, error) {
	start, err := event.ClockDecimal(startTime)
	if err != nil {
		return BlockGeometry{}, err
	}
	end, err := event.ClockDecimal(endTime)
	if err != nil {
		return BlockGeometry{}, err
	}
	return BlockGeometry{
		Top:    (start - GridOriginHour) * PixelsPerHour,
		Height: (end - start) * PixelsPerHour,
	}, nil
}
