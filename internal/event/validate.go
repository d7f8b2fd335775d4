package event

import (
	"strings"
	"time"
)

// Draft carries the caller-provided fields of a new event. The store assigns
// ID, CreatedAt and UpdatedAt on insert.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Location    string   `json:"location"`
	Color       string   `json:"color"`
	Organizer   string   `json:"organizer"`
	Attendees   []string `json:"attendees"`
}

// Normalize trims display strings and applies defaults for omitted optional
// fields. defaultOrganizer is the caller-supplied identity from configuration.
func (d *Draft) Normalize(defaultOrganizer string) {
	d.Title = strings.TrimSpace(d.Title)
	d.Location = strings.TrimSpace(d.Location)
	d.Organizer = strings.TrimSpace(d.Organizer)
	if d.Organizer == "" {
		d.Organizer = defaultOrganizer
	}
	if d.Color == "" {
		d.Color = DefaultColor
	}
}

// Validate checks the draft before any store call is attempted. It returns a
// *ValidationError with one message per offending field, or nil.
func (d Draft) Validate() error {
	vErr := &ValidationError{}

	if strings.TrimSpace(d.Title) == "" {
		vErr.add("title", "title is required")
	}

	if d.Date == "" {
		vErr.add("date", "date is required")
	} else if _, err := time.Parse(DateLayout, d.Date); err != nil {
		vErr.add("date", "date must be YYYY-MM-DD")
	}

	validateClockPair(d.StartTime, d.EndTime, vErr)

	if d.Color != "" && !ValidColor(d.Color) {
		vErr.add("color", "color is not in the palette")
	}

	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Date        *string   `json:"date,omitempty"`
	StartTime   *string   `json:"start_time,omitempty"`
	EndTime     *string   `json:"end_time,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Organizer   *string   `json:"organizer,omitempty"`
	Attendees   []string  `json:"attendees,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Date == nil &&
		p.StartTime == nil && p.EndTime == nil && p.Location == nil &&
		p.Color == nil && p.Organizer == nil && p.Attendees == nil
}

// Validate checks the fields present in the patch. Cross-field ordering is
// only enforced when both clock values are part of the patch; a patch touching
// one ordering key against a stored counterpart is accepted as-is.
func (p Patch) Validate() error {
	vErr := &ValidationError{}

	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		vErr.add("title", "title is required")
	}

	if p.Date != nil {
		if _, err := time.Parse(DateLayout, *p.Date); err != nil {
			vErr.add("date", "date must be YYYY-MM-DD")
		}
	}

	if p.StartTime != nil && !validClock(*p.StartTime) {
		vErr.add("start_time", "start time must be HH:MM")
	}
	if p.EndTime != nil && !validClock(*p.EndTime) {
		vErr.add("end_time", "end time must be HH:MM")
	}
	if p.StartTime != nil && p.EndTime != nil &&
		validClock(*p.StartTime) && validClock(*p.EndTime) && *p.StartTime >= *p.EndTime {
		vErr.add("end_time", "end time must be after start time")
	}

	if p.Color != nil && !ValidColor(*p.Color) {
		vErr.add("color", "color is not in the palette")
	}

	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

func validateClockPair(start, end string, vErr *ValidationError) {
	switch {
	case start == "":
		vErr.add("start_time", "start time is required")
	case !validClock(start):
		vErr.add("start_time", "start time must be HH:MM")
	}

	switch {
	case end == "":
		vErr.add("end_time", "end time is required")
	case !validClock(end):
		vErr.add("end_time", "end time must be HH:MM")
	}

	if validClock(start) && validClock(end) && start >= end {
		vErr.add("end_time", "end time must be after start time")
	}
}
