package fallback

import (
	"time"

	"github.com/example/glass-calendar/internal/event"
)

// The sample data clusters around a fixed demo week so the default view is
// populated without a backend. The anchor mirrors the application's demo
// "today" of March 5, 2025.
var demoSeeded = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

// SampleEvents returns the static demo events. Callers receive a fresh copy
// on every call; the canonical rows live in the seeded database.
func SampleEvents() []event.Event {
	samples := []event.Event{
		{
			ID:          "sample-1",
			Title:       "Team Standup",
			Description: "Daily sync on sprint progress and blockers",
			Date:        "2025-03-03",
			StartTime:   "09:00",
			EndTime:     "09:30",
			Location:    "Conference Room A",
			Color:       "blue",
			Organizer:   "Sarah Chen",
			Attendees:   []string{"Sarah Chen", "Marcus Webb", "Priya Patel"},
		},
		{
			ID:          "sample-2",
			Title:       "Design Review",
			Description: "Walkthrough of the new onboarding flow mockups",
			Date:        "2025-03-03",
			StartTime:   "14:00",
			EndTime:     "15:30",
			Location:    "Design Lab",
			Color:       "purple",
			Organizer:   "Marcus Webb",
			Attendees:   []string{"Marcus Webb", "Elena Rossi"},
		},
		{
			ID:          "sample-3",
			Title:       "Client Presentation",
			Description: "Quarterly roadmap presentation for Northwind",
			Date:        "2025-03-04",
			StartTime:   "10:00",
			EndTime:     "11:00",
			Location:    "Boardroom",
			Color:       "red",
			Organizer:   "Priya Patel",
			Attendees:   []string{"Priya Patel", "James Okafor", "Client Team"},
		},
		{
			ID:          "sample-4",
			Title:       "Lunch with Mentor",
			Description: "Monthly catch-up over lunch",
			Date:        "2025-03-05",
			StartTime:   "12:00",
			EndTime:     "13:00",
			Location:    "Cafe Verde",
			Color:       "green",
			Organizer:   "You",
			Attendees:   []string{"You", "Dana Kim"},
		},
		{
			ID:          "sample-5",
			Title:       "Code Review Session",
			Description: "Review of the payments service refactor",
			Date:        "2025-03-05",
			StartTime:   "15:00",
			EndTime:     "16:00",
			Location:    "Conference Room B",
			Color:       "indigo",
			Organizer:   "James Okafor",
			Attendees:   []string{"James Okafor", "Sarah Chen"},
		},
		{
			ID:          "sample-6",
			Title:       "Yoga Class",
			Description: "Office wellness program",
			Date:        "2025-03-05",
			StartTime:   "18:30",
			EndTime:     "19:30",
			Location:    "Studio 3",
			Color:       "teal",
			Organizer:   "Wellness Committee",
			Attendees:   []string{"You"},
		},
		{
			ID:          "sample-7",
			Title:       "Product Sync",
			Description: "Alignment on the Q2 feature cut",
			Date:        "2025-03-06",
			StartTime:   "11:00",
			EndTime:     "12:00",
			Location:    "Conference Room A",
			Color:       "orange",
			Organizer:   "Elena Rossi",
			Attendees:   []string{"Elena Rossi", "Priya Patel", "Marcus Webb"},
		},
		{
			ID:          "sample-8",
			Title:       "Happy Hour",
			Description: "Team celebration for the launch",
			Date:        "2025-03-07",
			StartTime:   "17:00",
			EndTime:     "19:00",
			Location:    "Rooftop Bar",
			Color:       "pink",
			Organizer:   "Sarah Chen",
			Attendees:   []string{"Everyone"},
		},
		{
			ID:          "sample-9",
			Title:       "Weekend Hike",
			Description: "Trailhead meetup, bring water",
			Date:        "2025-03-08",
			StartTime:   "08:00",
			EndTime:     "11:00",
			Location:    "Eagle Peak Trailhead",
			Color:       "cyan",
			Organizer:   "You",
			Attendees:   []string{"You", "Dana Kim", "Alex Rivera"},
		},
		{
			ID:          "sample-10",
			Title:       "Sprint Planning",
			Description: "Scoping the next two-week sprint",
			Date:        "2025-03-10",
			StartTime:   "09:30",
			EndTime:     "11:00",
			Location:    "Conference Room A",
			Color:       "yellow",
			Organizer:   "Sarah Chen",
			Attendees:   []string{"Sarah Chen", "Marcus Webb", "Priya Patel", "James Okafor"},
		},
	}

	for i := range samples {
		samples[i].CreatedAt = demoSeeded
		samples[i].UpdatedAt = demoSeeded
	}
	return samples
}
