package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// Deadline mirroring uses all-day events, where only the date part of
// StartTime/EndTime is sent.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Timezone    string // e.g. "Europe/Berlin"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
