package dateutil

import "fmt"

// Band classifies a deadline by how close it is.
type Band string

const (
	BandOverdue Band = "overdue"  // deadline already passed (red)
	BandDueSoon Band = "due_soon" // due within a week, inclusive (amber)
	BandOnTrack Band = "on_track" // more than a week away (green)
)

// DueSoonWindowDays is the inclusive upper bound of the due-soon band.
const DueSoonWindowDays = 7

// BandFor maps a DaysUntil result onto an urgency band.
func BandFor(days int) Band {
	switch {
	case days < 0:
		return BandOverdue
	case days <= DueSoonWindowDays:
		return BandDueSoon
	default:
		return BandOnTrack
	}
}

// Labels holds the display strings for due-date labels. The formats with a
// verb are fmt templates taking the (positive) day count.
type Labels struct {
	OverdueBy  string // e.g. "overdue by %d days"
	DueToday   string // e.g. "due today"
	OneDayLeft string // e.g. "1 day left"
	DaysLeft   string // e.g. "%d days left"
}

// DefaultLabels returns the built-in English label set.
func DefaultLabels() Labels {
	return Labels{
		OverdueBy:  "overdue by %d days",
		DueToday:   "due today",
		OneDayLeft: "1 day left",
		DaysLeft:   "%d days left",
	}
}

// For renders the human label for a DaysUntil result.
func (l Labels) For(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf(l.OverdueBy, -days)
	case days == 0:
		return l.DueToday
	case days == 1:
		return l.OneDayLeft
	default:
		return fmt.Sprintf(l.DaysLeft, days)
	}
}
