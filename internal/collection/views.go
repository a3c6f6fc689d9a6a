package collection

import (
	"time"

	"github.com/punchlinehub/sitecontent/internal/content"
)

// Upcoming returns events dated today or later in loc, in collection order.
// The comparison is by calendar day; undated events are never upcoming.
func Upcoming(events Collection[content.Event], now time.Time, loc *time.Location) []content.Event {
	today := content.Day(now, loc)
	return events.Filter(func(e content.Event) bool {
		when, ok := e.When()
		return ok && !content.Day(when, loc).Before(today)
	})
}

// FilterByType returns courses of type t. CourseAll returns every course.
func FilterByType(courses Collection[content.Course], t content.CourseType) []content.Course {
	if t == content.CourseAll {
		return courses.All()
	}
	return courses.Filter(func(c content.Course) bool {
		return c.Type == t
	})
}

// ByCategory returns events in category cat.
func ByCategory(events Collection[content.Event], cat content.EventCategory) []content.Event {
	return events.Filter(func(e content.Event) bool {
		return e.Category == cat
	})
}
