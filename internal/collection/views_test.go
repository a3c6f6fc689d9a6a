package collection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/punchlinehub/sitecontent/internal/content"
)

func ids[T content.Record](records []T) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.RecordID()
	}
	return out
}

func TestUpcoming_TodayAndLaterAscending(t *testing.T) {
	now := time.Date(2024, time.May, 15, 18, 45, 0, 0, time.UTC)
	docs := []content.ParsedDocument{
		event("tomorrow", "2024-05-16"),
		event("yesterday", "2024-05-14"),
		event("today", "2024-05-15"),
		event("someday", "when it is ready"),
	}
	events := Build(docs, EventPolicy(content.Coercer{Location: time.UTC})).Collection

	require.Equal(t, []string{"today", "tomorrow"}, ids(Upcoming(events, now, time.UTC)))
	require.Equal(t, 4, events.Len())
}

func TestUpcoming_DayBoundaryFollowsLocation(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)
	// 23:30 UTC on the 14th is already the 15th in Lagos.
	now := time.Date(2024, time.May, 14, 23, 30, 0, 0, time.UTC)
	docs := []content.ParsedDocument{
		event("fourteenth", "2024-05-14"),
		event("fifteenth", "2024-05-15"),
	}
	events := Build(docs, EventPolicy(content.Coercer{Location: lagos})).Collection

	require.Equal(t, []string{"fifteenth"}, ids(Upcoming(events, now, lagos)))
}

func TestFilterByType(t *testing.T) {
	docs := []content.ParsedDocument{
		parsed(content.KindCourse, "c1", "---\ntype: free\n---\n"),
		parsed(content.KindCourse, "c2", "---\ntype: paid\n---\n"),
		parsed(content.KindCourse, "c3", "---\ntype: free\n---\n"),
		parsed(content.KindCourse, "c4", "---\ntype: paid\n---\n"),
	}
	courses := Build(docs, CoursePolicy(content.Coercer{})).Collection

	require.Equal(t, []string{"c2", "c4"}, ids(FilterByType(courses, content.CoursePaid)))
	require.Equal(t, []string{"c1", "c3"}, ids(FilterByType(courses, content.CourseFree)))
	require.Equal(t, []string{"c1", "c2", "c3", "c4"}, ids(FilterByType(courses, content.CourseAll)))
	require.Equal(t, 4, courses.Len())
}

func TestByCategory(t *testing.T) {
	docs := []content.ParsedDocument{
		parsed(content.KindEvent, "q4", "---\ncategory: masterclass\n---\n"),
		parsed(content.KindEvent, "bootcamp", "---\ncategory: corporate\n---\n"),
		parsed(content.KindEvent, "meetup", ""),
	}
	events := Build(docs, EventPolicy(content.Coercer{})).Collection

	require.Equal(t, []string{"q4"}, ids(ByCategory(events, content.EventMasterclass)))
	require.Equal(t, []string{"meetup"}, ids(ByCategory(events, content.EventActivity)))
}
