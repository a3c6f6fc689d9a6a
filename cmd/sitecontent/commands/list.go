package commands

import (
	"encoding/json"

	"github.com/punchlinehub/sitecontent/internal/content"
	"github.com/punchlinehub/sitecontent/internal/foundation/errors"
	"github.com/punchlinehub/sitecontent/internal/metrics"
	"github.com/punchlinehub/sitecontent/internal/site"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	Kind     string `arg:"" help:"Collection kind or folder (services, courses, events, blog, cases)"`
	Upcoming bool   `help:"Only events dated today or later"`
	Type     string `help:"Course type filter (free, paid, all)"`
	Category string `help:"Event category filter (masterclass, corporate, activity)"`
}

func (l *ListCmd) Run(g *Global, root *CLI) error {
	kind, err := content.ParseKind(l.Kind)
	if err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "unknown collection").Build()
	}
	if (l.Upcoming || l.Category != "") && kind != content.KindEvent {
		return errors.ValidationError("--upcoming and --category apply to events only").Build()
	}
	if l.Type != "" && kind != content.KindCourse {
		return errors.ValidationError("--type applies to courses only").Build()
	}

	rt, err := loadRuntime(g, root)
	if err != nil {
		return err
	}
	build := rt.newBuild(metrics.NoopRecorder{})

	out, err := l.records(build, kind)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(g.stdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to encode output").Build()
	}
	return nil
}

func (l *ListCmd) records(b *site.Build, kind content.Kind) (any, error) {
	switch {
	case kind == content.KindEvent && l.Upcoming:
		events, err := b.UpcomingEvents()
		if err != nil || l.Category == "" {
			return events, err
		}
		cat, err := parseCategory(l.Category)
		if err != nil {
			return nil, err
		}
		out := make([]content.Event, 0, len(events))
		for _, e := range events {
			if e.Category == cat {
				out = append(out, e)
			}
		}
		return out, nil
	case kind == content.KindEvent && l.Category != "":
		cat, err := parseCategory(l.Category)
		if err != nil {
			return nil, err
		}
		return b.EventsByCategory(cat)
	case kind == content.KindCourse && l.Type != "":
		t, err := content.ParseCourseType(l.Type)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryValidation, "invalid --type").Build()
		}
		return b.CoursesByType(t)
	default:
		return b.GetCollection(kind)
	}
}

func parseCategory(raw string) (content.EventCategory, error) {
	cat, err := content.ParseEventCategory(raw)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryValidation, "invalid --category").Build()
	}
	return cat, nil
}
