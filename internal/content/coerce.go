package content

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/punchlinehub/sitecontent/internal/foundation/normalization"
)

var (
	courseTypes = normalization.NewNormalizer("course type", map[string]CourseType{
		"free": CourseFree,
		"paid": CoursePaid,
	}, CourseFree)

	accessModes = normalization.NewNormalizer("event access", map[string]Access{
		"free": AccessFree,
		"paid": AccessPaid,
	}, AccessFree)

	eventCategories = normalization.NewNormalizer("event category", map[string]EventCategory{
		"masterclass": EventMasterclass,
		"corporate":   EventCorporate,
		"activity":    EventActivity,
	}, EventActivity)
)

// ParseCourseType reads a course filter value: all, free or paid.
func ParseCourseType(s string) (CourseType, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(CourseAll)) {
		return CourseAll, nil
	}
	return courseTypes.NormalizeWithError(s)
}

// ParseEventCategory parses an event category filter value.
func ParseEventCategory(s string) (EventCategory, error) {
	return eventCategories.NormalizeWithError(s)
}

// Coercer turns free-form metadata into typed records.
//
// Absent fields take their documented default. A present value that cannot
// be read as its declared type yields a *MalformedRecordError. Unknown keys
// are ignored.
type Coercer struct {
	// Location is used for dates written without a zone. Nil means UTC.
	Location *time.Location
}

// Coerce dispatches on kind and returns the record as a Record.
func (c Coercer) Coerce(kind Kind, id string, fields map[string]any, body string) (Record, error) {
	switch kind {
	case KindService:
		return c.Service(id, fields, body)
	case KindCourse:
		return c.Course(id, fields, body)
	case KindEvent:
		return c.Event(id, fields, body)
	case KindBlogPost:
		return c.BlogPost(id, fields, body)
	case KindCaseStudy:
		return c.CaseStudy(id, fields, body)
	default:
		return nil, &MalformedRecordError{Kind: kind, ID: id, Reason: "unknown collection kind"}
	}
}

func (c Coercer) Service(id string, fields map[string]any, body string) (Service, error) {
	r, err := newFieldReader(KindService, id, fields)
	if err != nil {
		return Service{}, err
	}
	s := Service{
		ID:              id,
		Title:           r.str("title"),
		Description:     r.str("description"),
		LongDescription: r.str("longDescription"),
		Icon:            r.str("icon"),
		Body:            strings.TrimSpace(body),
	}
	return s, r.err
}

func (c Coercer) Course(id string, fields map[string]any, body string) (Course, error) {
	r, err := newFieldReader(KindCourse, id, fields)
	if err != nil {
		return Course{}, err
	}
	course := Course{
		ID:               id,
		Title:            r.str("title"),
		Category:         r.str("category"),
		Image:            r.image("image"),
		Duration:         r.str("duration"),
		Price:            r.num("price"),
		Type:             enum(r, "type", courseTypes),
		Description:      r.str("description"),
		RegistrationLink: r.optional("registrationLink"),
		Body:             strings.TrimSpace(body),
	}
	return course, r.err
}

func (c Coercer) Event(id string, fields map[string]any, body string) (Event, error) {
	r, err := newFieldReader(KindEvent, id, fields)
	if err != nil {
		return Event{}, err
	}
	e := Event{
		ID:               id,
		Slug:             id,
		Title:            r.str("title"),
		Type:             r.str("type"),
		Access:           enum(r, "access", accessModes),
		Price:            r.num("price"),
		Date:             r.str("date"),
		Location:         r.str("location"),
		Category:         enum(r, "category", eventCategories),
		Image:            r.image("image"),
		RegistrationLink: r.optional("registrationLink"),
		Body:             strings.TrimSpace(body),
	}
	e.date, e.dated = ParseDate(e.Date, c.Location)
	return e, r.err
}

func (c Coercer) BlogPost(id string, fields map[string]any, body string) (BlogPost, error) {
	r, err := newFieldReader(KindBlogPost, id, fields)
	if err != nil {
		return BlogPost{}, err
	}
	p := BlogPost{
		ID:       id,
		Slug:     id,
		Title:    r.str("title"),
		Excerpt:  r.str("excerpt"),
		Date:     r.str("date"),
		Image:    r.image("image"),
		Category: r.str("category"),
		Body:     strings.TrimSpace(body),
	}
	p.date, p.dated = ParseDate(p.Date, c.Location)
	return p, r.err
}

func (c Coercer) CaseStudy(id string, fields map[string]any, body string) (CaseStudy, error) {
	r, err := newFieldReader(KindCaseStudy, id, fields)
	if err != nil {
		return CaseStudy{}, err
	}
	cs := CaseStudy{
		ID:     id,
		Client: r.str("client"),
		Title:  r.str("title"),
		Metric: r.str("metric"),
		Image:  r.image("image"),
		Body:   strings.TrimSpace(body),
	}
	return cs, r.err
}

// fieldReader reads typed values out of one metadata map. The first coercion
// failure is kept in err; later reads still return defaults so that callers
// can build the record in a single expression.
type fieldReader struct {
	kind   Kind
	id     string
	fields map[string]any
	err    error
}

func newFieldReader(kind Kind, id string, fields map[string]any) (*fieldReader, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &MalformedRecordError{Kind: kind, Field: "id", Reason: "empty id derived from filename"}
	}
	return &fieldReader{kind: kind, id: id, fields: fields}, nil
}

func (r *fieldReader) fail(field, format string, args ...any) {
	if r.err != nil {
		return
	}
	r.err = &MalformedRecordError{Kind: r.kind, ID: r.id, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// str reads a free-text field. Scalars are rendered as text; absent is "".
func (r *fieldReader) str(name string) string {
	switch v := r.fields[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		r.fail(name, "expected text, got %T", v)
		return ""
	}
}

// num reads a numeric field. Absent or empty is 0.
func (r *fieldReader) num(name string) float64 {
	switch v := r.fields[name].(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.fail(name, "expected a finite number")
			return 0
		}
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			r.fail(name, "expected a number, got %q", v)
			return 0
		}
		return f
	default:
		r.fail(name, "expected a number, got %T", v)
		return 0
	}
}

// optional reads a text field that stays nil when absent or blank.
func (r *fieldReader) optional(name string) *string {
	if _, ok := r.fields[name]; !ok {
		return nil
	}
	s := strings.TrimSpace(r.str(name))
	if s == "" {
		return nil
	}
	return &s
}

// image reads a path-like field and normalizes relative paths to begin with
// exactly one '/'. Absolute URLs are kept as written.
func (r *fieldReader) image(name string) *string {
	s := r.optional(name)
	if s == nil {
		return nil
	}
	if isAbsoluteURL(*s) {
		return s
	}
	p := "/" + strings.TrimLeft(*s, "/")
	return &p
}

func enum[T comparable](r *fieldReader, name string, n *normalization.Normalizer[T]) T {
	v, ok := r.fields[name]
	if !ok || v == nil {
		return n.Default()
	}
	s, isString := v.(string)
	if !isString {
		r.fail(name, "expected one of %v, got %T", n.ValidKeys(), v)
		return n.Default()
	}
	if strings.TrimSpace(s) == "" {
		return n.Default()
	}
	out, err := n.NormalizeWithError(s)
	if err != nil {
		r.fail(name, "%v", err)
		return n.Default()
	}
	return out
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}
