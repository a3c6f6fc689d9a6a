package content

import "time"

// Record is the common view of a typed, immutable content record.
type Record interface {
	RecordID() string
	RecordKind() Kind
	// Fields projects the record back onto metadata. Coercing the projection
	// again yields an identical record.
	Fields() map[string]any
	RecordBody() string
}

// Dated is implemented by records that carry a publish or event date.
type Dated interface {
	Record
	// When returns the parsed date; ok is false when the date is absent or
	// unparsable.
	When() (t time.Time, ok bool)
}

// CourseType is the access model of a course.
type CourseType string

const (
	CourseFree CourseType = "free"
	CoursePaid CourseType = "paid"
	// CourseAll is the filter value that matches every course. It is never a
	// record's type.
	CourseAll CourseType = "all"
)

// Access is the admission model of an event.
type Access string

const (
	AccessFree Access = "free"
	AccessPaid Access = "paid"
)

// EventCategory partitions the events page.
type EventCategory string

const (
	EventMasterclass EventCategory = "masterclass"
	EventCorporate   EventCategory = "corporate"
	EventActivity    EventCategory = "activity"
)

type Service struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	LongDescription string `json:"longDescription"`
	Icon            string `json:"icon"`
	Body            string `json:"body"`
}

func (s Service) RecordID() string   { return s.ID }
func (s Service) RecordKind() Kind   { return KindService }
func (s Service) RecordBody() string { return s.Body }

func (s Service) Fields() map[string]any {
	return map[string]any{
		"title":           s.Title,
		"description":     s.Description,
		"longDescription": s.LongDescription,
		"icon":            s.Icon,
	}
}

type Course struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Category         string     `json:"category"`
	Image            *string    `json:"image"`
	Duration         string     `json:"duration"`
	Price            float64    `json:"price"`
	Type             CourseType `json:"type"`
	Description      string     `json:"description"`
	RegistrationLink *string    `json:"registrationLink,omitempty"`
	Body             string     `json:"body"`
}

func (c Course) RecordID() string   { return c.ID }
func (c Course) RecordKind() Kind   { return KindCourse }
func (c Course) RecordBody() string { return c.Body }

func (c Course) Fields() map[string]any {
	f := map[string]any{
		"title":       c.Title,
		"category":    c.Category,
		"duration":    c.Duration,
		"price":       c.Price,
		"type":        string(c.Type),
		"description": c.Description,
	}
	putOptional(f, "image", c.Image)
	putOptional(f, "registrationLink", c.RegistrationLink)
	return f
}

type Event struct {
	ID               string        `json:"id"`
	Slug             string        `json:"slug"`
	Title            string        `json:"title"`
	Type             string        `json:"type"`
	Access           Access        `json:"access"`
	Price            float64       `json:"price"`
	Date             string        `json:"date"`
	Location         string        `json:"location"`
	Category         EventCategory `json:"category"`
	Image            *string       `json:"image"`
	RegistrationLink *string       `json:"registrationLink,omitempty"`
	Body             string        `json:"body"`

	date  time.Time
	dated bool
}

func (e Event) RecordID() string        { return e.ID }
func (e Event) RecordKind() Kind        { return KindEvent }
func (e Event) RecordBody() string      { return e.Body }
func (e Event) When() (time.Time, bool) { return e.date, e.dated }

func (e Event) Fields() map[string]any {
	f := map[string]any{
		"title":    e.Title,
		"type":     e.Type,
		"access":   string(e.Access),
		"price":    e.Price,
		"date":     e.Date,
		"location": e.Location,
		"category": string(e.Category),
	}
	putOptional(f, "image", e.Image)
	putOptional(f, "registrationLink", e.RegistrationLink)
	return f
}

type BlogPost struct {
	ID       string  `json:"id"`
	Slug     string  `json:"slug"`
	Title    string  `json:"title"`
	Excerpt  string  `json:"excerpt"`
	Date     string  `json:"date"`
	Image    *string `json:"image"`
	Category string  `json:"category"`
	Body     string  `json:"body"`

	date  time.Time
	dated bool
}

func (p BlogPost) RecordID() string        { return p.ID }
func (p BlogPost) RecordKind() Kind        { return KindBlogPost }
func (p BlogPost) RecordBody() string      { return p.Body }
func (p BlogPost) When() (time.Time, bool) { return p.date, p.dated }

func (p BlogPost) Fields() map[string]any {
	f := map[string]any{
		"title":    p.Title,
		"excerpt":  p.Excerpt,
		"date":     p.Date,
		"category": p.Category,
	}
	putOptional(f, "image", p.Image)
	return f
}

type CaseStudy struct {
	ID     string  `json:"id"`
	Client string  `json:"client"`
	Title  string  `json:"title"`
	Metric string  `json:"metric"`
	Image  *string `json:"image"`
	Body   string  `json:"body"`
}

func (c CaseStudy) RecordID() string   { return c.ID }
func (c CaseStudy) RecordKind() Kind   { return KindCaseStudy }
func (c CaseStudy) RecordBody() string { return c.Body }

func (c CaseStudy) Fields() map[string]any {
	f := map[string]any{
		"client": c.Client,
		"title":  c.Title,
		"metric": c.Metric,
	}
	putOptional(f, "image", c.Image)
	return f
}

func putOptional(f map[string]any, key string, v *string) {
	if v != nil {
		f[key] = *v
	}
}
