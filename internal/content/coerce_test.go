package content

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/punchlinehub/sitecontent/internal/frontmatter"
)

func strPtr(s string) *string { return &s }

func TestCoercer_Course_AppliesDefaults(t *testing.T) {
	c, err := Coercer{}.Course("cx-protocol", map[string]any{}, "")
	require.NoError(t, err)
	require.Equal(t, Course{ID: "cx-protocol", Type: CourseFree}, c)
}

func TestCoercer_Course_ReadsAllFields(t *testing.T) {
	fields := frontmatter.ParseFields([]byte(`title: Sales Mastery Accelerator
category: Sales
image: images/uploads/sales.jpg
duration: 6 Weeks
price: 15000
type: Paid
description: Close high-ticket deals.
registrationLink: https://forms.example.com/sales
extra: ignored
`))

	c, err := Coercer{}.Course("sales-mastery", fields, "\nLong form.\n")
	require.NoError(t, err)
	require.Equal(t, Course{
		ID:               "sales-mastery",
		Title:            "Sales Mastery Accelerator",
		Category:         "Sales",
		Image:            strPtr("/images/uploads/sales.jpg"),
		Duration:         "6 Weeks",
		Price:            15000,
		Type:             CoursePaid,
		Description:      "Close high-ticket deals.",
		RegistrationLink: strPtr("https://forms.example.com/sales"),
		Body:             "Long form.",
	}, c)
}

func TestCoercer_Course_NonNumericPriceIsMalformed(t *testing.T) {
	_, err := Coercer{}.Course("growth", map[string]any{"type": "paid", "price": "fifteen thousand"}, "")

	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, KindCourse, malformed.Kind)
	require.Equal(t, "growth", malformed.ID)
	require.Equal(t, "price", malformed.Field)
	require.True(t, errors.Is(err, ErrMalformedRecord))
}

func TestCoercer_Course_UnknownTypeIsMalformed(t *testing.T) {
	_, err := Coercer{}.Course("vip", map[string]any{"type": "premium"}, "")

	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, "type", malformed.Field)
}

func TestCoercer_Course_BlankPriceDefaultsToZero(t *testing.T) {
	c, err := Coercer{}.Course("free-intro", map[string]any{"price": "  "}, "")
	require.NoError(t, err)
	require.Zero(t, c.Price)
}

func TestCoercer_Event_Defaults(t *testing.T) {
	e, err := Coercer{}.Event("q4-intensive", map[string]any{"title": "Q4 Sales Strategy Intensive"}, "")
	require.NoError(t, err)
	require.Equal(t, "q4-intensive", e.Slug)
	require.Equal(t, AccessFree, e.Access)
	require.Equal(t, EventActivity, e.Category)
	require.Nil(t, e.Image)
	require.Nil(t, e.RegistrationLink)
	require.Zero(t, e.Price)
	_, ok := e.When()
	require.False(t, ok)
}

func TestCoercer_Event_ParsesDateInLocation(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)
	e, err := Coercer{Location: lagos}.Event("q4", map[string]any{
		"date":     "Oct 15, 2023",
		"category": "Masterclass",
		"access":   "paid",
		"price":    float64(50000),
	}, "")
	require.NoError(t, err)

	when, ok := e.When()
	require.True(t, ok)
	require.True(t, time.Date(2023, time.October, 15, 0, 0, 0, 0, lagos).Equal(when))
	require.Equal(t, EventMasterclass, e.Category)
	require.Equal(t, AccessPaid, e.Access)
	require.Equal(t, "Oct 15, 2023", e.Date)
}

func TestCoercer_Event_UnparsableDateIsSoft(t *testing.T) {
	e, err := Coercer{}.Event("tbd", map[string]any{"date": "sometime next spring"}, "")
	require.NoError(t, err)
	require.Equal(t, "sometime next spring", e.Date)
	_, ok := e.When()
	require.False(t, ok)
}

func TestCoercer_BlogPost_ImageNormalization(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  *string
	}{
		{"absent", nil, nil},
		{"blank", "   ", nil},
		{"relative", "uploads/a.png", strPtr("/uploads/a.png")},
		{"rooted", "/uploads/a.png", strPtr("/uploads/a.png")},
		{"double slash", "//uploads/a.png", strPtr("/uploads/a.png")},
		{"absolute", "https://picsum.photos/seed/blog/800/600", strPtr("https://picsum.photos/seed/blog/800/600")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]any{}
			if tt.value != nil {
				fields["image"] = tt.value
			}
			p, err := Coercer{}.BlogPost("post", fields, "")
			require.NoError(t, err)
			require.Equal(t, tt.want, p.Image)
		})
	}
}

func TestCoercer_ScalarsRenderAsText(t *testing.T) {
	cs, err := Coercer{}.CaseStudy("zest", map[string]any{
		"client": "Zest Beverages",
		"title":  float64(1984),
		"metric": true,
	}, "")
	require.NoError(t, err)
	require.Equal(t, "1984", cs.Title)
	require.Equal(t, "true", cs.Metric)
}

func TestCoercer_EmptyIDIsMalformed(t *testing.T) {
	_, err := Coercer{}.Service(" ", map[string]any{}, "")
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestCoercer_UnknownKind(t *testing.T) {
	_, err := Coercer{}.Coerce(Kind("podcast"), "ep1", nil, "")
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestCoercer_IsIdempotent(t *testing.T) {
	c := Coercer{Location: time.UTC}
	docs := map[Kind]string{
		KindService:   "---\ntitle: Strategic Consultancy\nicon: Target\ndescription: Bespoke plans\n---\nBody\n",
		KindCourse:    "---\ntitle: Leadership\nprice: 20000\ntype: paid\nimage: img/lead.jpg\n---\n",
		KindEvent:     "---\ntitle: Bootcamp\ndate: 2023-08-10\ncategory: corporate\nregistrationLink: https://x.example\n---\n",
		KindBlogPost:  "---\ntitle: Digital Ads\ndate: 2023-06-01\nimage: /img/ads.png\n---\nText\n",
		KindCaseStudy: "---\nclient: SwiftPay\ntitle: Growth\nmetric: 3x\n---\nStory\n",
	}
	for kind, raw := range docs {
		parsed := Parse(Document{Kind: kind, ID: "doc", Raw: []byte(raw)})

		first, err := c.Coerce(kind, parsed.ID, parsed.Metadata, parsed.Body)
		require.NoError(t, err)
		second, err := c.Coerce(kind, first.RecordID(), first.Fields(), first.RecordBody())
		require.NoError(t, err)
		require.Equal(t, first, second, "kind %s", kind)
	}
}

func TestParseCourseType(t *testing.T) {
	for in, want := range map[string]CourseType{"all": CourseAll, "ALL": CourseAll, "free": CourseFree, " paid ": CoursePaid} {
		got, err := ParseCourseType(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseCourseType("premium")
	require.Error(t, err)
}
