package collection

import (
	"time"

	"github.com/punchlinehub/sitecontent/internal/content"
)

func ServicePolicy(c content.Coercer) Policy[content.Service] {
	return Policy[content.Service]{
		Kind: content.KindService,
		Decode: func(d content.ParsedDocument) (content.Service, error) {
			return c.Service(d.ID, d.Metadata, d.Body)
		},
	}
}

func CoursePolicy(c content.Coercer) Policy[content.Course] {
	return Policy[content.Course]{
		Kind: content.KindCourse,
		Decode: func(d content.ParsedDocument) (content.Course, error) {
			return c.Course(d.ID, d.Metadata, d.Body)
		},
	}
}

// EventPolicy orders events soonest first.
func EventPolicy(c content.Coercer) Policy[content.Event] {
	return Policy[content.Event]{
		Kind: content.KindEvent,
		Decode: func(d content.ParsedDocument) (content.Event, error) {
			return c.Event(d.ID, d.Metadata, d.Body)
		},
		Order: OrderDateAscending,
		Date:  func(e content.Event) (time.Time, bool) { return e.When() },
	}
}

// BlogPostPolicy orders posts most recent first.
func BlogPostPolicy(c content.Coercer) Policy[content.BlogPost] {
	return Policy[content.BlogPost]{
		Kind: content.KindBlogPost,
		Decode: func(d content.ParsedDocument) (content.BlogPost, error) {
			return c.BlogPost(d.ID, d.Metadata, d.Body)
		},
		Order: OrderDateDescending,
		Date:  func(p content.BlogPost) (time.Time, bool) { return p.When() },
	}
}

func CaseStudyPolicy(c content.Coercer) Policy[content.CaseStudy] {
	return Policy[content.CaseStudy]{
		Kind: content.KindCaseStudy,
		Decode: func(d content.ParsedDocument) (content.CaseStudy, error) {
			return c.CaseStudy(d.ID, d.Metadata, d.Body)
		},
	}
}
