package content

import "github.com/punchlinehub/sitecontent/internal/foundation/normalization"

// Kind names one of the content collections.
type Kind string

const (
	KindService   Kind = "service"
	KindCourse    Kind = "course"
	KindEvent     Kind = "event"
	KindBlogPost  Kind = "blogPost"
	KindCaseStudy Kind = "caseStudy"
)

// Kinds lists every collection kind in a fixed order.
var Kinds = []Kind{KindService, KindCourse, KindEvent, KindBlogPost, KindCaseStudy}

var defaultFolders = map[Kind]string{
	KindService:   "services",
	KindCourse:    "courses",
	KindEvent:     "events",
	KindBlogPost:  "blog",
	KindCaseStudy: "cases",
}

// Folder returns the default store folder for k.
func (k Kind) Folder() string {
	return defaultFolders[k]
}

func (k Kind) String() string {
	return string(k)
}

var kindNormalizer = normalization.NewNormalizer("collection kind", map[string]Kind{
	"service":   KindService,
	"services":  KindService,
	"course":    KindCourse,
	"courses":   KindCourse,
	"event":     KindEvent,
	"events":    KindEvent,
	"blogpost":  KindBlogPost,
	"blog":      KindBlogPost,
	"casestudy": KindCaseStudy,
	"cases":     KindCaseStudy,
}, "")

// ParseKind accepts a kind name or its folder name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	return kindNormalizer.NormalizeWithError(s)
}
