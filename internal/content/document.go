package content

import (
	"path"
	"strings"

	"github.com/inful/mdfp"
	"golang.org/x/text/unicode/norm"

	"github.com/punchlinehub/sitecontent/internal/frontmatter"
)

// Document is one raw source file of a collection.
type Document struct {
	Kind Kind
	ID   string
	Raw  []byte
}

// IDFromFilename derives a document id from a file name: the base name
// without extension, lower-cased and NFC-normalized so that ids are stable
// across filesystems that store names decomposed.
func IDFromFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	stem := strings.TrimSuffix(base, path.Ext(base))
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(stem)))
}

// ParsedDocument is a Document split into metadata and body.
type ParsedDocument struct {
	Kind     Kind
	ID       string
	Metadata map[string]any
	Body     string

	source frontmatter.Parsed
}

// Parse splits doc into metadata and body. It never fails.
func Parse(doc Document) ParsedDocument {
	p := frontmatter.Parse(doc.Raw)
	return ParsedDocument{
		Kind:     doc.Kind,
		ID:       doc.ID,
		Metadata: p.Fields,
		Body:     string(p.Body),
		source:   p,
	}
}

// HadFrontmatter reports whether the source carried a metadata block.
func (d ParsedDocument) HadFrontmatter() bool {
	return d.source.Had
}

// Reassemble rebuilds the exact source bytes.
func (d ParsedDocument) Reassemble() []byte {
	return d.source.Bytes()
}

// Fingerprint is a content hash over the raw metadata block and body.
func (d ParsedDocument) Fingerprint() string {
	return mdfp.CalculateFingerprintFromParts(string(d.source.Raw), d.Body)
}
