package frontmatter

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
)

// Delimiter is the marker line that opens and closes a frontmatter block.
const Delimiter = "---"

// Style captures the newline convention of a document so that Join can
// reproduce the exact delimiter lines Split removed.
type Style struct {
	Newline string
	// ClosedAtEOF is set when the closing marker is the last line and has no
	// trailing newline.
	ClosedAtEOF bool
}

// Split separates the frontmatter block from the body.
//
// The block must open with a Delimiter line at byte zero and close with a
// Delimiter line. When either marker is missing, had is false and body is the
// full input: a document without structured fields is valid, not an error.
func Split(content []byte) (raw []byte, body []byte, had bool, style Style) {
	style = detectStyle(content)

	nl := style.Newline
	open := []byte(Delimiter + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, style
	}

	start := len(open)
	rest := content[start:]

	// Empty block: the closing marker directly follows the opening one.
	if bytes.HasPrefix(rest, []byte(Delimiter+nl)) {
		return []byte{}, rest[len(Delimiter)+len(nl):], true, style
	}
	if bytes.Equal(rest, []byte(Delimiter)) {
		style.ClosedAtEOF = true
		return []byte{}, []byte{}, true, style
	}

	closeSeq := []byte(nl + Delimiter + nl)
	if idx := bytes.Index(rest, closeSeq); idx >= 0 {
		end := idx + len(nl)
		return rest[:end], rest[idx+len(closeSeq):], true, style
	}

	// Closing marker as the final line without a trailing newline.
	closeEOF := []byte(nl + Delimiter)
	if bytes.HasSuffix(rest, closeEOF) {
		style.ClosedAtEOF = true
		end := len(rest) - len(Delimiter)
		return rest[:end], []byte{}, true, style
	}

	return nil, content, false, style
}

// Join reassembles a document from a raw frontmatter block and body.
//
// If had is false, Join returns body as-is.
func Join(raw []byte, body []byte, had bool, style Style) []byte {
	if !had {
		return body
	}

	nl := style.Newline
	if nl == "" {
		nl = "\n"
	}

	out := make([]byte, 0, len(raw)+len(body)+2*(len(Delimiter)+len(nl)))
	out = append(out, Delimiter+nl...)
	out = append(out, raw...)
	out = append(out, Delimiter...)
	if !style.ClosedAtEOF {
		out = append(out, nl...)
	}
	out = append(out, body...)
	return out
}

// ParseFields reads `key: value` lines from a raw frontmatter block.
//
// Lines without a ':' separator, or with an empty key, are skipped. Values are
// normalized by NormalizeValue. A later duplicate key overwrites an earlier one.
func ParseFields(raw []byte) map[string]any {
	fields := map[string]any{}
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSuffix(line, "\r")
		sep := strings.IndexByte(line, ':')
		if sep < 0 {
			continue
		}
		key := strings.TrimSpace(line[:sep])
		if key == "" {
			continue
		}
		fields[key] = NormalizeValue(line[sep+1:])
	}
	return fields
}

var numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// NormalizeValue turns one raw frontmatter value into a scalar.
//
// One layer of matching surrounding quotes is stripped, then the literal
// tokens true and false become booleans and decimal numbers become float64.
// Everything else stays a string.
func NormalizeValue(raw string) any {
	v := unquote(strings.TrimSpace(raw))
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	if numberPattern.MatchString(v) {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return v
}

func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	first, last := v[0], v[len(v)-1]
	if (first == '"' || first == '\'') && first == last {
		return v[1 : len(v)-1]
	}
	return v
}

func detectStyle(content []byte) Style {
	if idx := bytes.IndexByte(content, '\n'); idx > 0 && content[idx-1] == '\r' {
		return Style{Newline: "\r\n"}
	}
	return Style{Newline: "\n"}
}

// Parsed is a document decomposed into its frontmatter fields and body.
type Parsed struct {
	Fields map[string]any
	Raw    []byte
	Body   []byte
	Had    bool
	Style  Style
}

// Parse splits content and reads its fields. It never fails; malformed input
// degrades to an empty field set with the whole input as body.
func Parse(content []byte) Parsed {
	raw, body, had, style := Split(content)
	fields := map[string]any{}
	if had {
		fields = ParseFields(raw)
	}
	return Parsed{Fields: fields, Raw: raw, Body: body, Had: had, Style: style}
}

// Bytes reassembles the original document.
func (p Parsed) Bytes() []byte {
	return Join(p.Raw, p.Body, p.Had, p.Style)
}
