// Package redact keeps personally identifiable information out of log output.
// Field values are replaced with a fixed redaction marker before the line
// reaches the log sink, so raw emails, passwords and tokens are never stored.
package redact

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Redaction is the marker substituted for redacted field values.
const Redaction = "***"

// FilterDatum replaces the value of each named field in a "key=value"
// formatted message, where fields are delimited by separator.
func FilterDatum(fields []string, redaction, message, separator string) string {
	if len(fields) == 0 {
		return message
	}
	pattern := regexp.MustCompile(fmt.Sprintf(`(%s)=[^%s]*`, strings.Join(quoteAll(fields), "|"), regexp.QuoteMeta(separator)))
	return pattern.ReplaceAllString(message, "${1}="+redaction)
}

// Writer wraps a log sink and redacts configured JSON field values on the
// way through. It is placed under zerolog so no event can bypass it.
type Writer struct {
	out     io.Writer
	pattern *regexp.Regexp
}

// NewWriter builds a redacting writer for the given field names.
func NewWriter(out io.Writer, fields []string) *Writer {
	cleaned := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			cleaned = append(cleaned, f)
		}
	}
	var pattern *regexp.Regexp
	if len(cleaned) > 0 {
		pattern = regexp.MustCompile(fmt.Sprintf(`("(?:%s)"):"(?:[^"\\]|\\.)*"`, strings.Join(quoteAll(cleaned), "|")))
	}
	return &Writer{out: out, pattern: pattern}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.pattern == nil {
		return w.out.Write(p)
	}
	redacted := w.pattern.ReplaceAll(p, []byte(`${1}:"`+Redaction+`"`))
	if _, err := w.out.Write(redacted); err != nil {
		return 0, err
	}
	// Report the original length so callers never retry the tail.
	return len(p), nil
}

func quoteAll(fields []string) []string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = regexp.QuoteMeta(f)
	}
	return quoted
}
