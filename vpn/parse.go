package vpn

import (
	"regexp"
	"strings"
)

// Label binds a field name to the label nordvpn prints in front of it,
// e.g. {"host", "Hostname"} for "Hostname: de123.nordvpn.com".
type Label struct {
	Field string
	Text  string
}

// Labels is an ordered label set. Order matters: on each line the first
// matching label wins.
type Labels struct {
	fields   []string
	patterns []*regexp.Regexp
}

// NewLabels compiles a label set. Labels match case-insensitively anywhere
// in a line and capture the rest of the line after the colon.
func NewLabels(labels ...Label) *Labels {
	l := &Labels{
		fields:   make([]string, 0, len(labels)),
		patterns: make([]*regexp.Regexp, 0, len(labels)),
	}
	for _, label := range labels {
		l.fields = append(l.fields, label.Field)
		l.patterns = append(l.patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(label.Text)+`:\s*(.*)`))
	}
	return l
}

// Fields holds the values found by ParseFields, keyed by field name.
type Fields map[string]string

// Get returns the value of a field and whether it was present.
func (f Fields) Get(field string) (string, bool) {
	v, ok := f[field]
	return v, ok
}

// assign copies a present field into dst and leaves dst alone otherwise.
func (f Fields) assign(field string, dst *string) {
	if v, ok := f[field]; ok {
		*dst = v
	}
}

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return lineBreak.Split(text, -1)
}

// ParseFields extracts labelled values from text one line at a time.
// A value that trims to empty is discarded; a later line with the same
// label overwrites an earlier one.
func ParseFields(text string, labels *Labels) Fields {
	fields := make(Fields)
	for _, line := range splitLines(text) {
		for i, re := range labels.patterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if value := strings.TrimSpace(m[1]); value != "" {
				fields[labels.fields[i]] = value
			}
			break
		}
	}
	return fields
}

// ParseCSVLine returns the comma separated items on the last non-blank line
// of text. Blank items are dropped.
func ParseCSVLine(text string) []string {
	lines := splitLines(text)
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		tokens := strings.Split(line, ",")
		items := make([]string, 0, len(tokens))
		for _, token := range tokens {
			if token = strings.TrimSpace(token); token != "" {
				items = append(items, token)
			}
		}
		return items
	}
	return []string{}
}
