package config

import (
	"regexp"
	"strings"
)

// Line is one parsed line of a theme file: CommentLine, SectionHeader,
// KeyValue or Unrecognized.
type Line interface {
	isLine()
}

// CommentLine is a blank line or a line starting with '#' or ';'.
type CommentLine struct{}

// SectionHeader starts a theme block: [name].
type SectionHeader struct {
	Name string
}

// KeyValue is a key = value line. The key is kept as written and not
// validated here; keys are case sensitive.
type KeyValue struct {
	Key   string
	Value string
}

// Unrecognized is any other non-blank line.
type Unrecognized struct {
	Text string
}

func (CommentLine) isLine()   {}
func (SectionHeader) isLine() {}
func (KeyValue) isLine()      {}
func (Unrecognized) isLine()  {}

var (
	sectionRegex  = regexp.MustCompile(`^\[\s*([^\]]+?)\s*\]$`)
	keyValueRegex = regexp.MustCompile(`^(\w+)\s*=\s*(.*)$`)
)

// ParseLine classifies a single line of a theme file.
func ParseLine(text string) Line {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
		return CommentLine{}
	}

	if matches := sectionRegex.FindStringSubmatch(trimmed); matches != nil {
		return SectionHeader{Name: matches[1]}
	}

	if matches := keyValueRegex.FindStringSubmatch(trimmed); matches != nil {
		return KeyValue{
			Key:   matches[1],
			Value: strings.TrimSpace(matches[2]),
		}
	}

	return Unrecognized{Text: trimmed}
}
