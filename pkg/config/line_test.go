package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Line
	}{
		{name: "blank", text: "", want: CommentLine{}},
		{name: "whitespace", text: "   \t", want: CommentLine{}},
		{name: "hash comment", text: "# comment", want: CommentLine{}},
		{name: "semicolon comment", text: "  ; comment", want: CommentLine{}},
		{name: "section", text: "[oxygen]", want: SectionHeader{Name: "oxygen"}},
		{name: "section with spaces", text: " [ my theme ] ", want: SectionHeader{Name: "my theme"}},
		{name: "steps", text: "steps = 3", want: KeyValue{Key: "steps", Value: "3"}},
		{name: "key case is kept", text: "Steps = 3", want: KeyValue{Key: "Steps", Value: "3"}},
		{name: "no spaces", text: "dir=/tmp/icons", want: KeyValue{Key: "dir", Value: "/tmp/icons"}},
		{
			name: "step definition",
			text: "charging = 2:missing.png:low.png, 10:low.png",
			want: KeyValue{Key: "charging", Value: "2:missing.png:low.png, 10:low.png"},
		},
		{name: "garbage", text: "this is not a config line", want: Unrecognized{Text: "this is not a config line"}},
		{name: "unclosed section", text: "[broken", want: Unrecognized{Text: "[broken"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLine(tt.text))
		})
	}
}
