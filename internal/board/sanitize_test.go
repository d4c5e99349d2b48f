package board

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"", ""},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"  collapse   runs  ", "collapse runs"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"\x1b[1;4;38;5;196mstyled\x1b[m", "styled"},
		{"\x1b]0;title\x07after", "after"},
		{"\x1b]8;;http://x\x1b\\link\x1b]8;;\x1b\\", "link"},
		{"bell\x07and\x00nul", "bell and nul"},
		{"cursor\x1b[2Jwipe", "cursorwipe"},
		{"zero​width‮flip", "zerowidthflip"},
		{"unicode stays: héllo wörld ★", "unicode stays: héllo wörld ★"},
	}
	for _, tt := range tests {
		got := Sanitize(tt.input)
		if got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizeNeverEmitsControlBytes(t *testing.T) {
	hostile := "a\x1b[31m\x1b]0;x\x07b\r\n\x00\x1bc"
	got := Sanitize(hostile)
	if strings.ContainsAny(got, "\x1b\x07\x00\r\n\t") {
		t.Errorf("sanitized output still contains control bytes: %q", got)
	}
}
