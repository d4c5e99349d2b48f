package board

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field limits enforced before a draft is allowed near the network.
const (
	MaxTextLen = 280
	MaxNameLen = 32
)

// Draft is a sentence waiting to be posted.
type Draft struct {
	Text     string   `json:"text"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// ValidationError reports a draft field that fails local checks. A draft
// that fails validation is never sent to the server.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// Validate checks the draft locally: text and name must be non-empty
// after trimming, within length limits, and the category must be one of
// the postable values.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(d.Text) > MaxTextLen {
		return &ValidationError{Field: "text", Reason: fmt.Sprintf("must be at most %d characters", MaxTextLen)}
	}
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(d.Name) > MaxNameLen {
		return &ValidationError{Field: "name", Reason: fmt.Sprintf("must be at most %d characters", MaxNameLen)}
	}
	if _, err := ParseCategory(string(d.Category)); err != nil {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("%q is not a known category", d.Category)}
	}
	return nil
}

// Trimmed returns a copy with surrounding whitespace removed from the
// text and name, which is what actually gets posted.
func (d Draft) Trimmed() Draft {
	d.Text = strings.TrimSpace(d.Text)
	d.Name = strings.TrimSpace(d.Name)
	return d
}
