package board

import (
	"errors"
	"strings"
	"testing"
)

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name      string
		draft     Draft
		wantField string
	}{
		{"valid", Draft{Text: "hi", Name: "bob", Category: Facts}, ""},
		{"empty text", Draft{Text: "", Name: "bob", Category: Facts}, "text"},
		{"whitespace text", Draft{Text: "   \t ", Name: "bob", Category: Facts}, "text"},
		{"empty name", Draft{Text: "hi", Name: "", Category: Facts}, "name"},
		{"whitespace name", Draft{Text: "hi", Name: "  ", Category: Facts}, "name"},
		{"text too long", Draft{Text: strings.Repeat("a", MaxTextLen+1), Name: "bob", Category: Facts}, "text"},
		{"name too long", Draft{Text: "hi", Name: strings.Repeat("b", MaxNameLen+1), Category: Facts}, "name"},
		{"bad category", Draft{Text: "hi", Name: "bob", Category: "gossip"}, "category"},
		{"wildcard category", Draft{Text: "hi", Name: "bob", Category: All}, "category"},
	}
	for _, tt := range tests {
		err := tt.draft.Validate()
		if tt.wantField == "" {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tt.name, err)
			}
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", tt.name, err)
			continue
		}
		if verr.Field != tt.wantField {
			t.Errorf("%s: field = %q, want %q", tt.name, verr.Field, tt.wantField)
		}
	}
}

func TestDraftValidateMaxLengthsByRune(t *testing.T) {
	// Multi-byte runes count as single characters
	d := Draft{Text: strings.Repeat("ね", MaxTextLen), Name: "bob", Category: Thoughts}
	if err := d.Validate(); err != nil {
		t.Errorf("text of exactly %d runes should validate, got %v", MaxTextLen, err)
	}
}

func TestDraftTrimmed(t *testing.T) {
	d := Draft{Text: "  hello  ", Name: "\tbob\n", Category: Quotes}
	got := d.Trimmed()
	if got.Text != "hello" || got.Name != "bob" {
		t.Errorf("Trimmed() = %+v", got)
	}
	if got.Category != Quotes {
		t.Errorf("Trimmed() must not touch category, got %q", got.Category)
	}
}
