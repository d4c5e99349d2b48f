package board

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"jokes", Jokes, false},
		{"THOUGHTS", Thoughts, false},
		{"  facts  ", Facts, false},
		{"other", Other, false},
		{"all", "", true},
		{"poetry", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		input   string
		want    SortOrder
		wantErr bool
	}{
		{"newest", SortNewest, false},
		{"Oldest", SortOldest, false},
		{"author", SortAuthor, false},
		{"recent", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSort(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSort(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSort(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategoriesExcludeWildcard(t *testing.T) {
	for _, c := range Categories() {
		if string(c) == All {
			t.Errorf("Categories() must not contain the %q wildcard", All)
		}
	}
	if DefaultCategory != Thoughts {
		t.Errorf("default category = %q, want %q", DefaultCategory, Thoughts)
	}
}
