package board

import "testing"

func TestFiltersValues(t *testing.T) {
	f := Filters{Category: Jokes, User: All, Sort: SortNewest, Search: ""}
	v := f.Values()

	if len(v) != 4 {
		t.Fatalf("expected exactly 4 query keys, got %d: %v", len(v), v)
	}
	wantKeys := map[string]string{
		"category": "jokes",
		"user":     "all",
		"sortBy":   "newest",
		"search":   "",
	}
	for k, want := range wantKeys {
		if got := v.Get(k); got != want {
			t.Errorf("query key %s = %q, want %q", k, got, want)
		}
	}
	if got, want := v.Encode(), "category=jokes&search=&sortBy=newest&user=all"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestFiltersValuesCarryEverything(t *testing.T) {
	f := Filters{Category: Facts, User: "bob", Sort: SortOldest, Search: "cats & dogs"}
	v := f.Values()
	if len(v) != 4 {
		t.Fatalf("expected exactly 4 query keys, got %d", len(v))
	}
	if got := v.Get("search"); got != "cats & dogs" {
		t.Errorf("search = %q, want %q", got, "cats & dogs")
	}
	if got := v.Get("user"); got != "bob" {
		t.Errorf("user = %q, want %q", got, "bob")
	}
}

func TestFiltersIsDefault(t *testing.T) {
	if !DefaultFilters().IsDefault() {
		t.Error("DefaultFilters() should be default")
	}

	tests := []struct {
		name string
		mod  func(*Filters)
	}{
		{"category", func(f *Filters) { f.Category = Quotes }},
		{"user", func(f *Filters) { f.User = "alice" }},
		{"sort", func(f *Filters) { f.Sort = SortOldest }},
		{"search", func(f *Filters) { f.Search = "x" }},
	}
	for _, tt := range tests {
		f := DefaultFilters()
		tt.mod(&f)
		if f.IsDefault() {
			t.Errorf("%s changed but IsDefault() still true", tt.name)
		}
	}
}

func TestFiltersSummary(t *testing.T) {
	tests := []struct {
		name string
		f    Filters
		want string
	}{
		{"defaults", DefaultFilters(), "newest first"},
		{"category only", Filters{Category: Jokes, User: All, Sort: SortNewest}, "jokes · newest first"},
		{"user only", Filters{Category: All, User: "alice", Sort: SortOldest}, "by alice · oldest first"},
		{
			"everything",
			Filters{Category: Facts, User: "bob", Sort: SortAuthor, Search: "cat"},
			"facts · by bob · matching \"cat\" · by author name",
		},
	}
	for _, tt := range tests {
		if got := tt.f.Summary(); got != tt.want {
			t.Errorf("%s: Summary() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSummaryNeverEmpty(t *testing.T) {
	if DefaultFilters().Summary() == "" {
		t.Error("summary must include the sort phrase even with default filters")
	}
}
