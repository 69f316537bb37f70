package render

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"2023-01-15", "Jan 2023"},
		{"2024-12-01", "Dec 2024"},
		{"2023-06", "Jun 2023"},
		{"", ""},
		{"soon", "soon"},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.iso); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.iso, got, tt.want)
		}
	}
}

func TestDateRange(t *testing.T) {
	if got := DateRange("2023-01-15", "2024-06-01", false); got != "Jan 2023 - Jun 2024" {
		t.Errorf("DateRange() = %q", got)
	}
	if got := DateRange("2023-01-15", "2024-06-01", true); got != "Jan 2023 - Present" {
		t.Errorf("current DateRange() = %q, want Present", got)
	}
	if got := DateRange("2023-01-15", "", false); got != "Jan 2023 - Present" {
		t.Errorf("open-ended DateRange() = %q, want Present", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"2023-01-15", "2023-07-15", "6 months"},
		{"2023-01-15", "2023-02-01", "1 month"},
		{"2023-01-15", "2023-01-20", "0 months"},
		{"2023-01-01", "2024-01-01", "1 year"},
		{"2022-01-01", "2024-04-01", "2 years 3 months"},
		{"2023-01-01", "2024-02-01", "1 year 1 month"},
		{"2024-06-01", "2023-01-01", "0 months"},
	}

	for _, tt := range tests {
		if got := Duration(tt.start, tt.end); got != tt.want {
			t.Errorf("Duration(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestDurationUnparseable(t *testing.T) {
	if got := Duration("soon", "2024-01-01"); got != "" {
		t.Errorf("Duration() = %q, want empty for bad start", got)
	}
	if got := Duration("2023-01-01", "later"); got != "" {
		t.Errorf("Duration() = %q, want empty for bad end", got)
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize(1, "person", "people"); got != "1 person" {
		t.Errorf("Pluralize(1) = %q", got)
	}
	if got := Pluralize(4, "person", "people"); got != "4 people" {
		t.Errorf("Pluralize(4) = %q", got)
	}
	if got := Pluralize(0, "month", "months"); got != "0 months" {
		t.Errorf("Pluralize(0) = %q", got)
	}
}
