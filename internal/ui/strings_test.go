package ui

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{in: "  Jane Doe  ", limit: 0, want: "Jane Doe"},
		{in: "Jane Doe", limit: 20, want: "Jane Doe"},
		{in: "Okello Chambers", limit: 8, want: "Okello …"},
		{in: "Okello", limit: 1, want: "O"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestFitPadsToWidth(t *testing.T) {
	if got := fit("ab", 5); got != "ab   " {
		t.Fatalf("fit = %q, want %q", got, "ab   ")
	}
	if got := fit("abcdefgh", 4); got != "abc…" {
		t.Fatalf("fit = %q, want %q", got, "abc…")
	}
	if got := fit("abc", 0); got != "" {
		t.Fatalf("fit zero width = %q, want empty", got)
	}
}

func TestOrDash(t *testing.T) {
	if orDash(" ") != emptyCell || orDash("") != emptyCell {
		t.Fatal("blank value not replaced")
	}
	if orDash("a@b.example") != "a@b.example" {
		t.Fatal("value replaced")
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		cursor, n, capacity int
		start, end          int
	}{
		{cursor: 0, n: 5, capacity: 10, start: 0, end: 5},
		{cursor: 0, n: 50, capacity: 10, start: 0, end: 10},
		{cursor: 25, n: 50, capacity: 10, start: 20, end: 30},
		{cursor: 49, n: 50, capacity: 10, start: 40, end: 50},
		{cursor: 3, n: 50, capacity: 0, start: 0, end: 0},
	}
	for _, tt := range tests {
		start, end := visibleRange(tt.cursor, tt.n, tt.capacity)
		if start != tt.start || end != tt.end {
			t.Errorf("visibleRange(%d, %d, %d) = [%d, %d), want [%d, %d)",
				tt.cursor, tt.n, tt.capacity, start, end, tt.start, tt.end)
		}
	}
}

func TestShowingText_GroupsOnlyTheTotal(t *testing.T) {
	p := message.NewPrinter(language.English)
	tests := []struct {
		start, rows, total int
		want               string
	}{
		{start: 0, rows: 10, total: 25, want: "Showing 1-10 of 25"},
		{start: 1000, rows: 50, total: 12345, want: "Showing 1001-1050 of 12,345"},
	}
	for _, tt := range tests {
		if got := showingText(p, tt.start, tt.rows, tt.total); got != tt.want {
			t.Errorf("showingText(%d, %d, %d) = %q, want %q", tt.start, tt.rows, tt.total, got, tt.want)
		}
	}
}
