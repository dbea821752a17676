package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which auto layout draws cards.
	LayoutCompactWidth = 100

	// LayoutWideWidth is the width from which the table shows every column.
	LayoutWideWidth = 140
)

// Vertical chrome around the record list: header, search, summary and
// footer lines. The pagination bar adds one more when shown.
const chromeLines = 4

// cardLines is the height of one card including its border.
const cardLines = 6

// Timing constants.
const (
	// SearchDebounce is how long typing must pause before filtering starts.
	SearchDebounce = 150 * time.Millisecond
)

// visibleRange returns the [start, end) slice of n rows that fits in
// capacity rows while keeping cursor on screen.
func visibleRange(cursor, n, capacity int) (int, int) {
	if capacity <= 0 || n <= 0 {
		return 0, 0
	}
	if n <= capacity {
		return 0, n
	}
	start := cursor - capacity/2
	if start < 0 {
		start = 0
	}
	if start+capacity > n {
		start = n - capacity
	}
	return start, start + capacity
}
