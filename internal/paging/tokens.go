package paging

import "strconv"

type tokenKind uint8

const (
	kindNumber tokenKind = iota
	kindEllipsis
)

// Ellipsis slots. A token list holds at most one of each.
const (
	SlotLeading  = 0
	SlotTrailing = 1
)

// Token is one entry in a page selector: either a page number or an
// ellipsis marker. Ellipses are display only and never resolve to a page.
type Token struct {
	kind  tokenKind
	value int // page number, or slot for ellipses
}

// Number returns a token for page n.
func Number(n int) Token {
	return Token{kind: kindNumber, value: n}
}

// Ellipsis returns a gap marker for the given slot.
func Ellipsis(slot int) Token {
	return Token{kind: kindEllipsis, value: slot}
}

// IsEllipsis reports whether t is a gap marker.
func (t Token) IsEllipsis() bool {
	return t.kind == kindEllipsis
}

// Page returns the page number, or false for ellipses.
func (t Token) Page() (int, bool) {
	if t.kind != kindNumber {
		return 0, false
	}
	return t.value, true
}

// String renders the token label.
func (t Token) String() string {
	if t.kind == kindEllipsis {
		return "..."
	}
	return strconv.Itoa(t.value)
}

// Tokens computes the page selector for current out of total pages.
//
// Up to maxVisible pages every page is listed. Beyond that the list is page
// 1, a leading gap when current > 3, the window current-1..current+1 kept
// inside 2..total-1, a trailing gap when current < total-2, and the last
// page. Non-positive maxVisible uses DefaultMaxVisible.
func Tokens(current, total, maxVisible int) []Token {
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	if total <= maxVisible {
		out := make([]Token, 0, max(total, 0))
		for p := 1; p <= total; p++ {
			out = append(out, Number(p))
		}
		return out
	}

	out := make([]Token, 0, 9)
	out = append(out, Number(1))
	if current > 3 {
		out = append(out, Ellipsis(SlotLeading))
	}

	start := max(2, current-1)
	end := min(total-1, current+1)
	for p := start; p <= end; p++ {
		out = append(out, Number(p))
	}

	if current < total-2 {
		out = append(out, Ellipsis(SlotTrailing))
	}
	if total > 1 {
		out = append(out, Number(total))
	}
	return out
}
