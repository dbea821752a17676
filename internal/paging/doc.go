// Package paging plans client-side pagination: the visible window of a
// result set and the compressed list of page tokens for a page selector.
//
// The three entry points mirror what a page selector needs:
//
//   - Slice cuts the page-sized window out of the matching records.
//   - Tokens lists the page numbers to draw, collapsing runs into ellipses.
//   - Pager holds the current page and tells the previous/next controls
//     when to disable themselves.
//
// For 10 pages the selector reads:
//
//	current 1:  1 2 ... 10
//	current 5:  1 ... 4 5 6 ... 10
//	current 10: 1 ... 9 10
//
// Nothing here returns an error. Out-of-range pages produce empty windows.
package paging
