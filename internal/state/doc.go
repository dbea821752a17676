// Package state holds the roster query state and the derived views the UI
// renders from it.
//
// # Overview
//
// The Engine is the single owner of the three user inputs (search text,
// status filter, current page) and of the matching subset derived from
// them. Everything else the display needs (page count, visible window,
// page tokens, previous/next availability) is derived on demand in
// Snapshot and never stored.
//
// # Recompute Cycle
//
// Filtering is modelled as an explicit two-stage state machine:
//
//	          SetSearch / SetStatus
//	  ┌──────┐ ───────────────────→ ┌───────────┐
//	  │ Idle │                      │ Computing │ ──┐ newer SetSearch /
//	  └──────┘ ←─────────────────── └───────────┘ ←─┘ SetStatus supersedes
//	          Apply(latest result)
//
// Input updates are synchronous: the query changes, the page resets to 1
// and a new generation number is issued, all under the write lock. The
// returned Request is then handed to Compute, typically from a Bubble Tea
// command running on its own goroutine:
//
//	req := engine.SetSearch(text)      // immediate
//	res, ok := engine.Compute(req)     // may run concurrently
//	if ok {
//		engine.Apply(res)              // dropped if superseded meanwhile
//	}
//
// Compute checks between chunks of records whether its generation is still
// the newest and stops early if not. Apply discards any result whose
// generation is not the newest, so a slow, stale computation can never
// overwrite a newer one. No cancellation token is involved: superseding is
// the only way a computation is abandoned.
//
// # Page Navigation
//
// GoToPage, PrevPage, NextPage and LastPage change only the page. They do
// not start a new generation, because the matching subset is unchanged.
// GoToPage takes the page as requested; PrevPage and NextPage refuse to
// move past the first or last page, mirroring disabled boundary controls.
//
// # Concurrency Model
//
// The Engine guards its fields with a sync.RWMutex. The record slice is
// shared read-only with every computation and must not be modified after
// NewEngine. Snapshot copies the visible window so callers may hold on to
// it freely.
package state
