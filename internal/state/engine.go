package state

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/advocates/roster/internal/paging"
	"github.com/advocates/roster/internal/roster"
	"github.com/advocates/roster/internal/search"
)

// Phase is the recompute state of an Engine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseComputing
)

func (p Phase) String() string {
	if p == PhaseComputing {
		return "computing"
	}
	return "idle"
}

// Query is the user-controlled part of the view.
type Query struct {
	Search string
	Status roster.StatusFilter
	Page   int
}

// Request asks for the matching subset of one query generation.
type Request struct {
	Gen   uint64
	Query Query
}

// Result carries the matching subset computed for a Request.
type Result struct {
	Gen     uint64
	Matches []roster.Record
	Elapsed time.Duration
}

// Options configure an Engine.
type Options struct {
	PageSize   int
	MaxVisible int
	Logger     *zap.Logger
}

// Snapshot is a read-only copy of everything the display needs.
type Snapshot struct {
	// Gen is the newest issued generation.
	Gen          uint64
	Query        Query
	Phase        Phase
	TotalRecords int
	Matches      int
	TotalPages   int
	PageSize     int
	Window       paging.Window[roster.Record]
	Tokens       []paging.Token
	CanPrev      bool
	CanNext      bool
}

// Pending reports whether a newer matching subset is still being computed.
func (s Snapshot) Pending() bool {
	return s.Phase == PhaseComputing
}

// Engine owns the query state and its derived views. Input updates are
// applied immediately; filtering runs separately through Compute and lands
// through Apply, where results from superseded generations are dropped.
type Engine struct {
	mu         sync.RWMutex
	records    []roster.Record
	pageSize   int
	maxVisible int
	logger     *zap.Logger

	query   Query
	gen     uint64
	phase   Phase
	matches []roster.Record
}

// NewEngine builds an Engine over records, which must not be modified
// afterwards. The initial query matches everything on page 1.
func NewEngine(records []roster.Record, opts Options) *Engine {
	if opts.PageSize <= 0 {
		opts.PageSize = paging.DefaultPageSize
	}
	if opts.MaxVisible <= 0 {
		opts.MaxVisible = paging.DefaultMaxVisible
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Engine{
		records:    records,
		pageSize:   opts.PageSize,
		maxVisible: opts.MaxVisible,
		logger:     opts.Logger,
		query:      Query{Page: paging.FirstPage},
		matches:    search.Filter(records, "", roster.FilterAll),
	}
}

// SetSearch records new search text, resets to page 1 and starts a new
// generation.
func (e *Engine) SetSearch(text string) Request {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.query.Search = text
	return e.beginLocked()
}

// SetStatus records a new status filter, resets to page 1 and starts a new
// generation.
func (e *Engine) SetStatus(status roster.StatusFilter) Request {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.query.Status = status
	return e.beginLocked()
}

func (e *Engine) beginLocked() Request {
	e.query.Page = paging.FirstPage
	e.gen++
	e.phase = PhaseComputing
	return Request{Gen: e.gen, Query: e.query}
}

// IsLatest reports whether gen is the newest issued generation.
func (e *Engine) IsLatest(gen uint64) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return gen == e.gen
}

// Compute filters the record set for req. It gives up early, returning
// false, once a newer generation has been issued.
func (e *Engine) Compute(req Request) (Result, bool) {
	started := time.Now()
	keep := func() bool { return e.IsLatest(req.Gen) }

	matches, ok := search.FilterFunc(e.records, req.Query.Search, req.Query.Status, keep)
	if !ok {
		e.logger.Debug("recompute superseded", zap.Uint64("gen", req.Gen))
		return Result{}, false
	}
	return Result{Gen: req.Gen, Matches: matches, Elapsed: time.Since(started)}, true
}

// Apply installs res when it belongs to the newest generation and returns
// the engine to idle. Stale results are discarded and Apply returns false.
func (e *Engine) Apply(res Result) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if res.Gen != e.gen {
		e.logger.Debug("recompute discarded",
			zap.Uint64("gen", res.Gen),
			zap.Uint64("latest", e.gen))
		return false
	}
	e.matches = res.Matches
	e.phase = PhaseIdle
	e.logger.Debug("recompute applied",
		zap.Uint64("gen", res.Gen),
		zap.Int("matches", len(res.Matches)),
		zap.Duration("elapsed", res.Elapsed))
	return true
}

// Run computes and applies req synchronously.
func (e *Engine) Run(req Request) bool {
	res, ok := e.Compute(req)
	if !ok {
		return false
	}
	return e.Apply(res)
}

// GoToPage moves to page without recomputing the matching subset. The page
// is taken as requested; callers keep it within 1..TotalPages.
func (e *Engine) GoToPage(page int) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	pager := e.pagerLocked()
	e.query.Page = pager.GoTo(page)
	return e.query.Page
}

// PrevPage steps back one page unless already on the first page.
func (e *Engine) PrevPage() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	pager := e.pagerLocked()
	moved := pager.Prev()
	e.query.Page = pager.Current
	return moved
}

// NextPage steps forward one page unless already on the last page.
func (e *Engine) NextPage() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	pager := e.pagerLocked()
	moved := pager.Next()
	e.query.Page = pager.Current
	return moved
}

// LastPage moves to the final page when there is one.
func (e *Engine) LastPage() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if total := paging.PageCount(len(e.matches), e.pageSize); total > 0 {
		e.query.Page = total
	}
	return e.query.Page
}

func (e *Engine) pagerLocked() *paging.Pager {
	return &paging.Pager{
		Current: e.query.Page,
		Total:   paging.PageCount(len(e.matches), e.pageSize),
	}
}

// Snapshot returns the current query and its derived views.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	pager := e.pagerLocked()
	window := paging.Slice(e.matches, e.query.Page, e.pageSize)
	window.Items = cloneRecords(window.Items)

	return Snapshot{
		Gen:          e.gen,
		Query:        e.query,
		Phase:        e.phase,
		TotalRecords: len(e.records),
		Matches:      len(e.matches),
		TotalPages:   pager.Total,
		PageSize:     e.pageSize,
		Window:       window,
		Tokens:       paging.Tokens(e.query.Page, pager.Total, e.maxVisible),
		CanPrev:      pager.CanPrev(),
		CanNext:      pager.CanNext(),
	}
}

func cloneRecords(items []roster.Record) []roster.Record {
	if len(items) == 0 {
		return nil
	}
	dup := make([]roster.Record, len(items))
	copy(dup, items)
	return dup
}
