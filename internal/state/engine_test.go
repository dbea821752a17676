package state

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/advocates/roster/internal/paging"
	"github.com/advocates/roster/internal/roster"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func makeRecords(n int) []roster.Record {
	out := make([]roster.Record, n)
	for i := range out {
		status := roster.StatusActive
		if i%2 == 1 {
			status = roster.StatusInactive
		}
		out[i] = roster.Record{
			ID:            fmt.Sprintf("%d", i+1),
			Name:          fmt.Sprintf("Advocate %d", i+1),
			CertificateNo: fmt.Sprintf("C-%04d", i+1),
			Status:        status,
		}
	}
	return out
}

func TestNewEngine_StartsIdleOnFirstPageWithEverything(t *testing.T) {
	e := NewEngine(makeRecords(120), Options{})
	snap := e.Snapshot()

	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.False(t, snap.Pending())
	assert.Equal(t, 1, snap.Query.Page)
	assert.Equal(t, 120, snap.Matches)
	assert.Equal(t, 3, snap.TotalPages)
	assert.Equal(t, paging.DefaultPageSize, snap.PageSize)
	assert.Equal(t, 50, snap.Window.Len())
	assert.False(t, snap.CanPrev)
	assert.True(t, snap.CanNext)
	assert.Equal(t, "1", snap.Window.Items[0].ID)
}

func TestSetSearch_ResetsPageAndEntersComputing(t *testing.T) {
	e := NewEngine(makeRecords(500), Options{PageSize: 10})
	e.GoToPage(7)

	req := e.SetSearch("Advocate 1")
	snap := e.Snapshot()
	assert.Equal(t, 1, snap.Query.Page)
	assert.Equal(t, "Advocate 1", snap.Query.Search)
	assert.True(t, snap.Pending())
	assert.Equal(t, req.Query, snap.Query)

	require.True(t, e.Run(req))
	snap = e.Snapshot()
	assert.False(t, snap.Pending())
	// Advocate 1, 10-19, 100-199
	assert.Equal(t, 111, snap.Matches)
}

func TestSetStatus_ResetsPage(t *testing.T) {
	e := NewEngine(makeRecords(300), Options{PageSize: 10})
	for _, page := range []int{1, 2, 15, 30} {
		e.GoToPage(page)
		req := e.SetStatus(roster.FilterInactive)
		assert.Equal(t, 1, req.Query.Page)
		require.True(t, e.Run(req))
		assert.Equal(t, 1, e.Snapshot().Query.Page)
	}
	assert.Equal(t, 150, e.Snapshot().Matches)
}

func TestApply_DiscardsSupersededResult(t *testing.T) {
	e := NewEngine(makeRecords(50), Options{})

	first := e.SetSearch("Advocate 4")
	firstRes, ok := e.Compute(first)
	require.True(t, ok)

	second := e.SetSearch("C-002")
	assert.False(t, e.Apply(firstRes), "stale result must be dropped")
	assert.True(t, e.Snapshot().Pending())

	require.True(t, e.Run(second))
	snap := e.Snapshot()
	assert.False(t, snap.Pending())
	// C-0020..C-0029
	assert.Equal(t, 10, snap.Matches)
	assert.Equal(t, "C-0020", snap.Window.Items[0].CertificateNo)
}

func TestCompute_AbortsWhenSuperseded(t *testing.T) {
	e := NewEngine(makeRecords(2000), Options{})
	stale := e.SetSearch("x")
	e.SetSearch("y")

	_, ok := e.Compute(stale)
	assert.False(t, ok)
}

func TestGoToPage_DoesNotStartGeneration(t *testing.T) {
	e := NewEngine(makeRecords(120), Options{})
	assert.Equal(t, 3, e.GoToPage(3))

	snap := e.Snapshot()
	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.Equal(t, 20, snap.Window.Len())
	assert.Equal(t, 100, snap.Window.Start)
	assert.True(t, snap.CanPrev)
	assert.False(t, snap.CanNext)
}

func TestGoToPage_OutOfRangeYieldsEmptyWindow(t *testing.T) {
	e := NewEngine(makeRecords(10), Options{})
	e.GoToPage(4)
	snap := e.Snapshot()
	assert.Empty(t, snap.Window.Items)
	assert.LessOrEqual(t, snap.Window.Start, snap.Window.End)

	e.GoToPage(math.MaxInt)
	snap = e.Snapshot()
	assert.Empty(t, snap.Window.Items)
	assert.Equal(t, 10, snap.Window.Start)
}

func TestPrevNext_StopAtBoundaries(t *testing.T) {
	e := NewEngine(makeRecords(120), Options{})

	assert.False(t, e.PrevPage())
	assert.Equal(t, 1, e.Snapshot().Query.Page)

	assert.True(t, e.NextPage())
	assert.True(t, e.NextPage())
	assert.False(t, e.NextPage())
	assert.Equal(t, 3, e.Snapshot().Query.Page)

	assert.True(t, e.PrevPage())
	assert.Equal(t, 2, e.Snapshot().Query.Page)
}

func TestLastPage(t *testing.T) {
	e := NewEngine(makeRecords(101), Options{})
	assert.Equal(t, 3, e.LastPage())

	empty := NewEngine(nil, Options{})
	assert.Equal(t, 1, empty.LastPage())
	snap := empty.Snapshot()
	assert.Zero(t, snap.TotalPages)
	assert.Empty(t, snap.Tokens)
	assert.False(t, snap.CanPrev)
	assert.False(t, snap.CanNext)
}

func TestSnapshot_TokensFollowCurrentPage(t *testing.T) {
	e := NewEngine(makeRecords(500), Options{})
	e.GoToPage(5)
	snap := e.Snapshot()

	labels := make([]string, len(snap.Tokens))
	for i, tok := range snap.Tokens {
		labels[i] = tok.String()
	}
	assert.Equal(t, []string{"1", "...", "4", "5", "6", "...", "10"}, labels)
}

func TestSnapshot_WindowIsACopy(t *testing.T) {
	records := makeRecords(5)
	e := NewEngine(records, Options{})
	snap := e.Snapshot()
	snap.Window.Items[0].Name = "changed"
	assert.Equal(t, "Advocate 1", records[0].Name)
	assert.Equal(t, "Advocate 1", e.Snapshot().Window.Items[0].Name)
}

func TestConcurrentRecomputeKeepsNewest(t *testing.T) {
	e := NewEngine(makeRecords(5000), Options{})

	var wg sync.WaitGroup
	var last Request
	for i := 0; i < 20; i++ {
		req := e.SetSearch(fmt.Sprintf("Advocate %d", i+1))
		last = req
		wg.Add(1)
		go func(req Request) {
			defer wg.Done()
			if res, ok := e.Compute(req); ok {
				e.Apply(res)
			}
		}(req)
	}
	wg.Wait()

	snap := e.Snapshot()
	assert.Equal(t, last.Query.Search, snap.Query.Search)
	assert.False(t, snap.Pending(), "newest generation must land once inputs stop")
}
