package renderer

import (
	"errors"
	"runtime"
	"testing"
)

func TestWorkerPool_EveryRowOnce(t *testing.T) {
	const rows = 100
	pool := NewWorkerPool(4, rows)
	pool.Start(func(row int) RowResult {
		return RowResult{Row: row, Samples: 1}
	})

	go func() {
		for y := 0; y < rows; y++ {
			pool.Submit(y)
		}
		pool.Close()
	}()

	seen := make(map[int]int)
	for result := range pool.Results() {
		seen[result.Row]++
	}

	if len(seen) != rows {
		t.Fatalf("got %d distinct rows, want %d", len(seen), rows)
	}
	for row, count := range seen {
		if count != 1 {
			t.Errorf("row %d rendered %d times", row, count)
		}
	}
}

func TestWorkerPool_DefaultsToNumCPU(t *testing.T) {
	pool := NewWorkerPool(0, 10)
	if pool.NumWorkers() != runtime.NumCPU() {
		t.Errorf("NumWorkers = %d, want %d", pool.NumWorkers(), runtime.NumCPU())
	}

	pool = NewWorkerPool(3, 10)
	if pool.NumWorkers() != 3 {
		t.Errorf("NumWorkers = %d, want 3", pool.NumWorkers())
	}
}

func TestWorkerPool_PropagatesRowErrors(t *testing.T) {
	rowErr := errors.New("row failed")
	pool := NewWorkerPool(2, 4)
	pool.Start(func(row int) RowResult {
		if row == 2 {
			return RowResult{Row: row, Err: rowErr}
		}
		return RowResult{Row: row}
	})

	go func() {
		for y := 0; y < 4; y++ {
			pool.Submit(y)
		}
		pool.Close()
	}()

	var got error
	for result := range pool.Results() {
		if result.Err != nil {
			got = result.Err
		}
	}
	if !errors.Is(got, rowErr) {
		t.Errorf("expected row error to surface, got %v", got)
	}
}
