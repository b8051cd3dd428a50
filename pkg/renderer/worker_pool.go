package renderer

import (
	"runtime"
	"sync"
)

// RowResult contains the outcome of rendering one scanline
type RowResult struct {
	Row     int
	Samples int
	Err     error
}

// WorkerPool fans scanline tasks out to render workers. Workers write to
// disjoint framebuffer rows, so no locking is needed; every row derives its
// own RNG from the render seed, so output is identical regardless of worker
// count or scheduling order.
type WorkerPool struct {
	numWorkers int
	tasks      chan int
	results    chan RowResult
	wg         sync.WaitGroup
}

// NewWorkerPool creates a pool with the specified number of workers, or one
// per CPU when numWorkers <= 0
func NewWorkerPool(numWorkers, numRows int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		tasks:      make(chan int, numRows),
		results:    make(chan RowResult, numRows),
	}
}

// Start launches the workers; each pulls row indices until the task channel
// is closed
func (wp *WorkerPool) Start(renderRow func(row int) RowResult) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for row := range wp.tasks {
				wp.results <- renderRow(row)
			}
		}()
	}
}

// Submit queues a scanline for rendering
func (wp *WorkerPool) Submit(row int) {
	wp.tasks <- row
}

// Close signals that no more rows will be submitted and waits for the
// workers to drain the queue
func (wp *WorkerPool) Close() {
	close(wp.tasks)
	wp.wg.Wait()
	close(wp.results)
}

// Results returns the channel of completed rows
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.results
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}
