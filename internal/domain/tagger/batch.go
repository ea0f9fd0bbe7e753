package tagger

import (
	"context"
	"runtime"
	"sync"

	"github.com/corey/tagmint/internal/ports"
)

// EnrichAll enriches records concurrently with a bounded worker pool.
// Each worker reads the shared frozen Statistics and writes only its own
// output slot, so no locking is needed. Results land by input index, which
// keeps output ordering deterministic regardless of scheduling.
//
// workers <= 0 means one worker per CPU. Cancellation via ctx stops feeding
// the pool; in-flight records finish and a nil slice is returned with the
// context error.
func EnrichAll(ctx context.Context, e *Enricher, records []ports.Record, workers int) ([]ports.EnrichedRecord, error) {
	out := make([]ports.EnrichedRecord, len(records))
	if len(records) == 0 {
		return out, nil
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				out[idx] = e.Enrich(records[idx])
			}
		}()
	}

	var err error
feed:
	for i := range records {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return out, nil
}
