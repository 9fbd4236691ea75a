package exec

import (
	"sync"
	"testing"
)

func TestIDSourceConcurrentIssuanceIsDense(t *testing.T) {
	const (
		workers = 8
		perWork = 1000
	)
	ids := NewIDSource()

	orderIDs := make(chan uint64, workers*perWork)
	execIDs := make(chan uint64, workers*perWork)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWork; i++ {
				orderIDs <- ids.NextOrderID()
				execIDs <- ids.NextExecID()
			}
		}()
	}
	wg.Wait()
	close(orderIDs)
	close(execIDs)

	checkDense := func(name string, ch chan uint64) {
		seen := make(map[uint64]bool, workers*perWork)
		for id := range ch {
			if seen[id] {
				t.Fatalf("%s: duplicate id %d", name, id)
			}
			seen[id] = true
		}
		if len(seen) != workers*perWork {
			t.Fatalf("%s: want %d ids, got %d", name, workers*perWork, len(seen))
		}
		for i := uint64(1); i <= uint64(workers*perWork); i++ {
			if !seen[i] {
				t.Fatalf("%s: gap at %d", name, i)
			}
		}
	}
	checkDense("orderID", orderIDs)
	checkDense("execID", execIDs)
}
