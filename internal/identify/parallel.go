package identify

import (
	"runtime"
	"sync"

	"github.com/inodb/svtools/internal/chromstring"
)

// WorkItem is a rearrangement queued for signing. Seq is its index in the
// sorted input.
type WorkItem struct {
	Seq   int
	Chrom chromstring.ChromString
}

// WorkResult carries the signature of one rearrangement, or the error the
// signature function returned for it.
type WorkResult struct {
	Seq   int
	Chrom chromstring.ChromString
	Sig   Signature
	Err   error
}

// ParallelSignatures signs every queued rearrangement with fn on a fixed
// number of goroutines (runtime.NumCPU() when workers <= 0). Signatures are
// independent of each other, so results come back as each worker finishes;
// the channel closes once items is drained.
func ParallelSignatures(items <-chan WorkItem, fn SignatureFunc, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				sig, err := fn(item.Chrom)
				results <- WorkResult{Seq: item.Seq, Chrom: item.Chrom, Sig: sig, Err: err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	return results
}

// OrderedCollect hands signatures to fn by ascending Seq, holding back any
// that finish early. The first error from fn stops delivery; the remaining
// results are discarded so no worker stays blocked on send.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	early := make(map[int]WorkResult)
	next := 0

	for r := range results {
		early[r.Seq] = r
		for {
			ready, ok := early[next]
			if !ok {
				break
			}
			delete(early, next)
			next++
			if err := fn(ready); err != nil {
				for range results {
				}
				return err
			}
		}
	}
	return nil
}

// feed queues the rearrangements in order as sequence-numbered items.
func feed(strs []chromstring.ChromString) <-chan WorkItem {
	items := make(chan WorkItem, len(strs))
	for i, cs := range strs {
		items <- WorkItem{Seq: i, Chrom: cs}
	}
	close(items)
	return items
}
