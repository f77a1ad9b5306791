// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"code.hybscloud.com/ring"
)

// TestSPSCConcurrentFIFO runs a real producer goroutine against a real
// consumer goroutine and checks the dequeued sequence is an exact prefix of
// the enqueued one (spec property 3).
func TestSPSCConcurrentFIFO(t *testing.T) {
	if ring.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}

	const n = 200_000
	prod, cons := ring.NewSPSC[uint64](256)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := range uint64(n) {
			for !prod.Enqueue(i) {
			}
		}
	}()

	var mismatch atomic.Bool
	go func() {
		defer wg.Done()
		for want := range uint64(n) {
			var got uint64
			var ok bool
			for !ok {
				got, ok = cons.Dequeue()
			}
			if got != want {
				mismatch.Store(true)
			}
		}
	}()

	wg.Wait()
	if mismatch.Load() {
		t.Fatal("dequeued sequence was not a prefix of the enqueued sequence")
	}
}

// TestSPMCExactlyOnceFIFOPartitioned is scenario 5: one producer, four SPMC
// consumers, every entry delivered to exactly one consumer, and each
// consumer's own receive order is a subsequence of the enqueue order (spec
// property 4).
func TestSPMCExactlyOnceFIFOPartitioned(t *testing.T) {
	if ring.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}

	const (
		n           = 200_000
		numConsumer = 4
	)
	prod, cons := ring.NewSPMC[uint64](1024)

	var wg sync.WaitGroup
	wg.Add(1 + numConsumer)

	go func() {
		defer wg.Done()
		for i := range uint64(n) {
			for !prod.Enqueue(i) {
			}
		}
	}()

	seen := make([][]uint64, numConsumer)
	var seenMu [numConsumer]sync.Mutex
	var total atomic.Int64

	for c := range numConsumer {
		go func(idx int) {
			defer wg.Done()
			for total.Load() < n {
				v, ok := cons.Dequeue()
				if !ok {
					continue
				}
				seenMu[idx].Lock()
				seen[idx] = append(seen[idx], v)
				seenMu[idx].Unlock()
				total.Add(1)
			}
		}(c)
	}

	wg.Wait()

	union := make(map[uint64]int, n)
	for _, s := range seen {
		prev := int64(-1)
		for _, v := range s {
			union[v]++
			if int64(v) <= prev {
				t.Fatalf("consumer order not a subsequence of enqueue order: %d after %d", v, prev)
			}
			prev = int64(v)
		}
	}
	if len(union) != n {
		t.Fatalf("union of received entries has %d distinct values, want %d", len(union), n)
	}
	for v, count := range union {
		if count != 1 {
			t.Fatalf("entry %d delivered %d times, want exactly once", v, count)
		}
	}
}

// TestSPMCStress is the spec's stress scenario: a small ring, a fast
// producer, and eight consumers racing on DequeueSPMC.
func TestSPMCStress(t *testing.T) {
	if testing.Short() {
		t.Skip("skip in -short mode")
	}
	if ring.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}

	const (
		n           = 2_000_000
		numConsumer = 8
	)
	prod, cons := ring.NewSPMC[uint64](64)

	var wg sync.WaitGroup
	wg.Add(1 + numConsumer)

	go func() {
		defer wg.Done()
		for i := range uint64(n) {
			for !prod.Enqueue(i) {
			}
		}
	}()

	var total atomic.Int64
	seenOnce := make([]atomic.Bool, n)

	for range numConsumer {
		go func() {
			defer wg.Done()
			for total.Load() < n {
				v, ok := cons.Dequeue()
				if !ok {
					continue
				}
				if seenOnce[v].Swap(true) {
					t.Errorf("entry %d dequeued twice", v)
				}
				total.Add(1)
			}
		}()
	}

	wg.Wait()
	if got := total.Load(); got != n {
		t.Fatalf("total dequeues: got %d, want %d", got, n)
	}
}
