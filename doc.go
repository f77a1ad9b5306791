// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides a bounded lock-free ring buffer for passing
// word-sized opaque entries between cooperating goroutines.
//
// Two concurrency disciplines are supported:
//
//   - SPSC: exactly one producer goroutine, exactly one consumer goroutine.
//   - SPMC: exactly one producer goroutine, any number of consumer goroutines.
//
// Both disciplines share the identical producer side (Enqueue). They differ
// only in how entries are removed: SPSC dequeue never contends (no CAS, the
// consumer owns its index outright), SPMC dequeue CAS-retries against any
// number of rival consumers.
//
// # Quick Start
//
//	prod, cons := ring.NewSPSC[uint64](1024)
//
//	go func() { // producer
//	    for v := range source {
//	        for !prod.Enqueue(v) {
//	            runtime.Gosched()
//	        }
//	    }
//	}()
//
//	go func() { // consumer
//	    for {
//	        v, ok := cons.Dequeue()
//	        if !ok {
//	            runtime.Gosched()
//	            continue
//	        }
//	        process(v)
//	    }
//	}()
//
// SPMC dispatch to a worker pool looks the same except construction and the
// consumer side:
//
//	prod, cons := ring.NewSPMC[uint64](1024)
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            v, ok := cons.Dequeue() // safe to call from many goroutines
//	            if !ok {
//	                runtime.Gosched()
//	                continue
//	            }
//	            handle(v)
//	        }
//	    }()
//	}
//
// # Entry type
//
// Entries are constrained to [Word]: a machine-word-sized, trivially
// copyable handle (an integer index, a uintptr, a bit-cast pointer). The
// ring never dereferences or copies anything beyond that one word — for
// anything bigger, store an index or pointer and keep the payload
// elsewhere.
//
// # Raw surface
//
// [Producer] and the consumer handles are ergonomic wrappers over a lower
// level surface — [Ring] (the control block: counters, padding, capacity)
// and [Buffer] (the slot array handle) are separate types, and every
// package-level operation ([Enqueue], [DequeueSPSC], [DequeueSPMC], ...)
// takes both explicitly. Use the raw surface directly when the control
// block and the slot array need independent lifetimes or placement — for
// example a [Ring] embedded in one memory-mapped region and a [Buffer]
// backed by another.
//
// # Error handling
//
// There are no error classes. Enqueue returns false when the ring is full
// at its linearization point; the dequeue operations return false when the
// ring is empty (or, for [TryDequeueSPMC] only, when the single CAS attempt
// lost to a rival consumer — indistinguishable from empty by design).
// Precondition violations a caller can make cheaply detectable — capacity
// less than 2, a size that is not a power of two — panic at construction.
// Precondition violations that cannot be detected at runtime — running more
// than one producer, or passing a [Buffer] shorter than the ring's
// capacity — are undefined behavior, same as the algorithm this package
// implements.
//
// # Race detection
//
// Go's race detector tracks happens-before edges established by the
// primitives it instruments (mutexes, channels); it does not model the
// acquire/release orderings [code.hybscloud.com/atomix] establishes
// between separate atomic fields. Some stress tests in this package are
// excluded under -race via the [RaceEnabled] constant for this reason —
// not because the algorithm is unsound, but because the detector cannot
// see the synchronization that makes it sound.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering and [code.hybscloud.com/spin] for the SPMC
// retry loop's CPU-pause backoff.
package ring
