// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"code.hybscloud.com/atomix"
)

// Ring is the control block shared between a single producer and any number
// of consumers. It holds only the two index counters and the fixed
// capacity/mask — the slot array itself lives in a separate [Buffer] handle
// supplied by the caller to every operation.
//
// head and tail are deliberately laid out on distinct cache lines: the
// producer writes tail and reads head, the consumer(s) write head and read
// tail, and without padding a store to one would invalidate the other
// thread's cache line on every operation.
type Ring struct {
	_    pad
	head atomix.Uint64 // c_head: count of entries removed, written by consumer(s)
	_    pad
	tail atomix.Uint64 // p_tail: count of entries inserted, written by the producer
	_    pad
	size uint64 // capacity, power of two, fixed at Init
	mask uint64 // size - 1
}

// Init prepares ring for use with the given size, which must be a power of
// two no smaller than 2. Both counters start at zero.
//
// Init must run before any other goroutine observes ring; the caller is
// responsible for publishing the ring to other goroutines with a release
// operation of its own (for example, by sending its pointer over a channel
// or guarding first access with a sync.Once). No fence is required inside
// Init itself.
func Init(r *Ring, size uint64) {
	if size < 2 || size&(size-1) != 0 {
		panic("ring: size must be a power of two >= 2")
	}
	r.size = size
	r.mask = size - 1
	r.head.StoreRelaxed(0)
	r.tail.StoreRelaxed(0)
}

// Capacity returns the ring's physical slot count. One slot is always kept
// empty to disambiguate full from empty, so the maximum number of entries
// the ring can hold at once is Capacity(r)-1.
func Capacity(r *Ring) int {
	return int(r.size)
}

// Size returns a best-effort snapshot of the number of entries currently in
// the ring. The two loads are independent relaxed atomics, not a single
// atomic operation, so a concurrent Dequeue may cause this to observe one
// fewer entry than a truly instantaneous count would. Safe to call from any
// goroutine.
func Size(r *Ring) int {
	tail := r.tail.LoadRelaxed()
	head := r.head.LoadRelaxed()
	return int((tail - head) & r.mask)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
