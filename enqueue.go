// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Enqueue adds entry to the ring (producer only — exactly one goroutine may
// call Enqueue, concurrently with any number of consumers calling
// DequeueSPSC/DequeueSPMC/TryDequeueSPMC on the same ring). Never blocks.
// Returns false if the ring was full at the linearization point, in which
// case entry was not stored.
//
// This is the one producer-side algorithm shared by SPSC and SPMC rings —
// the two disciplines differ only in how entries are removed.
func Enqueue[T Word](r *Ring, buf Buffer[T], entry T) bool {
	ok, _ := enqueue(r, buf, entry, false)
	return ok
}

// EnqueueWithSize behaves like Enqueue, additionally returning the queue
// length snapshot (producer minus consumer index, masked) observed just
// before the insertion attempt — i.e. the pre-insertion size, not the
// post-insertion one. This lets the producer expose queue depth without
// ever writing to the cache line consumers read.
func EnqueueWithSize[T Word](r *Ring, buf Buffer[T], entry T) (ok bool, size int) {
	return enqueue(r, buf, entry, true)
}

func enqueue[T Word](r *Ring, buf Buffer[T], entry T, withSize bool) (ok bool, size int) {
	head := r.head.LoadRelaxed() // acquire-free: a stale value is still no later than current
	tail := r.tail.LoadRelaxed() // only the producer writes tail, so a plain read would do too

	if withSize {
		size = int((tail - head) & r.mask)
	}

	next := tail + 1
	if next&r.mask == head&r.mask {
		return false, size // full: one slot is always left empty
	}

	buf.slots[tail&r.mask].StoreRelaxed(uint64(entry))
	r.tail.StoreRelease(next) // release: publishes the slot write before the tail becomes visible
	return true, size
}
