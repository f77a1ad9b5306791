// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// DequeueSPSC removes and returns the oldest entry from r (single consumer
// only — exactly one goroutine may call DequeueSPSC, concurrently with at
// most one producer calling Enqueue). Never blocks. Returns false if r was
// empty at observation.
//
// Unlike [DequeueSPMC], SPSC dequeue never retries: the caller already owns
// head outright, so there is no rival to CAS against.
func DequeueSPSC[T Word](r *Ring, buf Buffer[T]) (entry T, ok bool) {
	head := r.head.LoadRelaxed() // only this consumer writes head
	tail := r.tail.LoadAcquire() // acquire: orders the slot read below after this observation

	if head == tail {
		return entry, false
	}

	word := buf.slots[head&r.mask].LoadRelaxed()
	// Release: the slot read above must complete before head advances, or
	// the producer could overwrite the slot before we've latched its value.
	r.head.StoreRelease(head + 1)
	return T(word), true
}
