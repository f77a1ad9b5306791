// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/spin"

// DequeueSPMC removes and returns the oldest unclaimed entry from r (any
// number of consumer goroutines may call this concurrently, with at most
// one producer calling Enqueue). Returns false only when r is observed
// empty; on contention it retries rather than returning false, so it never
// blocks but is not wait-free.
//
// The slot is read before the CAS that claims it, and discarded if the CAS
// loses: between the read and the CAS, a rival consumer can claim the same
// slot, after which the producer is free to overwrite it for the next lap.
// The CAS both commits this goroutine's claim and validates that the value
// just read corresponded to the generation it still owned.
func DequeueSPMC[T Word](r *Ring, buf Buffer[T]) (entry T, ok bool) {
	consumer := r.head.LoadRelaxed()

	sw := spin.Wait{}
	for {
		producer := r.tail.LoadAcquire() // pairs with the producer's release store
		if consumer == producer {
			return entry, false // empty at this observation
		}

		// True atomic load: must not be hoisted, elided, or reused across
		// retries — under contention the slot may be logically invalidated
		// before the CAS below fails.
		word := buf.slots[consumer&r.mask].LoadAcquire()

		if r.head.CompareAndSwapAcqRel(consumer, consumer+1) {
			return T(word), true
		}

		consumer = r.head.LoadRelaxed() // CAS lost: reload head to pick up the winner's value
		sw.Once()
	}
}

// TryDequeueSPMC is the non-retrying counterpart to [DequeueSPMC]: it
// attempts the claiming CAS exactly once. On failure it returns false,
// indistinguishable at the caller level from an empty ring — callers that
// want to retry implement their own backoff instead of relying on the
// built-in one DequeueSPMC uses.
func TryDequeueSPMC[T Word](r *Ring, buf Buffer[T]) (entry T, ok bool) {
	consumer := r.head.LoadRelaxed()
	producer := r.tail.LoadAcquire()
	if consumer == producer {
		return entry, false
	}

	word := buf.slots[consumer&r.mask].LoadAcquire()

	if !r.head.CompareAndSwapAcqRel(consumer, consumer+1) {
		return entry, false
	}
	return T(word), true
}
