// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/atomix"

// Word is the constraint on ring entries: a machine-word-sized, trivially
// copyable handle. Use uintptr (bit-cast from an unsafe.Pointer, or a pool
// index) for anything larger than 64 bits of payload.
type Word interface {
	~uint64 | ~uintptr
}

// Buffer is the slot array handle passed alongside a [Ring] to every
// operation. It is a small value type — copying a Buffer shares the same
// underlying array, it does not clone it — and is owned by the caller: the
// ring neither allocates, resizes, nor frees it.
//
// Every slot is stored as an atomix word rather than a plain T so that the
// SPMC retry loop in [DequeueSPMC] can issue a true atomic load of a slot
// that may be concurrently overwritten by the producer the instant a rival
// consumer's CAS succeeds; a plain slice read would leave the compiler free
// to hoist, elide, or reuse a stale value across loop iterations.
type Buffer[T Word] struct {
	slots []atomix.Uint64
}

// NewBuffer allocates a Buffer of the given size. size must equal the
// capacity of every [Ring] this Buffer is paired with; the ring does not
// verify this (see package docs, "Error handling").
func NewBuffer[T Word](size int) Buffer[T] {
	return Buffer[T]{slots: make([]atomix.Uint64, size)}
}

// Len returns the number of slots in the buffer.
func (b Buffer[T]) Len() int {
	return len(b.slots)
}
