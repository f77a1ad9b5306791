// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Producer is the single-producer handle returned by [NewSPSC] and
// [NewSPMC]. By convention exactly one goroutine holds and calls it —
// nothing in the type system stops a second goroutine from doing so, the
// same way nothing stops a caller from passing a *Ring to two producer
// goroutines at the raw-function level. Doing so is undefined behavior.
type Producer[T Word] struct {
	ring *Ring
	buf  Buffer[T]
}

// Enqueue adds entry to the ring. See [Enqueue].
func (p *Producer[T]) Enqueue(entry T) bool {
	return Enqueue(p.ring, p.buf, entry)
}

// EnqueueWithSize adds entry to the ring and reports the pre-insertion
// length snapshot. See [EnqueueWithSize].
func (p *Producer[T]) EnqueueWithSize(entry T) (ok bool, size int) {
	return EnqueueWithSize(p.ring, p.buf, entry)
}

// Cap returns the ring's physical capacity. See [Capacity].
func (p *Producer[T]) Cap() int {
	return Capacity(p.ring)
}

// Len returns a best-effort length snapshot. See [Size].
func (p *Producer[T]) Len() int {
	return Size(p.ring)
}

// ConsumerSPSC is the single-consumer handle returned by [NewSPSC]. Like
// [Producer], exactly one goroutine should hold and call it.
type ConsumerSPSC[T Word] struct {
	ring *Ring
	buf  Buffer[T]
}

// Dequeue removes and returns the oldest entry. See [DequeueSPSC].
func (c *ConsumerSPSC[T]) Dequeue() (entry T, ok bool) {
	return DequeueSPSC(c.ring, c.buf)
}

// Cap returns the ring's physical capacity. See [Capacity].
func (c *ConsumerSPSC[T]) Cap() int {
	return Capacity(c.ring)
}

// Len returns a best-effort length snapshot. See [Size].
func (c *ConsumerSPSC[T]) Len() int {
	return Size(c.ring)
}

// ConsumerSPMC is the consumer handle returned by [NewSPMC]. Unlike
// [ConsumerSPSC], a *ConsumerSPMC may be shared freely across any number of
// consumer goroutines: every access goes through the ring's atomic
// claim-by-CAS protocol, so duplicating the handle (copying the pointer,
// not the struct it points to) is exactly what concurrent consumption
// requires.
type ConsumerSPMC[T Word] struct {
	ring *Ring
	buf  Buffer[T]
}

// Dequeue removes and returns the oldest unclaimed entry, retrying on
// contention. See [DequeueSPMC].
func (c *ConsumerSPMC[T]) Dequeue() (entry T, ok bool) {
	return DequeueSPMC(c.ring, c.buf)
}

// TryDequeue attempts a single claim without retrying. See [TryDequeueSPMC].
func (c *ConsumerSPMC[T]) TryDequeue() (entry T, ok bool) {
	return TryDequeueSPMC(c.ring, c.buf)
}

// Cap returns the ring's physical capacity. See [Capacity].
func (c *ConsumerSPMC[T]) Cap() int {
	return Capacity(c.ring)
}

// Len returns a best-effort length snapshot. See [Size].
func (c *ConsumerSPMC[T]) Len() int {
	return Size(c.ring)
}

// NewSPSC creates a ring for single-producer single-consumer use and
// returns its producer and consumer handles. Capacity rounds up to the
// next power of two and must be at least 2; panics otherwise.
func NewSPSC[T Word](capacity int) (*Producer[T], *ConsumerSPSC[T]) {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	size := uint64(roundToPow2(capacity))

	r := &Ring{}
	Init(r, size)
	buf := NewBuffer[T](int(size))

	return &Producer[T]{ring: r, buf: buf}, &ConsumerSPSC[T]{ring: r, buf: buf}
}

// NewSPMC creates a ring for single-producer multi-consumer use and returns
// its producer handle and a consumer handle that may be shared across any
// number of consumer goroutines. Capacity rounds up to the next power of
// two and must be at least 2; panics otherwise.
func NewSPMC[T Word](capacity int) (*Producer[T], *ConsumerSPMC[T]) {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	size := uint64(roundToPow2(capacity))

	r := &Ring{}
	Init(r, size)
	buf := NewBuffer[T](int(size))

	return &Producer[T]{ring: r, buf: buf}, &ConsumerSPMC[T]{ring: r, buf: buf}
}
