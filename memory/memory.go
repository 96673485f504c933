package memory

import (
	"math"
	"math/bits"
)

// Block is an opaque owned buffer handed out by an Allocator. The zero
// value and a released Block behave like an empty allocation.
type Block struct {
	buf []byte
}

// Bytes exposes the underlying storage. The slice is valid until Release.
func (b *Block) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.buf
}

// Len returns the block size in bytes.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.buf)
}

// Release returns the block to the runtime allocator. Releasing a nil or
// already-released block is a safe no-op.
func (b *Block) Release() {
	if b == nil {
		return
	}
	b.buf = nil
}

// Allocator defines the allocation contract used by the callback table.
type Allocator interface {
	Allocate(count, elementSize uint64) *Block
	Free(block *Block)
}

// System delegates to the Go runtime allocator.
type System struct{}

// Allocate returns a zero-initialized block of count*elementSize bytes.
// It returns nil when the product overflows or the runtime cannot satisfy
// the request; the failure is silent and must be checked by the caller.
func (System) Allocate(count, elementSize uint64) (block *Block) {
	hi, total := bits.Mul64(count, elementSize)
	if hi != 0 || total > math.MaxInt {
		return nil
	}

	// make panics rather than returning an error when the length exceeds
	// what the runtime will hand out in one slice.
	defer func() {
		if recover() != nil {
			block = nil
		}
	}()

	return &Block{buf: make([]byte, int(total))}
}

// Free releases a block previously returned by Allocate. A nil block is a
// safe no-op.
func (System) Free(block *Block) {
	block.Release()
}

// system is the process-wide allocator behind the package-level entry points.
var system System

// Ensure System satisfies the Allocator interface at compile time.
var _ Allocator = System{}

// Allocate forwards to the process allocator.
func Allocate(count, elementSize uint64) *Block {
	return system.Allocate(count, elementSize)
}

// Free forwards to the process allocator.
func Free(block *Block) {
	system.Free(block)
}
