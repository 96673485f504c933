package memory

import (
	"math"
	"testing"
)

func TestAllocate(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name        string
		count       uint64
		elementSize uint64
		wantNil     bool
		wantLen     int
	}{
		{name: "small block", count: 4, elementSize: 8, wantLen: 32},
		{name: "single byte", count: 1, elementSize: 1, wantLen: 1},
		{name: "zero count", count: 0, elementSize: 8, wantLen: 0},
		{name: "zero element size", count: 16, elementSize: 0, wantLen: 0},
		{name: "product overflow", count: math.MaxUint64, elementSize: 2, wantNil: true},
		{name: "product above int range", count: math.MaxInt64, elementSize: 4, wantNil: true},
		{name: "runtime refusal", count: math.MaxInt64 / 2, elementSize: 1, wantNil: true},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			block := Allocate(tc.count, tc.elementSize)
			if tc.wantNil {
				if block != nil {
					t.Fatalf("expected nil block, got %d bytes", block.Len())
				}
				return
			}

			if block == nil {
				t.Fatalf("expected %d byte block, got nil", tc.wantLen)
			}

			if block.Len() != tc.wantLen {
				t.Fatalf("block length mismatch: want %d, got %d", tc.wantLen, block.Len())
			}

			for i, b := range block.Bytes() {
				if b != 0 {
					t.Fatalf("byte %d not zeroed: got %#x", i, b)
				}
			}

			Free(block)
		})
	}
}

func TestRelease(t *testing.T) {
	t.Parallel()

	t.Run("nil block", func(t *testing.T) {
		t.Parallel()

		var block *Block
		block.Release()
		Free(nil)
	})

	t.Run("double release", func(t *testing.T) {
		t.Parallel()

		block := Allocate(2, 8)
		if block == nil {
			t.Fatal("expected block, got nil")
		}

		block.Release()
		if block.Len() != 0 {
			t.Fatalf("released block reports %d bytes", block.Len())
		}
		block.Release()
	})

	t.Run("released block reads empty", func(t *testing.T) {
		t.Parallel()

		block := Allocate(1, 16)
		if block == nil {
			t.Fatal("expected block, got nil")
		}

		Free(block)
		if block.Bytes() != nil {
			t.Fatal("released block still exposes storage")
		}
	})
}
