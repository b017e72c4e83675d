package msout

import "testing"

func TestBufferInitialCapacity(t *testing.T) {
	b := NewHaplotypeBuffer(4)
	if b.Rows() != 4 {
		t.Fatalf("rows = %d, want 4", b.Rows())
	}
	if b.Capacity() != initialSiteCapacity {
		t.Fatalf("capacity = %d, want %d", b.Capacity(), initialSiteCapacity)
	}
}

func TestBufferGrowth(t *testing.T) {
	b := NewHaplotypeBuffer(2)

	// Below capacity: no growth.
	b.EnsureCapacity(999)
	if b.Capacity() != initialSiteCapacity {
		t.Fatalf("grew at 999: capacity = %d", b.Capacity())
	}

	// At capacity: grow with headroom.
	b.EnsureCapacity(1000)
	if b.Capacity() != 1010 {
		t.Fatalf("capacity = %d, want 1010", b.Capacity())
	}
	for i := 0; i < b.Rows(); i++ {
		if cap(b.row(i)) != 1010 {
			t.Fatalf("row %d cap = %d, want 1010", i, cap(b.row(i)))
		}
	}

	// Smaller requests never shrink.
	b.EnsureCapacity(10)
	if b.Capacity() != 1010 {
		t.Fatalf("capacity shrank to %d", b.Capacity())
	}

	b.EnsureCapacity(5000)
	if b.Capacity() != 5010 {
		t.Fatalf("capacity = %d, want 5010", b.Capacity())
	}
}
