// core/msout/buffer.go
package msout

const (
	initialSiteCapacity = 1000
	growthPad           = 10
)

// HaplotypeBuffer owns the byte storage for one dataset's haplotype rows.
// Capacity is counted in segregating sites, is shared by every row, and
// never shrinks over the life of a run.
type HaplotypeBuffer struct {
	rows     [][]byte
	capacity int
}

// NewHaplotypeBuffer allocates storage for n haplotype rows.
func NewHaplotypeBuffer(n int) *HaplotypeBuffer {
	b := &HaplotypeBuffer{
		rows:     make([][]byte, n),
		capacity: initialSiteCapacity,
	}
	for i := range b.rows {
		b.rows[i] = make([]byte, 0, b.capacity)
	}
	return b
}

// EnsureCapacity regrows every row once a dataset's site count reaches
// the current capacity, leaving ten sites of headroom. Requests below
// the current capacity are no-ops.
func (b *HaplotypeBuffer) EnsureCapacity(sites int) {
	if sites < b.capacity {
		return
	}
	b.capacity = sites + growthPad
	for i := range b.rows {
		b.rows[i] = make([]byte, 0, b.capacity)
	}
}

// Rows reports the number of haplotype rows.
func (b *HaplotypeBuffer) Rows() int { return len(b.rows) }

// Capacity reports the per-row site capacity.
func (b *HaplotypeBuffer) Capacity() int { return b.capacity }

// row hands out the i-th row's storage, emptied for reuse.
func (b *HaplotypeBuffer) row(i int) []byte { return b.rows[i][:0] }

// setRow stores a filled row back, keeping any reallocation append made.
func (b *HaplotypeBuffer) setRow(i int, r []byte) { b.rows[i] = r }
