package table

import (
	"github.com/RoaringBitmap/roaring"
	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/errors"
)

// fullMembership contains every row in [0, size)
type fullMembership struct {
	size int
}

// NewFullMembership returns a Membership containing every row in [0, size)
func NewFullMembership(size int) hiero.Membership {
	return &fullMembership{size: size}
}

func (m *fullMembership) Size() int {
	return m.size
}

func (m *fullMembership) Max() int {
	return m.size
}

func (m *fullMembership) IsMember(row int) bool {
	return row >= 0 && row < m.size
}

func (m *fullMembership) ForEachRow(fn func(row int) error) error {
	for i := 0; i < m.size; i++ {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

func (m *fullMembership) Rows() []int {
	rows := make([]int, m.size)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// sparseMembership contains the rows in a roaring bitmap, all of which are less than max
type sparseMembership struct {
	bitmap *roaring.Bitmap
	max    int
}

// NewSparseMembership returns a Membership containing the given rows, each of which must lie in [0, max)
func NewSparseMembership(max int, rows ...int) (hiero.Membership, error) {
	bitmap := roaring.New()
	for _, row := range rows {
		if row < 0 || row >= max {
			return nil, errors.IndexOutOfBoundsError{Index: row, Size: max}
		}
		bitmap.Add(uint32(row))
	}
	return &sparseMembership{bitmap: bitmap, max: max}, nil
}

// FromBitmap returns a Membership backed by the given bitmap, which must not be modified afterwards
func FromBitmap(max int, bitmap *roaring.Bitmap) (hiero.Membership, error) {
	if !bitmap.IsEmpty() && int(bitmap.Maximum()) >= max {
		return nil, errors.IndexOutOfBoundsError{Index: int(bitmap.Maximum()), Size: max}
	}
	return &sparseMembership{bitmap: bitmap, max: max}, nil
}

func (m *sparseMembership) Size() int {
	return int(m.bitmap.GetCardinality())
}

func (m *sparseMembership) Max() int {
	return m.max
}

func (m *sparseMembership) IsMember(row int) bool {
	return row >= 0 && row < m.max && m.bitmap.Contains(uint32(row))
}

func (m *sparseMembership) ForEachRow(fn func(row int) error) error {
	it := m.bitmap.Iterator()
	for it.HasNext() {
		if err := fn(int(it.Next())); err != nil {
			return err
		}
	}
	return nil
}

func (m *sparseMembership) Rows() []int {
	rows := make([]int, 0, m.Size())
	it := m.bitmap.Iterator()
	for it.HasNext() {
		rows = append(rows, int(it.Next()))
	}
	return rows
}

// Bitmap returns a bitmap containing the rows of any Membership. The result must not be modified.
func Bitmap(m hiero.Membership) *roaring.Bitmap {
	switch v := m.(type) {
	case *sparseMembership:
		return v.bitmap
	case *fullMembership:
		bitmap := roaring.New()
		bitmap.AddRange(0, uint64(v.size))
		return bitmap
	default:
		bitmap := roaring.New()
		m.ForEachRow(func(row int) error {
			bitmap.Add(uint32(row))
			return nil
		})
		return bitmap
	}
}

// Intersect returns a Membership containing the rows present in both a and b
func Intersect(a hiero.Membership, b hiero.Membership) hiero.Membership {
	max := a.Max()
	if b.Max() < max {
		max = b.Max()
	}
	if full, ok := a.(*fullMembership); ok && b.Max() <= full.size {
		return b
	}
	if full, ok := b.(*fullMembership); ok && a.Max() <= full.size {
		return a
	}
	return &sparseMembership{bitmap: roaring.And(Bitmap(a), Bitmap(b)), max: max}
}

// SameMembership returns true iff a and b contain exactly the same rows
func SameMembership(a hiero.Membership, b hiero.Membership) bool {
	if a == b {
		return true
	}
	if a.Size() != b.Size() {
		return false
	}
	fa, aFull := a.(*fullMembership)
	fb, bFull := b.(*fullMembership)
	if aFull && bFull {
		return fa.size == fb.size
	}
	return Bitmap(a).Equals(Bitmap(b))
}

// splitMembership divides a Membership into consecutive chunks of at most fragmentSize rows
func splitMembership(m hiero.Membership, fragmentSize int) []hiero.Membership {
	fragments := make([]hiero.Membership, 0, m.Size()/fragmentSize+1)
	if full, ok := m.(*fullMembership); ok {
		for start := 0; start < full.size; start += fragmentSize {
			end := start + fragmentSize
			if end > full.size {
				end = full.size
			}
			bitmap := roaring.New()
			bitmap.AddRange(uint64(start), uint64(end))
			fragments = append(fragments, &sparseMembership{bitmap: bitmap, max: full.size})
		}
		return fragments
	}
	current := roaring.New()
	m.ForEachRow(func(row int) error {
		current.Add(uint32(row))
		if int(current.GetCardinality()) == fragmentSize {
			fragments = append(fragments, &sparseMembership{bitmap: current, max: m.Max()})
			current = roaring.New()
		}
		return nil
	})
	if !current.IsEmpty() {
		fragments = append(fragments, &sparseMembership{bitmap: current, max: m.Max()})
	}
	return fragments
}
