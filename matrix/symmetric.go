package matrix

import "fmt"

// Symmetric is a dense N×N matrix of int32 with the invariant
// Get(i,j) == Get(j,i) enforced by Set. The zero value is not usable;
// construct with NewSymmetric.
type Symmetric struct {
	size int
	data []int32 // row-major, size*size
}

// NewSymmetric allocates a zero-filled size×size symmetric matrix.
//
// Complexity: O(size²) time and space.
func NewSymmetric(size int) (*Symmetric, error) {
	if size <= 0 {
		return nil, ErrNonPositiveSize
	}
	return &Symmetric{
		size: size,
		data: make([]int32, size*size),
	}, nil
}

// Size returns the matrix order N.
func (m *Symmetric) Size() int {
	return m.size
}

func (m *Symmetric) index(i, j int) (int, error) {
	if i < 0 || i >= m.size || j < 0 || j >= m.size {
		return 0, ErrIndexOutOfRange
	}
	return i*m.size + j, nil
}

// Get returns M[i][j], or ErrIndexOutOfRange if either index falls
// outside [0, Size()); it does not panic. Callers on a hot path that
// already know indices are in range may use GetUnchecked.
func (m *Symmetric) Get(i, j int) (int32, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// GetUnchecked returns M[i][j] without bounds checking. Callers must
// guarantee 0 <= i,j < Size(); this is the fast path used by the inner
// local-search loop.
//
// Complexity: O(1).
func (m *Symmetric) GetUnchecked(i, j int) int32 {
	return m.data[i*m.size+j]
}

// Set writes value to both M[i][j] and M[j][i], preserving symmetry.
//
// Complexity: O(1).
func (m *Symmetric) Set(i, j int, value int32) error {
	ia, err := m.index(i, j)
	if err != nil {
		return err
	}
	ib, err := m.index(j, i)
	if err != nil {
		return err
	}
	m.data[ia] = value
	m.data[ib] = value
	return nil
}

// SetUnchecked writes value to both M[i][j] and M[j][i] without bounds
// checking. Used by GLS's penalty increment, which already knows its
// indices come from a valid tour edge.
//
// Complexity: O(1).
func (m *Symmetric) SetUnchecked(i, j int, value int32) {
	m.data[i*m.size+j] = value
	m.data[j*m.size+i] = value
}

// AddUnchecked increments M[i][j] and M[j][i] by delta without bounds checking.
//
// Complexity: O(1).
func (m *Symmetric) AddUnchecked(i, j int, delta int32) {
	ia := i*m.size + j
	ib := j*m.size + i
	m.data[ia] += delta
	m.data[ib] += delta
}

// Sum returns the sum of M[e] for every edge e in edges.
//
// Complexity: O(len(edges)).
func (m *Symmetric) Sum(edges [][2]int) int64 {
	var total int64
	for _, e := range edges {
		total += int64(m.GetUnchecked(e[0], e[1]))
	}
	return total
}

// DebugString returns a compact printable representation of the leading
// precision×precision block of the matrix, for tests and debugging. A
// precision <= 0 or > Size() prints the whole matrix.
//
// Complexity: O(precision²) time and space for formatting.
func (m *Symmetric) DebugString(precision int) string {
	if precision <= 0 || precision > m.size {
		precision = m.size
	}
	s := fmt.Sprintf("Symmetric{size: %d, data (precision %d):\n", m.size, precision)
	s += "       "
	for j := 0; j < precision; j++ {
		s += fmt.Sprintf("%4d", j)
	}
	s += "\n"
	for i := 0; i < precision; i++ {
		s += fmt.Sprintf("  %3d |", i)
		for j := 0; j < precision; j++ {
			s += fmt.Sprintf("%4d", m.GetUnchecked(i, j))
		}
		s += "\n"
	}
	s += "}"
	return s
}
