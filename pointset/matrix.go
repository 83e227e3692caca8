package pointset

import "fmt"

// matrixErrorf wraps an underlying error with method and index context.
// Example message shape: "Matrix.At(3,7): pointset: index out of bounds".
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a column-major matrix of float64 values: d rows (dimensions)
// by n columns (points). Column j is the contiguous slice
// data[j*d : j*d+d], which is what lets a k-d tree permute points by
// swapping whole columns instead of touching individual coordinates.
type Matrix struct {
	d, n int       // rows (dimensions), columns (points)
	data []float64 // flat backing storage, length == d*n
}

// NewMatrix allocates a d×n Matrix initialized to zero. n may be zero (an
// empty point cloud is a valid buffer shape; whether an empty cloud is
// acceptable is a decision for callers like kdtree.Build, not for the
// buffer itself). Returns ErrInvalidDimensions if d <= 0 or n < 0.
// Complexity: O(d*n).
func NewMatrix(d, n int) (*Matrix, error) {
	if d <= 0 || n < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{d: d, n: n, data: make([]float64, d*n)}, nil
}

// NewMatrixFromColumns builds a Matrix from n pre-built columns, each of
// length d. Values are copied; the caller's slices are not retained.
// Returns ErrInvalidDimensions on an empty or ragged input.
func NewMatrixFromColumns(cols [][]float64) (*Matrix, error) {
	n := len(cols)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	d := len(cols[0])
	if d <= 0 {
		return nil, ErrInvalidDimensions
	}

	m, err := NewMatrix(d, n)
	if err != nil {
		return nil, err
	}
	for j, col := range cols {
		if len(col) != d {
			return nil, ErrInvalidDimensions
		}
		copy(m.data[j*d:j*d+d], col)
	}

	return m, nil
}

// Rows returns d, the number of dimensions.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.d }

// Cols returns n, the number of points.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.n }

// At retrieves the value at (row, col). Row indexes dimension, col indexes
// point. Returns ErrIndexOutOfBounds on an invalid index.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.d || col < 0 || col >= m.n {
		return 0, matrixErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	return m.data[col*m.d+row], nil
}

// Set assigns value v at (row, col). Returns ErrIndexOutOfBounds on an
// invalid index.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	if row < 0 || row >= m.d || col < 0 || col >= m.n {
		return matrixErrorf("Set", row, col, ErrIndexOutOfBounds)
	}
	m.data[col*m.d+row] = v

	return nil
}

// Col returns the backing slice for column col, d values long. The slice
// aliases the Matrix's storage: mutating it mutates the Matrix. Returns
// ErrIndexOutOfBounds on an invalid index.
// Complexity: O(1).
func (m *Matrix) Col(col int) ([]float64, error) {
	if col < 0 || col >= m.n {
		return nil, matrixErrorf("Col", 0, col, ErrIndexOutOfBounds)
	}

	return m.data[col*m.d : col*m.d+m.d], nil
}

// SwapCols exchanges columns i and j in place. Used by kdtree.Build to
// permute points into leaf-contiguous order without per-coordinate
// copying. Returns ErrIndexOutOfBounds on an invalid index.
// Complexity: O(d).
func (m *Matrix) SwapCols(i, j int) error {
	if i < 0 || i >= m.n {
		return matrixErrorf("SwapCols", 0, i, ErrIndexOutOfBounds)
	}
	if j < 0 || j >= m.n {
		return matrixErrorf("SwapCols", 0, j, ErrIndexOutOfBounds)
	}
	if i == j {
		return nil
	}

	ci := m.data[i*m.d : i*m.d+m.d]
	cj := m.data[j*m.d : j*m.d+m.d]
	for k := 0; k < m.d; k++ {
		ci[k], cj[k] = cj[k], ci[k]
	}

	return nil
}

// Clone returns a deep copy of the Matrix.
// Complexity: O(d*n).
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{d: m.d, n: m.n, data: data}
}
