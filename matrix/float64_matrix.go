package matrix

// Float64Matrix is a dense row major float64 matrix which also
// remembers which cells have been assigned. Cells never set are
// reported as absent by Has, which is different from a cell
// explicitly set to zero.
type Float64Matrix struct {
	nrow uint32
	ncol uint32
	data []float64
	set  []bool
}

// NewFloat64Matrix creates a new Float64Matrix with r rows and c columns,
// all cells start out absent
func NewFloat64Matrix(r, c uint32) *Float64Matrix {
	if r == 0 || c == 0 {
		panic(ErrBadShape)
	}
	n := uint64(r) * uint64(c)
	return &Float64Matrix{
		nrow: r,
		ncol: c,
		data: make([]float64, n),
		set:  make([]bool, n),
	}
}

// get the shape of the matrix
func (m *Float64Matrix) Shape() (uint32, uint32) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix, absent cells read as 0
func (m *Float64Matrix) Get(r, c uint32) float64 {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.data[m.offset(r, c)]
}

// Has reports whether the [r, c]-th element has been set
func (m *Float64Matrix) Has(r, c uint32) bool {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.set[m.offset(r, c)]
}

// set val to the [r, c]-th element of the matrix
func (m *Float64Matrix) Set(r, c uint32, val float64) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	i := m.offset(r, c)
	m.data[i] = val
	m.set[i] = true
}

// get a copy of the r-th row of the matrix
func (m *Float64Matrix) GetRow(r uint32) []float64 {
	if r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}
	start := m.offset(r, 0)
	row := make([]float64, m.ncol)
	copy(row, m.data[start:start+uint64(m.ncol)])
	return row
}

func (m *Float64Matrix) offset(r, c uint32) uint64 {
	return uint64(r)*uint64(m.ncol) + uint64(c)
}
