// Package sparse implements integer sparse matrices
// in compressed sparse row (CSR) form.
package sparse

import (
	"slices"
	"sort"

	"github.com/intmat/intmat/pkg/util"
)

// Matrix is an integer sparse matrix in compressed sparse row form.
//
// Values, ColIndices, and RowPtr form one structure: row r's entries
// live at positions [RowPtr[r], RowPtr[r+1]) of Values/ColIndices,
// sorted by strictly increasing column index, with no stored zeros.
// A logically-zero cell is represented by absence.
//
// Mutate only through Set; poking the arrays directly can break the
// layout contract that every other method assumes.
type Matrix struct {
	Rows, Cols int

	// Values holds the nonzero entry values in row-major order.
	Values []int64

	// ColIndices holds the column of each entry in Values.
	ColIndices []int

	// RowPtr has length Rows+1; RowPtr[r] is the offset of row r's
	// first entry, and RowPtr[Rows] == len(Values).
	RowPtr []int
}

// NewMatrix creates an all-zero matrix with the given dimensions.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDim
	}
	return &Matrix{
		Rows:   rows,
		Cols:   cols,
		RowPtr: make([]int, rows+1),
	}, nil
}

// NewMatrixFromEntries creates a matrix with the given dimensions and
// entries.
//
// Entries are stable-sorted in (row, column) order before insertion,
// so duplicate coordinates resolve deterministically: the entry later
// in the input wins, and a later zero deletes an earlier value.
func NewMatrixFromEntries(
	rows, cols int, entries []CooEntry,
) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	sorted := append(entries[:0:0], entries...)
	sort.Stable(CSREntriesSort(sorted))
	m.Values = util.GrowCap(m.Values, len(sorted))
	m.ColIndices = util.GrowCap(m.ColIndices, len(sorted))
	for _, e := range sorted {
		if err := m.Set(e.Row, e.Column, e.Value); err != nil {
			return nil, err
		}
	}
	m.Values = util.ShrinkWrap(m.Values)
	m.ColIndices = util.ShrinkWrap(m.ColIndices)
	return m, nil
}

// Dims returns the numbers of rows/columns.
func (m *Matrix) Dims() (rows, cols int) { return m.Rows, m.Cols }

// NNZ counts nonzero entries.
func (m *Matrix) NNZ() int { return len(m.Values) }

func (m *Matrix) checkIndex(row, col int) error {
	if row < 0 || row >= m.Rows {
		return util.IndexOutOfBoundsError{Index: row, Bound: m.Rows}
	}
	if col < 0 || col >= m.Cols {
		return util.IndexOutOfBoundsError{Index: col, Bound: m.Cols}
	}
	return nil
}

// find locates (row, col) within row's span.
// pos is the entry's position if found, otherwise the insertion point
// that keeps the row's column indices sorted.
func (m *Matrix) find(row, col int) (pos int, found bool) {
	lo, hi := m.RowPtr[row], m.RowPtr[row+1]
	pos = lo + sort.Search(hi-lo,
		func(i int) bool { return m.ColIndices[lo+i] >= col })
	found = pos < hi && m.ColIndices[pos] == col
	return
}

// Get returns the value stored at (row, col), or 0 if absent.
// Cost is O(log nnz(row)), never O(Cols).
func (m *Matrix) Get(row, col int) (int64, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, err
	}
	pos, found := m.find(row, col)
	if !found {
		return 0, nil
	}
	return m.Values[pos], nil
}

// Set establishes Get(row, col) == value, preserving the CSR layout:
// a new nonzero is spliced into place, an existing entry is overwritten,
// and setting an existing entry to zero removes it.
//
// Inserting or removing shifts RowPtr for every following row, which is
// O(Rows) per call; building from (row, column)-sorted input amortizes
// the splice itself to the tail of the arrays, but the pointer cascade
// remains the known cost of heavy incremental editing.
func (m *Matrix) Set(row, col int, value int64) error {
	if err := m.checkIndex(row, col); err != nil {
		return err
	}
	pos, found := m.find(row, col)
	switch {
	case found && value == 0:
		m.Values = slices.Delete(m.Values, pos, pos+1)
		m.ColIndices = slices.Delete(m.ColIndices, pos, pos+1)
		for r := row + 1; r <= m.Rows; r++ {
			m.RowPtr[r]--
		}
	case found:
		m.Values[pos] = value
	case value != 0:
		m.Values = slices.Insert(m.Values, pos, value)
		m.ColIndices = slices.Insert(m.ColIndices, pos, col)
		for r := row + 1; r <= m.Rows; r++ {
			m.RowPtr[r]++
		}
	}
	// Absent entry and zero value: nothing to do.
	return nil
}

// Clone returns a copy (clone) of the receiver.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		Rows:       m.Rows,
		Cols:       m.Cols,
		Values:     append(m.Values[:0:0], m.Values...),
		ColIndices: append(m.ColIndices[:0:0], m.ColIndices...),
		RowPtr:     append(m.RowPtr[:0:0], m.RowPtr...),
	}
}

// Equal reports whether m and n hold the same dimensions and the same
// (row, col) -> value mapping.  The CSR layout is canonical, so this
// reduces to comparing the arrays element-wise.
func (m *Matrix) Equal(n *Matrix) bool {
	if m.Rows != n.Rows || m.Cols != n.Cols || m.NNZ() != n.NNZ() {
		return false
	}
	for i := range m.Values {
		if m.Values[i] != n.Values[i] ||
			m.ColIndices[i] != n.ColIndices[i] {
			return false
		}
	}
	for r := 0; r <= m.Rows; r++ {
		if m.RowPtr[r] != n.RowPtr[r] {
			return false
		}
	}
	return true
}

// Transpose returns the transposed matrix.
func (m *Matrix) Transpose() *Matrix {
	nnz := m.NNZ()
	mt := &Matrix{
		Rows:       m.Cols,
		Cols:       m.Rows,
		Values:     make([]int64, nnz),
		ColIndices: make([]int, nnz),
		RowPtr:     make([]int, m.Cols+1),
	}
	for _, col := range m.ColIndices {
		mt.RowPtr[col+1]++
	}
	for r := 1; r <= m.Cols; r++ {
		mt.RowPtr[r] += mt.RowPtr[r-1]
	}
	next := append(mt.RowPtr[:0:0], mt.RowPtr[:m.Cols]...)
	// Rows are scanned in ascending order, so each transposed row's
	// column indices come out already sorted.
	for row := 0; row < m.Rows; row++ {
		for p := m.RowPtr[row]; p < m.RowPtr[row+1]; p++ {
			col := m.ColIndices[p]
			q := next[col]
			next[col]++
			mt.Values[q] = m.Values[p]
			mt.ColIndices[q] = row
		}
	}
	mt.Values = util.ShrinkWrap(mt.Values)
	mt.ColIndices = util.ShrinkWrap(mt.ColIndices)
	return mt
}

// CooEntries returns all entries in coordinate format,
// in row-major, column-ascending order.
func (m *Matrix) CooEntries() []CooEntry {
	entries := make([]CooEntry, 0, m.NNZ())
	for row := 0; row < m.Rows; row++ {
		for p := m.RowPtr[row]; p < m.RowPtr[row+1]; p++ {
			entries = append(entries, CooEntry{
				Row:    row,
				Column: m.ColIndices[p],
				Value:  m.Values[p],
			})
		}
	}
	return util.ShrinkWrap(entries)
}
