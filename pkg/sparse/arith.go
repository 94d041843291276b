package sparse

import (
	"github.com/intmat/intmat/pkg/util"
)

// Add returns m + b as a new matrix.  Both operands are left untouched.
//
// Sums use native int64 arithmetic: results beyond the int64 range wrap
// around rather than fail.
func (m *Matrix) Add(b *Matrix) (*Matrix, error) {
	return m.combine(b, 1)
}

// Sub returns m - b as a new matrix.  Both operands are left untouched.
//
// Differences use native int64 arithmetic: results beyond the int64
// range wrap around rather than fail.
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) {
	return m.combine(b, -1)
}

// combine merges the operands row by row, walking the two sorted column
// lists in tandem.  Entries present in both operands at the same column
// are consumed together exactly once; combined values of zero are not
// stored.
func (m *Matrix) combine(b *Matrix, sign int64) (*Matrix, error) {
	if m.Rows != b.Rows || m.Cols != b.Cols {
		return nil, ErrDimensionMismatch
	}
	out := util.Must(NewMatrix(m.Rows, m.Cols))
	for row := 0; row < m.Rows; row++ {
		i, iEnd := m.RowPtr[row], m.RowPtr[row+1]
		j, jEnd := b.RowPtr[row], b.RowPtr[row+1]
		for i < iEnd || j < jEnd {
			var (
				col   int
				value int64
			)
			switch {
			case j == jEnd:
				col, value = m.ColIndices[i], m.Values[i]
				i++
			case i == iEnd:
				col, value = b.ColIndices[j], sign*b.Values[j]
				j++
			case m.ColIndices[i] < b.ColIndices[j]:
				col, value = m.ColIndices[i], m.Values[i]
				i++
			case b.ColIndices[j] < m.ColIndices[i]:
				col, value = b.ColIndices[j], sign*b.Values[j]
				j++
			default: // same column in both
				col = m.ColIndices[i]
				value = m.Values[i] + sign*b.Values[j]
				i++
				j++
			}
			if value != 0 {
				// In bounds by construction; produced in ascending
				// (row, column) order, so each Set appends at the tail.
				_ = out.Set(row, col, value)
			}
		}
	}
	out.Values = util.ShrinkWrap(out.Values)
	out.ColIndices = util.ShrinkWrap(out.ColIndices)
	return out, nil
}

// Mul returns the matrix product m * b as a new matrix.
// Both operands are left untouched.  Per-cell accumulation uses native
// int64 arithmetic: products or sums beyond the int64 range wrap around
// rather than fail.
//
// Each output row is accumulated into a dense scratch row of b.Cols
// cells and then re-compacted.  The scratch is fully cleared per output
// row, so very wide, mostly-empty right operands pay O(Cols) per row
// regardless of density; that clear is the dominant cost for such
// shapes.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if m.Cols != b.Rows {
		return nil, ErrDimensionMismatch
	}
	out := util.Must(NewMatrix(m.Rows, b.Cols))
	scratch := make([]int64, b.Cols)
	for row := 0; row < m.Rows; row++ {
		// Any column may have accumulated last iteration; clear them all.
		clear(scratch)
		for p := m.RowPtr[row]; p < m.RowPtr[row+1]; p++ {
			k, v := m.ColIndices[p], m.Values[p]
			for q := b.RowPtr[k]; q < b.RowPtr[k+1]; q++ {
				scratch[b.ColIndices[q]] += v * b.Values[q]
			}
		}
		// Scanning the scratch in index order yields ascending columns,
		// so the bulk append preserves the row's sort contract without
		// going through Set.
		for col, value := range scratch {
			if value != 0 {
				out.Values = append(out.Values, value)
				out.ColIndices = append(out.ColIndices, col)
			}
		}
		out.RowPtr[row+1] = len(out.Values)
	}
	out.Values = util.ShrinkWrap(out.Values)
	out.ColIndices = util.ShrinkWrap(out.ColIndices)
	return out, nil
}
