package sparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseMatrix reads a matrix from its text form:
//
//	rows=<N>
//	cols=<M>
//	(row, col, value)
//	...
//
// Whitespace inside the parentheses is arbitrary; blank lines are
// ignored.  Malformed input yields a FormatError carrying the line
// number.
//
// Two quirks of the format are preserved deliberately:
//
//   - A column equal to cols (one past the last valid index) is clamped
//     to cols-1 rather than rejected.  This matches files produced by
//     upstream generators with an off-by-one; the clamp applies to that
//     one value only, and any larger column is still an error.
//   - Duplicate (row, col) entries are legal; the one later in the file
//     wins, including a zero that deletes an earlier value.
func ParseMatrix(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			if text := strings.TrimSpace(sc.Text()); text != "" {
				return text, true
			}
		}
		return "", false
	}
	rows, err := parseHeader(next, &lineNo, "rows")
	if err != nil {
		return nil, err
	}
	cols, err := parseHeader(next, &lineNo, "cols")
	if err != nil {
		return nil, err
	}
	var entries []CooEntry
	for {
		text, ok := next()
		if !ok {
			break
		}
		entry, err := parseEntry(text, lineNo, rows, cols)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, FormatError{Line: lineNo, Msg: "read failed", Err: err}
	}
	return NewMatrixFromEntries(rows, cols, entries)
}

func parseHeader(
	next func() (string, bool), lineNo *int, name string,
) (int, error) {
	text, ok := next()
	if !ok {
		return 0, FormatError{
			Line: *lineNo,
			Msg:  fmt.Sprintf("missing %s= header", name),
		}
	}
	rest, found := strings.CutPrefix(text, name+"=")
	if !found {
		return 0, FormatError{
			Line: *lineNo,
			Msg:  fmt.Sprintf("expected %s= header, got %q", name, text),
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, FormatError{
			Line: *lineNo,
			Msg:  fmt.Sprintf("invalid %s value %q", name, rest),
			Err:  err,
		}
	}
	if n <= 0 {
		return 0, FormatError{
			Line: *lineNo,
			Msg:  fmt.Sprintf("%s must be positive, got %d", name, n),
		}
	}
	return n, nil
}

func parseEntry(text string, line, rows, cols int) (CooEntry, error) {
	malformed := func(format string, v ...any) (CooEntry, error) {
		return CooEntry{}, FormatError{
			Line: line,
			Msg:  fmt.Sprintf(format, v...),
		}
	}
	inner, ok := strings.CutPrefix(text, "(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}
	if !ok {
		return malformed("entry %q is not of the form (row, col, value)",
			text)
	}
	fields := strings.Split(inner, ",")
	if len(fields) != 3 {
		return malformed("entry %q has %d fields, want 3", text, len(fields))
	}
	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return CooEntry{}, FormatError{
			Line: line,
			Msg:  fmt.Sprintf("invalid row %q", fields[0]),
			Err:  err,
		}
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return CooEntry{}, FormatError{
			Line: line,
			Msg:  fmt.Sprintf("invalid column %q", fields[1]),
			Err:  err,
		}
	}
	value, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return CooEntry{}, FormatError{
			Line: line,
			Msg:  fmt.Sprintf("invalid value %q", fields[2]),
			Err:  err,
		}
	}
	switch {
	case row < 0 || row >= rows:
		return malformed("row %d out of range 0 <= row < %d", row, rows)
	case col < 0 || col > cols:
		return malformed("column %d out of range 0 <= col < %d", col, cols)
	case col == cols:
		col = cols - 1 // see the clamp note on ParseMatrix
	}
	return CooEntry{Row: row, Column: col, Value: value}, nil
}

// WriteInto writes the matrix in its text form: the dimension headers
// followed by one (row, col, value) line per stored entry, in
// row-major, column-ascending order, terminated by a newline.
func (m *Matrix) WriteInto(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "rows=%d\ncols=%d\n", m.Rows,
		m.Cols); err != nil {
		return err
	}
	for row := 0; row < m.Rows; row++ {
		for p := m.RowPtr[row]; p < m.RowPtr[row+1]; p++ {
			if _, err := fmt.Fprintf(bw, "(%d, %d, %d)\n", row,
				m.ColIndices[p], m.Values[p]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// String returns the matrix in its text form.
func (m *Matrix) String() string {
	var sb strings.Builder
	_ = m.WriteInto(&sb) // strings.Builder writes cannot fail
	return sb.String()
}
