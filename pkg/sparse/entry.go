package sparse

// CooEntry is a sparse matrix coordinate-format ("Coo") entry.
// Used as an input to a sparse matrix builder.
type CooEntry struct {
	Row, Column int
	Value       int64
}

// CSREntriesSort sorts CooEntry objects by (row, column) key.
//
// Sort with sort.Stable so that duplicate (row, column) entries keep
// their input order; the builder then lets the later one win.
type CSREntriesSort []CooEntry

func (a CSREntriesSort) Len() int      { return len(a) }
func (a CSREntriesSort) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a CSREntriesSort) Less(i, j int) bool {
	switch {
	case a[i].Row < a[j].Row:
		return true
	case a[i].Row > a[j].Row:
		return false
	case a[i].Column < a[j].Column:
		return true
	}
	return false
}
