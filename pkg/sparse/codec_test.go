package sparse

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intmat/intmat/pkg/util"
)

func TestParseMatrix(t *testing.T) {
	text := strings.Join([]string{
		"rows=2",
		"cols=2",
		"(0, 0, 1)",
		"(0,1,2)",
		"( 1 , 1 , 3 )",
		"",
	}, "\n")
	m, err := ParseMatrix(strings.NewReader(text))
	require.NoError(t, err)
	want := util.Must(NewMatrixFromEntries(2, 2, []CooEntry{
		{0, 0, 1},
		{0, 1, 2},
		{1, 1, 3},
	}))
	assert.True(t, m.Equal(want), "parsed %#v, want %#v", m, want)
}

func TestParseMatrix_UnsortedInput(t *testing.T) {
	text := "rows=3\ncols=3\n(2, 0, 9)\n(0, 2, 1)\n(1, 1, 5)\n(0, 0, 4)\n"
	m, err := ParseMatrix(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 4}, m.RowPtr)
	assert.Equal(t, []int{0, 2, 1, 0}, m.ColIndices)
	assert.Equal(t, []int64{4, 1, 5, 9}, m.Values)
}

func TestParseMatrix_ColumnClamp(t *testing.T) {
	// col == cols is clamped to cols-1, not rejected.
	text := "rows=1\ncols=4\n(0, 4, 5)\n"
	m, err := ParseMatrix(strings.NewReader(text))
	require.NoError(t, err)
	got, err := m.Get(0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
	assert.Equal(t, 1, m.NNZ())
}

func TestParseMatrix_DuplicateLastWins(t *testing.T) {
	text := "rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 3)\n(0, 0, 2)\n(1, 1, 0)\n"
	m, err := ParseMatrix(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, int64(2), util.Must(m.Get(0, 0)))
	assert.Equal(t, 1, m.NNZ(), "the later zero must delete (1,1)")
}

func TestParseMatrix_Errors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantLine int
	}{
		{"Empty", "", 0},
		{"MissingCols", "rows=2\n", 1},
		{"SwappedHeader", "cols=2\nrows=2\n", 1},
		{"NonIntegerRows", "rows=x\ncols=2\n", 1},
		{"ZeroRows", "rows=0\ncols=2\n", 1},
		{"NegativeCols", "rows=2\ncols=-1\n", 2},
		{"JunkEntry", "rows=2\ncols=2\nhello\n", 3},
		{"UnclosedParen", "rows=2\ncols=2\n(0, 0, 1\n", 3},
		{"TooFewFields", "rows=2\ncols=2\n(0, 1)\n", 3},
		{"NonIntegerField", "rows=2\ncols=2\n(0, 0, x)\n", 3},
		{"NegativeRow", "rows=2\ncols=2\n(-1, 0, 1)\n", 3},
		{"NegativeCol", "rows=2\ncols=2\n(0, -1, 1)\n", 3},
		{"RowOutOfRange", "rows=2\ncols=2\n(2, 0, 1)\n", 3},
		{"ColPastClamp", "rows=2\ncols=2\n(0, 3, 1)\n", 3},
		{"ErrorLineSkipsBlanks", "rows=2\ncols=2\n\n\n(9, 0, 1)\n", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMatrix(strings.NewReader(tt.text))
			var fe FormatError
			require.ErrorAs(t, err, &fe, "error = %v", err)
			assert.Equal(t, tt.wantLine, fe.Line)
		})
	}
}

func TestMatrix_WriteInto(t *testing.T) {
	m := util.Must(NewMatrixFromEntries(3, 3, []CooEntry{
		{2, 0, 9},
		{0, 2, 1},
		{0, 0, 4},
		{1, 1, -5},
	}))
	want := strings.Join([]string{
		"rows=3",
		"cols=3",
		"(0, 0, 4)",
		"(0, 2, 1)",
		"(1, 1, -5)",
		"(2, 0, 9)",
		"",
	}, "\n")
	assert.Equal(t, want, m.String())
}

func TestMatrix_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    *Matrix
	}{
		{"Empty", util.Must(NewMatrix(4, 7))},
		{"Normal", util.Must(NewMatrixFromEntries(5, 4, []CooEntry{
			{0, 0, 100},
			{1, 3, -500},
			{3, 1, 700},
			{4, 2, 1000},
		}))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseMatrix(strings.NewReader(tt.m.String()))
			require.NoError(t, err)
			assert.True(t, parsed.Equal(tt.m),
				"round trip %#v, want %#v", parsed, tt.m)
		})
	}
}

func TestFormatError_Unwrap(t *testing.T) {
	_, err := ParseMatrix(strings.NewReader("rows=2\ncols=2\n(0, 0, x)\n"))
	require.Error(t, err)
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr,
		"FormatError should carry the strconv cause")
}
