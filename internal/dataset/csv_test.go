package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeCSV(t, "a,b\n1.5,2\n3,4.25\n")

	tbl, err := LoadTable(path)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"a", "b"}, tbl.Columns())

	a, err := tbl.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3}, a)

	b, err := tbl.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4.25}, b)
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open")
}

func TestLoadTable_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	_, err := LoadTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestLoadTable_NonNumericCell(t *testing.T) {
	path := writeCSV(t, "a,b\n1,two\n")
	_, err := LoadTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "b"`)
	assert.Contains(t, err.Error(), "non-numeric")
}

func TestLoadTable_RaggedRow(t *testing.T) {
	// csv.Reader itself rejects rows with inconsistent field counts.
	path := writeCSV(t, "a,b\n1,2\n3\n")
	_, err := LoadTable(path)
	require.Error(t, err)
}

func TestColumn_Missing(t *testing.T) {
	path := writeCSV(t, "a\n1\n")
	tbl, err := LoadTable(path)
	require.NoError(t, err)

	_, err = tbl.Column("petal_width")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "petal_width")
}

func TestTail(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("x\n")
	for i := 1; i <= 250; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}
	tbl, err := LoadTable(writeCSV(t, sb.String()))
	require.NoError(t, err)

	tail := tbl.Tail(100)
	assert.Equal(t, 100, tail.Len())

	x, err := tail.Column("x")
	require.NoError(t, err)
	assert.Equal(t, 151.0, x[0])
	assert.Equal(t, 250.0, x[99])
}

func TestTail_ShorterThanWindow(t *testing.T) {
	tbl, err := LoadTable(writeCSV(t, "x\n1\n2\n3\n"))
	require.NoError(t, err)

	tail := tbl.Tail(100)
	assert.Same(t, tbl, tail)
	assert.Equal(t, 3, tail.Len())
}
