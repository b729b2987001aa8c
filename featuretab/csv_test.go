package featuretab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWriteReadNA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "na.csv")
	rows := []NARow{
		{EPI: "EPI_ISL_1", Date: "2021-01-01", StalkLength: 40},
		{EPI: "EPI_ISL_2", Date: "", StalkLength: 45},
	}
	require.NoError(t, WriteNA(path, rows))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "EPI,Date,Stalk_length\nEPI_ISL_1,2021-01-01,40\nEPI_ISL_2,,45\n", string(b))

	got, err := ReadNA(path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReadHATabDelimited(t *testing.T) {
	path := writeTemp(t, "ha.tsv", "EPI\tDate\tGLS_count\nEPI_ISL_1\t2021-01-01\t6\n")

	got, err := ReadHA(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, HARow{EPI: "EPI_ISL_1", Date: "2021-01-01", GLSCount: 6}, got[0])
}

func TestReadHAMissingColumns(t *testing.T) {
	path := writeTemp(t, "ha.csv", "EPI,Date,Wrong\nEPI_ISL_1,2021-01-01,6\n")

	_, err := ReadHA(path)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"GLS_count"}, se.Missing)
	assert.Contains(t, se.Error(), "GLS_count")
}

func TestReadNAEmptyFile(t *testing.T) {
	path := writeTemp(t, "na.csv", "")

	_, err := ReadNA(path)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"EPI", "Stalk_length"}, se.Missing)
}

func TestReadNAMissingFile(t *testing.T) {
	_, err := ReadNA(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	var se *SchemaError
	assert.False(t, errors.As(err, &se), "unreadable file is not a schema error")
}

func TestWriteContingencyHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.csv")
	require.NoError(t, WriteContingency(path, nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Stalk_length,GLS_count,Frequency\n", string(b))
}
