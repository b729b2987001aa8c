package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/auditlog"
)

const naFasta = `>EPI_ISL_100|2021-01-01
MKTAY---VN
>EPI_ISL_101|2021-01-02
MKTAYKK-VN
`

const haFasta = `>EPI_ISL_100|2021-01-01
NPSNAT---
>EPI_ISL_101|2021-01-02
NASNCT
>header_without_identifier
NAT
`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestPipelineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	naIn := writeFixture(t, dir, "na.fasta", naFasta)
	haIn := writeFixture(t, dir, "ha.fasta", haFasta)

	naOut := filepath.Join(dir, "na.csv")
	haOut := filepath.Join(dir, "ha.csv")
	mergedOut := filepath.Join(dir, "merged.csv")
	countsOut := filepath.Join(dir, "counts.csv")
	auditOut := filepath.Join(dir, "audit.json")

	require.NoError(t, execute(t,
		"na",
		"--fasta", naIn,
		"--begin-regex", "MKT",
		"--end-regex", "VN",
		"--start-offset", "0",
		"--end-offset", "0",
		"--out", naOut,
		"--audit", auditOut,
	))

	b, err := os.ReadFile(naOut)
	require.NoError(t, err)
	assert.Equal(t,
		"EPI,Date,Stalk_length\nEPI_ISL_100,2021-01-01,2\nEPI_ISL_101,2021-01-02,4\n",
		string(b))

	var entry auditlog.Entry
	ab, err := os.ReadFile(auditOut)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(ab, &entry))
	assert.Equal(t, "na", entry.Cmd)
	assert.Equal(t, naIn, entry.Args["fasta"])
	assert.Equal(t, "MKT", entry.Args["begin-regex"])

	require.NoError(t, execute(t,
		"ha",
		"--fasta", haIn,
		"--min-date", "",
		"--max-date", "",
		"--out", haOut,
	))

	b, err = os.ReadFile(haOut)
	require.NoError(t, err)
	assert.Equal(t,
		"EPI,Date,GLS_count\nEPI_ISL_100,2021-01-01,1\nEPI_ISL_101,2021-01-02,2\n",
		string(b))

	require.NoError(t, execute(t,
		"merge",
		"--ha", haOut,
		"--na", naOut,
		"--out", mergedOut,
		"--counts", countsOut,
	))

	b, err = os.ReadFile(mergedOut)
	require.NoError(t, err)
	assert.Equal(t,
		"EPI,Date,GLS_count,Stalk_length\nEPI_ISL_100,2021-01-01,1,2\nEPI_ISL_101,2021-01-02,2,4\n",
		string(b))

	b, err = os.ReadFile(countsOut)
	require.NoError(t, err)
	assert.Equal(t,
		"Stalk_length,GLS_count,Frequency\n2,1,1\n4,2,1\n",
		string(b))
}

func TestNADropFirstExcludesReference(t *testing.T) {
	dir := t.TempDir()
	naIn := writeFixture(t, dir, "na.fasta", naFasta)
	naOut := filepath.Join(dir, "na.csv")

	require.NoError(t, execute(t,
		"na",
		"--fasta", naIn,
		"--begin-regex", "MKT",
		"--end-regex", "VN",
		"--start-offset", "0",
		"--end-offset", "0",
		"--drop-first",
		"--out", naOut,
		"--audit", "",
	))
	naOpts.dropFirst = false

	b, err := os.ReadFile(naOut)
	require.NoError(t, err)
	assert.Equal(t, "EPI,Date,Stalk_length\nEPI_ISL_101,2021-01-02,4\n", string(b))
}

func TestNAMissingMotifFails(t *testing.T) {
	dir := t.TempDir()
	naIn := writeFixture(t, dir, "na.fasta", naFasta)
	naOut := filepath.Join(dir, "na.csv")

	err := execute(t,
		"na",
		"--fasta", naIn,
		"--begin-regex", "QQQQQ",
		"--end-regex", "VN",
		"--start-offset", "0",
		"--end-offset", "0",
		"--out", naOut,
		"--audit", "",
	)
	require.Error(t, err)
	assert.NoFileExists(t, naOut, "no output is written when boundary resolution fails")
}

func TestMergeMissingColumnsNamesBothSides(t *testing.T) {
	dir := t.TempDir()
	ha := writeFixture(t, dir, "ha.csv", "EPI,Date,Wrong\nEPI_ISL_1,2021-01-01,6\n")
	na := writeFixture(t, dir, "na.csv", "Identifier,Date,Stalk_length\nEPI_ISL_1,2021-01-01,40\n")

	err := execute(t,
		"merge",
		"--ha", ha,
		"--na", na,
		"--out", filepath.Join(dir, "merged.csv"),
		"--counts", "",
		"--audit", "",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GLS_count")
	assert.Contains(t, err.Error(), "EPI")
}

func TestMergeNoSharedIdentifiersFails(t *testing.T) {
	dir := t.TempDir()
	ha := writeFixture(t, dir, "ha.csv", "EPI,Date,GLS_count\nEPI_ISL_1,2021-01-01,6\n")
	na := writeFixture(t, dir, "na.csv", "EPI,Date,Stalk_length\nEPI_ISL_2,2021-01-01,40\n")

	err := execute(t,
		"merge",
		"--ha", ha,
		"--na", na,
		"--out", filepath.Join(dir, "merged.csv"),
		"--counts", "",
		"--audit", "",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rows after merge")
}
