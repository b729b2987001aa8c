package featuretab

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
	"github.com/gocarina/gocsv"
)

// SchemaError reports required columns absent from a feature table.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing columns {%s}", e.Path, strings.Join(e.Missing, ", "))
}

// ReadHA loads an HA feature table, verifying the EPI and GLS_count columns
// are present. A *SchemaError is returned when they are not.
func ReadHA(path string) ([]HARow, error) {
	var rows []HARow
	if err := readCSV(path, &rows, "EPI", "GLS_count"); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadNA loads an NA feature table, verifying the EPI and Stalk_length
// columns are present. A *SchemaError is returned when they are not.
func ReadNA(path string) ([]NARow, error) {
	var rows []NARow
	if err := readCSV(path, &rows, "EPI", "Stalk_length"); err != nil {
		return nil, err
	}
	return rows, nil
}

// WriteNA writes an NA feature table, overwriting path.
func WriteNA(path string, rows []NARow) error { return writeCSV(path, &rows) }

// WriteHA writes an HA feature table, overwriting path.
func WriteHA(path string, rows []HARow) error { return writeCSV(path, &rows) }

// WriteMerged writes a merged feature table, overwriting path.
func WriteMerged(path string, rows []MergedRow) error { return writeCSV(path, &rows) }

// WriteContingency writes a contingency table, overwriting path.
func WriteContingency(path string, rows []ContingencyRow) error { return writeCSV(path, &rows) }

func readCSV(path string, out interface{}, required ...string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return pfx.Err(err)
	}

	delim := determineDelimiter(bytes.NewReader(b))

	header, err := csvReader(bytes.NewReader(b), delim).Read()
	if errors.Is(err, io.EOF) {
		return &SchemaError{Path: path, Missing: required}
	} else if err != nil {
		return pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	if missing := missingColumns(header, required); len(missing) > 0 {
		return &SchemaError{Path: path, Missing: missing}
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return csvReader(in, delim)
	})
	if err := gocsv.UnmarshalBytes(b, out); err != nil {
		return pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return nil
}

func csvReader(in io.Reader, delim rune) *csv.Reader {
	r := csv.NewReader(in)
	r.Comma = delim
	r.LazyQuotes = true
	return r
}

// determineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file. Comma is the fallback.
func determineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

func missingColumns(header []string, required []string) []string {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

func writeCSV(path string, rows interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	return pfx.Err(gocsv.MarshalFile(rows, f))
}
