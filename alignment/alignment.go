// Package alignment reads aligned protein FASTA files into flat records
// suitable for header parsing and per-residue feature extraction. Gap
// characters are preserved; stripping them is the caller's decision.
package alignment

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/carbocation/pfx"
)

// Gap is the alignment padding character excluded from length and motif
// calculations downstream.
const Gap = "-"

// Record is a single FASTA entry. Header is the full header line without the
// leading '>'; Residues is the aligned sequence with gaps intact.
type Record struct {
	Header   string
	Residues string
	Length   int
}

// ReadFile parses all records from a FASTA file. Files ending in .gz are
// decompressed transparently. A missing or unreadable file is an error; a
// readable file with no entries yields an empty slice, which callers must
// treat as a fatal condition for their stage.
func ReadFile(path string) ([]Record, error) {
	r, err := openReader(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	return Read(r)
}

// Read parses all FASTA records from r, preserving file order.
func Read(r io.Reader) ([]Record, error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.Protein)))

	var records []Record
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)

		header := s.Name()
		if desc := s.Description(); desc != "" {
			header = header + " " + desc
		}

		residues := s.Seq.String()
		records = append(records, Record{
			Header:   header,
			Residues: residues,
			Length:   len(residues),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, pfx.Err(err)
	}

	return records, nil
}

type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func openReader(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}

	return fh, nil
}
