// Package stalk locates the NA stalk region on a reference sequence by its
// bounding motifs and measures the ungapped stalk length of co-aligned
// sequences over the resolved interval.
package stalk

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/alignment"
)

// Interval is the half-open aligned-coordinate range [Start, End) of the
// stalk region. It is resolved once, on a single reference, and applied
// unmodified to every other sequence in the run; all sequences must therefore
// share the reference's alignment.
type Interval struct {
	Start int
	End   int
}

// ResolveInterval searches the reference for beginMotif and endMotif
// (case-insensitive, first match each) and returns the interval from the end
// of the begin match to the start of the end match, shifted by the given
// offsets. A motif that does not match, or a resolved start at or past the
// resolved end, is an error: the interval is never clamped or swapped.
func ResolveInterval(reference, beginMotif, endMotif string, startOffset, endOffset int) (Interval, error) {
	beginRE, err := regexp.Compile("(?i)" + beginMotif)
	if err != nil {
		return Interval{}, pfx.Err(fmt.Errorf("invalid begin motif %q: %w", beginMotif, err))
	}
	endRE, err := regexp.Compile("(?i)" + endMotif)
	if err != nil {
		return Interval{}, pfx.Err(fmt.Errorf("invalid end motif %q: %w", endMotif, err))
	}

	begin := beginRE.FindStringIndex(reference)
	end := endRE.FindStringIndex(reference)
	if begin == nil || end == nil {
		return Interval{}, pfx.Err(fmt.Errorf("begin and/or end motifs not located in reference; adjust regex or offsets"))
	}

	iv := Interval{
		Start: begin[1] + startOffset,
		End:   end[0] + endOffset,
	}
	if iv.Start >= iv.End {
		return Interval{}, pfx.Err(fmt.Errorf("computed stalk start %d >= end %d; check regex or offsets", iv.Start, iv.End))
	}

	return iv, nil
}

// Length counts the non-gap residues of the aligned sequence that fall inside
// the interval. Bounds past the end of the sequence degrade to the available
// residues; alignment consistency with the reference is a caller precondition,
// not checked here.
func (iv Interval) Length(residues string) int {
	start, end := iv.Start, iv.End
	if start < 0 {
		start = 0
	}
	if start > len(residues) {
		start = len(residues)
	}
	if end > len(residues) {
		end = len(residues)
	}
	if start >= end {
		return 0
	}

	return len(strings.ReplaceAll(residues[start:end], alignment.Gap, ""))
}
