// Package glyco counts potential N-linked glycosylation sites: occurrences of
// the N-X-[S/T] sequon where X is any residue except proline.
package glyco

import (
	"regexp"
	"strings"

	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/alignment"
)

var sequonRE = regexp.MustCompile(`[Nn][^Pp][SsTt]`)

// Count returns the number of non-overlapping sequon matches in the sequence
// after gap removal, scanning left to right. Adjacent matches are allowed; a
// residue consumed by one match cannot start the next.
func Count(residues string) int {
	ungapped := strings.ReplaceAll(residues, alignment.Gap, "")
	return len(sequonRE.FindAllString(ungapped, -1))
}
