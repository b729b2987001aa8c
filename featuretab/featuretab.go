// Package featuretab defines the tabular feature rows exchanged between
// pipeline stages and implements the HA/NA join and contingency aggregation.
// Column names match the CSVs consumed by the visualization collaborator and
// must not change.
package featuretab

import (
	"sort"
)

// NARow is one NA feature observation: the ungapped stalk length of a sample.
type NARow struct {
	EPI         string `csv:"EPI"`
	Date        string `csv:"Date"`
	StalkLength int    `csv:"Stalk_length"`
}

// HARow is one HA feature observation: the glycosylation-site count of a
// sample.
type HARow struct {
	EPI      string `csv:"EPI"`
	Date     string `csv:"Date"`
	GLSCount int    `csv:"GLS_count"`
}

// MergedRow pairs both features for a sample present in both input tables.
type MergedRow struct {
	EPI         string `csv:"EPI"`
	Date        string `csv:"Date"`
	GLSCount    int    `csv:"GLS_count"`
	StalkLength int    `csv:"Stalk_length"`
}

// ContingencyRow is one cell of the (stalk length x GLS count) frequency
// table.
type ContingencyRow struct {
	StalkLength int `csv:"Stalk_length"`
	GLSCount    int `csv:"GLS_count"`
	Frequency   int `csv:"Frequency"`
}

// Merge inner-joins the HA and NA tables on EPI. Samples present on only one
// side are dropped: only dual-assayed samples are analytically useful. When an
// EPI appears more than once on the NA side, its first stalk length wins. The
// result is ordered ascending by EPI, stable with HA input order for ties.
func Merge(ha []HARow, na []NARow) []MergedRow {
	stalk := make(map[string]int, len(na))
	for _, r := range na {
		if _, seen := stalk[r.EPI]; !seen {
			stalk[r.EPI] = r.StalkLength
		}
	}

	var out []MergedRow
	for _, h := range ha {
		length, ok := stalk[h.EPI]
		if !ok {
			continue
		}
		out = append(out, MergedRow{
			EPI:         h.EPI,
			Date:        h.Date,
			GLSCount:    h.GLSCount,
			StalkLength: length,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].EPI < out[j].EPI })

	return out
}

// Contingency cross-tabulates merged rows by (stalk length, GLS count). One
// row is emitted per observed pair, with Frequency the number of merged rows
// sharing that pair, sorted ascending by stalk length then GLS count.
func Contingency(rows []MergedRow) []ContingencyRow {
	type pair struct {
		stalk int
		gls   int
	}

	freq := make(map[pair]int, len(rows))
	for _, r := range rows {
		freq[pair{r.StalkLength, r.GLSCount}]++
	}

	out := make([]ContingencyRow, 0, len(freq))
	for p, n := range freq {
		out = append(out, ContingencyRow{StalkLength: p.stalk, GLSCount: p.gls, Frequency: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StalkLength != out[j].StalkLength {
			return out[i].StalkLength < out[j].StalkLength
		}
		return out[i].GLSCount < out[j].GLSCount
	})

	return out
}
