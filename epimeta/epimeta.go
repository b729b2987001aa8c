// Package epimeta extracts EPI_ISL sample identifiers and collection dates
// from FASTA headers and applies the inclusive date window used by the
// pipeline. Records without an identifier are rejected; records without a
// date are kept and always pass the date filter.
package epimeta

import (
	"regexp"

	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/alignment"
)

var (
	epiRE  = regexp.MustCompile(`(?i)EPI_ISL_\d+`)
	dateRE = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// Annotated couples a sequence record with its parsed sample metadata. EPI is
// never empty; Date is empty when the header carries no recognizable date.
type Annotated struct {
	alignment.Record
	EPI  string
	Date string
}

// Rejection names a header that was dropped during annotation and why.
type Rejection struct {
	Header string
	Reason string
}

// Annotate scans each record's header for an EPI_ISL identifier and a
// YYYY-MM-DD date, first match wins for both. Records lacking an identifier
// are returned as rejections rather than annotated records. Input order is
// preserved among survivors.
func Annotate(records []alignment.Record) ([]Annotated, []Rejection) {
	annotated := make([]Annotated, 0, len(records))
	var rejected []Rejection

	for _, rec := range records {
		epi := epiRE.FindString(rec.Header)
		if epi == "" {
			rejected = append(rejected, Rejection{
				Header: rec.Header,
				Reason: "no EPI_ISL identifier in header",
			})
			continue
		}

		annotated = append(annotated, Annotated{
			Record: rec,
			EPI:    epi,
			Date:   dateRE.FindString(rec.Header),
		})
	}

	return annotated, rejected
}

// FilterByDate keeps records whose date falls within the inclusive
// [minDate, maxDate] window. Either bound may be empty, meaning unbounded on
// that side. Records with no date always pass: unknown collection dates are
// deliberately not excluded. Comparison is lexicographic, which is ordering-
// correct for the fixed-width YYYY-MM-DD format.
func FilterByDate(records []Annotated, minDate, maxDate string) []Annotated {
	out := make([]Annotated, 0, len(records))
	for _, rec := range records {
		if rec.Date == "" {
			out = append(out, rec)
			continue
		}
		if minDate != "" && rec.Date < minDate {
			continue
		}
		if maxDate != "" && rec.Date > maxDate {
			continue
		}
		out = append(out, rec)
	}
	return out
}
