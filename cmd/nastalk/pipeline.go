package main

import (
	"fmt"

	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/alignment"
	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/epimeta"
)

// loadAnnotated runs the shared front of the pipeline: FASTA parsing, EPI and
// date annotation, and date-window filtering. Records dropped for lacking an
// EPI identifier are logged as warnings and excluded.
func loadAnnotated(label, fastaPath, minDate, maxDate string) ([]epimeta.Annotated, error) {
	records, err := alignment.ReadFile(fastaPath)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no FASTA records found in %s", fastaPath)
	}

	annotated, rejected := epimeta.Annotate(records)
	for _, rej := range rejected {
		logger.Warn("dropped record", "stage", label, "reason", rej.Reason, "header", rej.Header)
	}

	kept := epimeta.FilterByDate(annotated, minDate, maxDate)
	logger.Info("date filter", "stage", label, "before", len(annotated), "after", len(kept))

	return kept, nil
}
