package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/featuretab"
	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/glyco"
)

var haOpts struct {
	fasta   string
	minDate string
	maxDate string
	out     string
	audit   string
}

var haCmd = &cobra.Command{
	Use:   "ha",
	Short: "Count HA glycosylation-site motifs from an aligned HA FASTA",
	RunE:  runHA,
}

func init() {
	rootCmd.AddCommand(haCmd)

	haCmd.Flags().StringVar(&haOpts.fasta, "fasta", "", "aligned HA FASTA input, optionally gzipped")
	haCmd.Flags().StringVar(&haOpts.minDate, "min-date", "", "keep records collected on or after this date (YYYY-MM-DD)")
	haCmd.Flags().StringVar(&haOpts.maxDate, "max-date", "", "keep records collected on or before this date (YYYY-MM-DD)")
	haCmd.Flags().StringVar(&haOpts.out, "out", "", "output CSV path")
	haCmd.Flags().StringVar(&haOpts.audit, "audit", "", "write a JSON audit record to this path")

	haCmd.MarkFlagRequired("fasta")
	haCmd.MarkFlagRequired("out")
}

func runHA(cmd *cobra.Command, args []string) error {
	kept, err := loadAnnotated("HA", haOpts.fasta, haOpts.minDate, haOpts.maxDate)
	if err != nil {
		return err
	}
	if len(kept) == 0 {
		return errors.New("no valid HA sequences")
	}

	rows := make([]featuretab.HARow, 0, len(kept))
	counts := make([]int, 0, len(kept))
	for _, rec := range kept {
		n := glyco.Count(rec.Residues)
		rows = append(rows, featuretab.HARow{EPI: rec.EPI, Date: rec.Date, GLSCount: n})
		counts = append(counts, n)
	}

	if err := featuretab.WriteHA(haOpts.out, rows); err != nil {
		return err
	}
	logger.Info("wrote HA GLS counts", "path", haOpts.out, "rows", len(rows))
	summarize("GLS count", counts)

	return writeAudit(haOpts.audit, cmd)
}
