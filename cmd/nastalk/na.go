package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/featuretab"
	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/stalk"
)

var naOpts struct {
	fasta       string
	beginRegex  string
	endRegex    string
	startOffset int
	endOffset   int
	dropFirst   bool
	refID       string
	minDate     string
	maxDate     string
	out         string
	audit       string
}

var naCmd = &cobra.Command{
	Use:   "na",
	Short: "Compute NA stalk lengths from an aligned NA FASTA",
	RunE:  runNA,
}

func init() {
	rootCmd.AddCommand(naCmd)

	naCmd.Flags().StringVar(&naOpts.fasta, "fasta", "", "aligned NA FASTA input, optionally gzipped")
	naCmd.Flags().StringVar(&naOpts.beginRegex, "begin-regex", "", "motif whose match end anchors the stalk start")
	naCmd.Flags().StringVar(&naOpts.endRegex, "end-regex", "", "motif whose match start anchors the stalk end")
	naCmd.Flags().IntVar(&naOpts.startOffset, "start-offset", 0, "shift applied to the resolved stalk start")
	naCmd.Flags().IntVar(&naOpts.endOffset, "end-offset", 0, "shift applied to the resolved stalk end")
	naCmd.Flags().BoolVar(&naOpts.dropFirst, "drop-first", false, "exclude the reference sequence from the output")
	naCmd.Flags().StringVar(&naOpts.refID, "ref-id", "", "EPI identifier of the reference sequence (default: first filtered record)")
	naCmd.Flags().StringVar(&naOpts.minDate, "min-date", "", "keep records collected on or after this date (YYYY-MM-DD)")
	naCmd.Flags().StringVar(&naOpts.maxDate, "max-date", "", "keep records collected on or before this date (YYYY-MM-DD)")
	naCmd.Flags().StringVar(&naOpts.out, "out", "", "output CSV path")
	naCmd.Flags().StringVar(&naOpts.audit, "audit", "", "write a JSON audit record to this path")

	naCmd.MarkFlagRequired("fasta")
	naCmd.MarkFlagRequired("begin-regex")
	naCmd.MarkFlagRequired("end-regex")
	naCmd.MarkFlagRequired("out")
}

func runNA(cmd *cobra.Command, args []string) error {
	kept, err := loadAnnotated("NA", naOpts.fasta, naOpts.minDate, naOpts.maxDate)
	if err != nil {
		return err
	}
	if len(kept) == 0 {
		return errors.New("no valid NA sequences")
	}

	refIdx := 0
	if naOpts.refID != "" {
		refIdx = -1
		for i, rec := range kept {
			if strings.EqualFold(rec.EPI, naOpts.refID) {
				refIdx = i
				break
			}
		}
		if refIdx < 0 {
			return fmt.Errorf("reference %s not present after filtering", naOpts.refID)
		}
	}
	ref := kept[refIdx]

	interval, err := stalk.ResolveInterval(ref.Residues, naOpts.beginRegex, naOpts.endRegex, naOpts.startOffset, naOpts.endOffset)
	if err != nil {
		return err
	}
	logger.Debug("resolved stalk interval", "ref", ref.EPI, "start", interval.Start, "end", interval.End)

	if naOpts.dropFirst {
		kept = append(kept[:refIdx], kept[refIdx+1:]...)
	}

	rows := make([]featuretab.NARow, 0, len(kept))
	lengths := make([]int, 0, len(kept))
	for _, rec := range kept {
		n := interval.Length(rec.Residues)
		rows = append(rows, featuretab.NARow{EPI: rec.EPI, Date: rec.Date, StalkLength: n})
		lengths = append(lengths, n)
	}

	if err := featuretab.WriteNA(naOpts.out, rows); err != nil {
		return err
	}
	logger.Info("wrote NA stalk lengths", "path", naOpts.out, "rows", len(rows))
	summarize("stalk length", lengths)

	return writeAudit(naOpts.audit, cmd)
}
