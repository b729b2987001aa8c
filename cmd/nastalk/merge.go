package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/featuretab"
)

var mergeOpts struct {
	ha     string
	na     string
	out    string
	counts string
	audit  string
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Inner-join HA and NA feature tables by EPI; optionally cross-tabulate",
	RunE:  runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&mergeOpts.ha, "ha", "", "HA feature CSV (EPI, Date, GLS_count)")
	mergeCmd.Flags().StringVar(&mergeOpts.na, "na", "", "NA feature CSV (EPI, Date, Stalk_length)")
	mergeCmd.Flags().StringVar(&mergeOpts.out, "out", "", "merged CSV path")
	mergeCmd.Flags().StringVar(&mergeOpts.counts, "counts", "", "optional contingency CSV path")
	mergeCmd.Flags().StringVar(&mergeOpts.audit, "audit", "", "write a JSON audit record to this path")

	mergeCmd.MarkFlagRequired("ha")
	mergeCmd.MarkFlagRequired("na")
	mergeCmd.MarkFlagRequired("out")
}

func runMerge(cmd *cobra.Command, args []string) error {
	ha, errHA := featuretab.ReadHA(mergeOpts.ha)
	na, errNA := featuretab.ReadNA(mergeOpts.na)

	// Schema problems on both inputs are reported together.
	var missing []string
	for _, err := range []error{errHA, errNA} {
		var se *featuretab.SchemaError
		if errors.As(err, &se) {
			missing = append(missing, fmt.Sprintf("%s {%s}", se.Path, strings.Join(se.Missing, ", ")))
			continue
		}
		if err != nil {
			return err
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, "; "))
	}

	merged := featuretab.Merge(ha, na)
	if len(merged) == 0 {
		return errors.New("no rows after merge; the HA and NA tables share no EPI identifiers")
	}

	if err := featuretab.WriteMerged(mergeOpts.out, merged); err != nil {
		return err
	}
	logger.Info("wrote merged table", "path", mergeOpts.out, "rows", len(merged))

	if mergeOpts.counts != "" {
		counts := featuretab.Contingency(merged)
		if err := featuretab.WriteContingency(mergeOpts.counts, counts); err != nil {
			return err
		}
		logger.Info("wrote contingency table", "path", mergeOpts.counts, "rows", len(counts))
	}

	return writeAudit(mergeOpts.audit, cmd)
}
