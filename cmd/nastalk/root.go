package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ranjanaanataraj/2.3.4.4b-H5N1-RanjanaNataraj-KeshavLab/auditlog"
)

var logger = log.New(os.Stderr)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "nastalk",
	Short: "NA stalk-length and HA glycosylation-site pipeline for aligned influenza protein FASTA",
	Long: `nastalk derives per-sample numeric features from aligned influenza
protein FASTA: the ungapped NA stalk length between two anchor motifs, and
the HA N-X-[S/T] glycosylation-site count (X != P). Samples are keyed by the
EPI_ISL identifier in each FASTA header; collection dates (YYYY-MM-DD) are
optional but enable date-window filtering. The merge subcommand inner-joins
the two feature tables and can emit a frequency cross-tabulation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch strings.ToLower(logLevel) {
		case "debug":
			logger.SetLevel(log.DebugLevel)
		case "warn", "warning":
			logger.SetLevel(log.WarnLevel)
		case "error":
			logger.SetLevel(log.ErrorLevel)
		default:
			logger.SetLevel(log.InfoLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log verbosity: debug, info, warn, or error")
}

// flagMap flattens a command's full flag set, inherited flags included, into
// the argument map stored in the audit record.
func flagMap(cmd *cobra.Command) map[string]string {
	out := make(map[string]string)
	visit := func(f *pflag.Flag) { out[f.Name] = f.Value.String() }
	cmd.Flags().VisitAll(visit)
	cmd.InheritedFlags().VisitAll(visit)
	return out
}

// writeAudit records the invocation at path; no-op when path is empty.
func writeAudit(path string, cmd *cobra.Command) error {
	if path == "" {
		return nil
	}
	if err := auditlog.Write(path, cmd.Name(), flagMap(cmd)); err != nil {
		return err
	}
	logger.Debug("wrote audit record", "path", path)
	return nil
}

// summarize logs the distribution of an extracted feature column.
func summarize(label string, values []int) {
	if len(values) == 0 {
		return
	}

	data := stats.LoadRawData(values)
	mean, err := stats.Mean(data)
	if err != nil {
		return
	}
	median, err := stats.Median(data)
	if err != nil {
		return
	}

	logger.Info(label+" summary", "n", len(values), "mean", mean, "median", median)
}
