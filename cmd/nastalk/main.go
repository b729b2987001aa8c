// nastalk extracts two features from aligned influenza protein FASTA -- NA
// stalk length and HA glycosylation-site count -- annotates them with EPI
// identifiers and collection dates, and joins them by sample into the CSVs
// consumed by downstream visualization.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
