// Command trialign computes an optimal global alignment of three DNA
// sequences read from FASTA files.
//
// Usage:
//
//	trialign [flags] <fasta1> <fasta2> <fasta3>
//	trialign config > trialign.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
