// Package parse implements the "parse" subcommand: parse one bookkeeping
// file and print its statistics and record summary.
package parse

import (
	"fmt"

	"github.com/spf13/cobra"

	"dmaia/sped-consolidate/cmd/root"
	"dmaia/sped-consolidate/internal/fileutils"
	"dmaia/sped-consolidate/internal/parsererror"
	"dmaia/sped-consolidate/internal/spedparser"
)

var inputFile string

// Cmd is the parse command.
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a single SPED bookkeeping file and report its contents.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !fileutils.FileExists(inputFile) {
			return fmt.Errorf("input file not found: %s", inputFile)
		}

		content, err := fileutils.ReadFileText(inputFile)
		if err != nil {
			return err
		}

		result := root.App.Parser().ParseContent(content)
		if !result.Success {
			return &parsererror.InvalidFormatError{FilePath: inputFile, Msg: "no valid records found"}
		}

		out := cmd.OutOrStdout()
		if variant, ok := spedparser.DetectVariant(result); ok {
			fmt.Fprintf(out, "Detected variant: %s\n", variant)
		}
		if !result.Company.IsZero() {
			fmt.Fprintf(out, "Company: %s (CNPJ %s), period %s - %s\n",
				result.Company.Name, result.Company.TaxID,
				result.Company.PeriodStart, result.Company.PeriodEnd)
		}

		stats := result.Statistics
		fmt.Fprintf(out, "Lines processed: %d (errors: %d), valid records: %d, record types: %d\n",
			stats.LinesProcessed, stats.LinesWithErrors, stats.ValidRecords, stats.DistinctTypes())
		for _, rt := range result.TypeOrder {
			fmt.Fprintf(out, "  %s: %d\n", rt, stats.CountsByType[rt])
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input bookkeeping file")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}
