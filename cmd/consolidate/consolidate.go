// Package consolidate implements the "consolidate" subcommand: parse up to
// three variant files and write the consolidated dataset in the chosen
// format.
package consolidate

import (
	"fmt"

	"github.com/spf13/cobra"

	"dmaia/sped-consolidate/cmd/root"
	"dmaia/sped-consolidate/internal/extractor"
	"dmaia/sped-consolidate/internal/fileutils"
	"dmaia/sped-consolidate/internal/logging"
	"dmaia/sped-consolidate/internal/models"
)

var (
	ecdFile       string
	icmsFile      string
	contribFile   string
	outputFile    string
	outputFormat  string
	applySchedule bool
)

// Cmd is the consolidate command.
var Cmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Consolidate one or more variant files into a financial/tax dataset.",
	Long: `Consolidate parses the supplied bookkeeping files (any subset of the three
variants), extracts their financial and tax figures and merges them into one
consolidated dataset. Missing variants degrade to zero buckets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs := map[models.FileVariant]string{
			models.VariantECD:        ecdFile,
			models.VariantEFDICMS:    icmsFile,
			models.VariantEFDContrib: contribFile,
		}

		results := make(map[models.FileVariant]*models.ParseResult)
		for variant, path := range inputs {
			if path == "" {
				continue
			}
			if !fileutils.FileExists(path) {
				return fmt.Errorf("input file not found: %s", path)
			}
			content, err := fileutils.ReadFileText(path)
			if err != nil {
				return err
			}
			result := root.App.Parser().ParseContent(content)
			if !result.Success {
				root.App.Logger().Warn("File yielded no valid records, skipping",
					logging.Field{Key: logging.FieldFile, Value: path},
					logging.Field{Key: logging.FieldVariant, Value: string(variant)})
				continue
			}
			results[variant] = result
		}

		opts := extractor.Options{
			ApplyTransitionSchedule: applySchedule || root.App.Config().Consolidation.ApplyTransitionSchedule,
		}
		data := root.App.Consolidator().Consolidate(results, opts)

		format := outputFormat
		if format == "" {
			format = root.App.Config().Report.Format
		}

		if outputFile != "" {
			return root.App.Reports().WriteFile(data, format, outputFile)
		}

		content, err := root.App.Reports().Generate(data, format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(append(content, '\n'))
		return err
	},
}

func init() {
	Cmd.Flags().StringVar(&ecdFile, "ecd", "", "ECD file (income statement)")
	Cmd.Flags().StringVar(&icmsFile, "efd-icms", "", "EFD ICMS/IPI file (state tax)")
	Cmd.Flags().StringVar(&contribFile, "efd-contribuicoes", "", "EFD Contribuições file (PIS/COFINS)")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: json, yaml, csv or xlsx")
	Cmd.Flags().BoolVar(&applySchedule, "apply-schedule", false, "Apply the injected transition schedule")
}
