// Package root contains the root command and the shared application wiring
// for the CLI.
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"dmaia/sped-consolidate/internal/config"
	"dmaia/sped-consolidate/internal/container"
	"dmaia/sped-consolidate/internal/models"
)

var (
	// App is the dependency container built before any subcommand runs.
	App *container.Container

	// schedule is the injected transition-schedule collaborator. The CLI
	// itself ships without one; embedding programs can provide it through
	// SetScheduleFunc before Execute.
	schedule models.ScheduleFunc

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "sped-consolidate",
		Short: "Parse SPED bookkeeping files and consolidate financial and tax data.",
		Long: `sped-consolidate ingests government-mandated fiscal bookkeeping files
(ECD, EFD ICMS/IPI and EFD Contribuições) and consolidates them into
normalized financial and tax-composition data.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			App, err = container.NewContainer(cfg, schedule)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// SetScheduleFunc injects the transition-schedule collaborator. Must be
// called before Execute to have any effect.
func SetScheduleFunc(fn models.ScheduleFunc) {
	schedule = fn
}

// Execute runs the root command.
func Execute() error {
	return Cmd.Execute()
}
