// Package root contains the root command for the application
package root

import (
	"github.com/spf13/cobra"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/config"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
)

// CommonFlags represents the flags that are shared across commands
type CommonFlags struct {
	Output string
	Format string
}

var (
	// Cfg holds the resolved configuration, populated before any command runs
	Cfg *config.Config

	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// SharedFlags are accessible to all subcommands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "card-wrapped",
		Short: "Turn credit card exports into a year-in-review spending report.",
		Long: `card-wrapped ingests credit card exports (CSV) and statements (PDF),
normalizes and deduplicates the transactions, and produces a spending
summary with categories, a persona, and achievement badges.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format: text or json")
}
