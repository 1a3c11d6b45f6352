// LazySurvey is a terminal UI for browsing the Pompeii food and drink
// feature survey. It provides a lazygit-inspired interface for searching
// feature sheets, following cross-references, and viewing photos.
//
// Usage:
//
//	lazysurvey [--source features.json] [--sheet 1042]
//	lazysurvey dedupe --file features.json
//
// Configuration is loaded from ~/.lazysurvey/config.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marjoballabani/lazysurvey/pkg/app"
)

// Build information, set via ldflags during compilation:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse HEAD)"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Viewer flags
	source string
	sheet  string
)

var rootCmd = &cobra.Command{
	Use:   "lazysurvey",
	Short: "Terminal browser for the Pompeii food and drink survey",
	Long: `LazySurvey browses the feature sheets of the Pompeii food and drink survey.

Sign in, search sheets by location or description, follow "Sheet N"
cross-references, and view each feature's photos.

Run without arguments to start the viewer.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp(&app.BuildInfo{
			Version: version,
			Commit:  commit,
			Date:    date,
		}, app.Options{
			ConfigFile: cfgFile,
			Source:     source,
			Sheet:      sheet,
			Verbose:    verbose,
		})
		if err != nil {
			return err
		}
		return application.Run(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lazysurvey %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.lazysurvey/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringVar(&source, "source", "", "feature document path or http(s) URL")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "sheet to select once records load")

	rootCmd.SetVersionTemplate("lazysurvey {{.Version}}\n")
	rootCmd.AddCommand(versionCmd, dedupeCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
