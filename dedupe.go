package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marjoballabani/lazysurvey/pkg/config"
	"github.com/marjoballabani/lazysurvey/pkg/logging"
	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

var (
	dedupeFile string
	dedupeKey  string
)

// dedupeCmd removes repeated features from a feature document in place,
// keeping a timestamped backup of the original.
var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate features from a feature document",
	Long: `Removes features that repeat the value of a key field, keeping the first.

A backup of the original is written next to it as <file>.bak.<timestamp>.
The key defaults to dedupe.key from the config (FEATURE_ID).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.NewConsole(verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		key := dedupeKey
		file := dedupeFile
		if key == "" || file == "" {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			if key == "" {
				key = cfg.Dedupe.Key
			}
			if file == "" {
				file = cfg.Data.Source
			}
		}

		logger.Debug("dedupe", zap.String("file", file), zap.String("key", key))
		result, err := survey.DedupeFile(file, key, time.Now())
		if err != nil {
			logger.Error("dedupe failed", zap.String("file", file), zap.Error(err))
			return err
		}

		out := cmd.OutOrStdout()
		for _, dup := range result.Duplicates {
			fmt.Fprintf(out, "Duplicate %s: %s\n", key, dup)
		}
		if result.MissingKey > 0 {
			fmt.Fprintf(out, "Skipped %d features without %s\n", result.MissingKey, key)
		}
		fmt.Fprintf(out, "Backup written to %s\n", result.BackupPath)
		fmt.Fprintf(out, "Original count: %d\n", result.Original)
		fmt.Fprintf(out, "New count: %d\n", result.Kept)
		fmt.Fprintf(out, "Removed: %d\n", result.Removed())

		logger.Info("dedupe complete",
			zap.String("file", file),
			zap.Int("original", result.Original),
			zap.Int("kept", result.Kept),
			zap.Int("removed", result.Removed()))
		return nil
	},
}

func init() {
	dedupeCmd.Flags().StringVarP(&dedupeFile, "file", "f", "", "feature document to rewrite (default data.source)")
	dedupeCmd.Flags().StringVarP(&dedupeKey, "key", "k", "", "field that identifies a feature (default dedupe.key)")
}
