package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func handleSave(config *Config, logger, errLogger *log.Logger) error {
	runID := uuid.New().String()

	for _, job := range config.Jobs {
		if *config.debug {
			logger.Printf("run %s: saving %s snapshot", runID, job.Name)
		}

		if err := job.Service.Save(config.Ctx, job.URL()); err != nil {
			return fmt.Errorf("saving %s snapshot: %w", job.Name, err)
		}
	}

	// Metrics publishing is best effort: a dead Pushgateway must not fail a
	// run whose files are already on disk.
	if err := config.Metrics.Push(config.PushgatewayURL, "rates-saver", runID); err != nil {
		errLogger.Printf("pushing metrics: %v", err)
	}

	return nil
}

func save(config *Config) *cobra.Command {
	var every time.Duration

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Fetch rate snapshots and persist per-currency files",
	}

	logger := log.New(saveCmd.OutOrStdout(), "save ", 0)
	errLogger := log.New(saveCmd.OutOrStderr(), "save-error ", 0)

	saveCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := handleSave(config, logger, errLogger); err != nil {
			return err
		}

		if every <= 0 {
			return nil
		}

		for {
			select {
			case <-time.After(every):
				if err := handleSave(config, logger, errLogger); err != nil {
					errLogger.Printf("ERROR: %v", err)
				}
			case <-config.Ctx.Done():
				return nil
			}
		}
	}

	saveCmd.Flags().DurationVar(&every, "every", 0, "Re-run the save periodically instead of once")

	return saveCmd
}
