package cmd

import (
	"context"

	"github.com/spf13/cobra"

	ratesSaver "github.com/icmx/rates-saver"
	"github.com/icmx/rates-saver/metrics"
)

var (
	rootCmd = &cobra.Command{
		Use:     "rates-saver",
		Short:   "Currency exchange rate snapshot saver",
		Version: "v1.0.0",
	}
	debug bool
)

type (
	// Job binds one endpoint kind to the service that persists it. URL is a
	// function so the historical endpoint resolves "yesterday" at run time,
	// not at wiring time.
	Job struct {
		Name    string
		URL     func() string
		Service ratesSaver.Service
	}

	Config struct {
		Ctx            context.Context
		Jobs           []Job
		Metrics        *metrics.Metrics
		PushgatewayURL string
		debug          *bool
	}
)

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")
	config.debug = &debug

	rootCmd.AddCommand(save(config))

	return rootCmd.Execute()
}
