package main

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/icmx/rates-saver/fetchers"
)

var (
	ErrMissingAPIURL    = errors.New("required environment value RATES_SAVER_API_URL is absent or empty")
	ErrMissingAccessKey = errors.New("required environment value RATES_SAVER_ACCESS_KEY is absent or empty")
)

type (
	Config struct {
		APIURL         string
		AccessKey      string
		OutputDir      string
		Concurrency    int
		Policy         fetchers.RetryPolicy
		PushgatewayURL string
	}
)

func getConfig() (*Config, error) {
	viper.SetEnvPrefix("RATES_SAVER")
	viper.AutomaticEnv()

	viper.SetDefault("output_dir", "./data")
	viper.SetDefault("concurrency", 4)
	viper.SetDefault("max_retries", 3)
	viper.SetDefault("attempt_timeout", "10s")
	viper.SetDefault("backoff", "2s")

	apiURL := strings.TrimRight(viper.GetString("api_url"), "/")

	if apiURL == "" {
		return nil, ErrMissingAPIURL
	}

	accessKey := viper.GetString("access_key")

	if accessKey == "" {
		return nil, ErrMissingAccessKey
	}

	return &Config{
		APIURL:      apiURL,
		AccessKey:   accessKey,
		OutputDir:   viper.GetString("output_dir"),
		Concurrency: viper.GetInt("concurrency"),
		Policy: fetchers.RetryPolicy{
			MaxRetries:     viper.GetInt("max_retries"),
			AttemptTimeout: viper.GetDuration("attempt_timeout"),
			BackoffDelay:   viper.GetDuration("backoff"),
		},
		PushgatewayURL: viper.GetString("pushgateway"),
	}, nil
}
