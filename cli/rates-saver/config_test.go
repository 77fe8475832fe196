package main

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestGetConfig(t *testing.T) {
	t.Run("MissingAPIURL", func(t *testing.T) {
		viper.Reset()
		asserts := require.New(t)

		config, err := getConfig()

		asserts.ErrorIs(err, ErrMissingAPIURL)
		asserts.Nil(config)
	})

	t.Run("MissingAccessKey", func(t *testing.T) {
		viper.Reset()
		asserts := require.New(t)

		t.Setenv("RATES_SAVER_API_URL", "https://rates.test")

		config, err := getConfig()

		asserts.ErrorIs(err, ErrMissingAccessKey)
		asserts.Nil(config)
	})

	t.Run("DefaultsApply", func(t *testing.T) {
		viper.Reset()
		asserts := require.New(t)

		t.Setenv("RATES_SAVER_API_URL", "https://rates.test/")
		t.Setenv("RATES_SAVER_ACCESS_KEY", "123456")

		config, err := getConfig()

		asserts.NoError(err)
		asserts.Equal("https://rates.test", config.APIURL)
		asserts.Equal("123456", config.AccessKey)
		asserts.Equal("./data", config.OutputDir)
		asserts.Equal(4, config.Concurrency)
		asserts.Equal(3, config.Policy.MaxRetries)
		asserts.Equal(10*time.Second, config.Policy.AttemptTimeout)
		asserts.Equal(2*time.Second, config.Policy.BackoffDelay)
		asserts.Empty(config.PushgatewayURL)
	})

	t.Run("EnvironmentOverridesDefaults", func(t *testing.T) {
		viper.Reset()
		asserts := require.New(t)

		t.Setenv("RATES_SAVER_API_URL", "https://rates.test")
		t.Setenv("RATES_SAVER_ACCESS_KEY", "123456")
		t.Setenv("RATES_SAVER_CONCURRENCY", "8")
		t.Setenv("RATES_SAVER_BACKOFF", "250ms")
		t.Setenv("RATES_SAVER_PUSHGATEWAY", "https://push.test")

		config, err := getConfig()

		asserts.NoError(err)
		asserts.Equal(8, config.Concurrency)
		asserts.Equal(250*time.Millisecond, config.Policy.BackoffDelay)
		asserts.Equal("https://push.test", config.PushgatewayURL)
	})
}
