package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	ratesSaver "github.com/icmx/rates-saver"
	"github.com/icmx/rates-saver/cli/cmd"
	"github.com/icmx/rates-saver/fetchers"
	"github.com/icmx/rates-saver/metrics"
	"github.com/icmx/rates-saver/services"
	"github.com/icmx/rates-saver/storage"
)

func pathUnder(dir, kind string) ratesSaver.PathResolver {
	return func(currency string) string {
		return filepath.Join(dir, kind, currency+".csv")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	config, err := getConfig()

	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	collected := metrics.New()

	fetcher, err := fetchers.NewHTTPFetcher(
		config.Policy,
		&http.Client{},
		log.New(os.Stderr, "fetch ", log.LstdFlags),
		collected,
	)

	if err != nil {
		log.Fatalf("Error while creating fetcher: %v", err)
	}

	appendSink, err := storage.NewSink(storage.Append)

	if err != nil {
		log.Fatalf("Error while creating append sink: %v", err)
	}

	overwriteSink, err := storage.NewSink(storage.Overwrite)

	if err != nil {
		log.Fatalf("Error while creating overwrite sink: %v", err)
	}

	jobs := []cmd.Job{
		{
			Name: "historical",
			URL: func() string {
				return fmt.Sprintf("%s/%s?access_key=%s", config.APIURL, ratesSaver.YesterdayUTC(time.Now()), config.AccessKey)
			},
			Service: services.SaveService{
				Fetcher:     fetcher,
				Sink:        appendSink,
				PathFor:     pathUnder(config.OutputDir, "history"),
				Quotes:      ratesSaver.QuoteCurrencies,
				Concurrency: config.Concurrency,
				Metrics:     collected,
			},
		},
		{
			Name: "latest",
			URL: func() string {
				return fmt.Sprintf("%s/latest?access_key=%s", config.APIURL, config.AccessKey)
			},
			Service: services.SaveService{
				Fetcher:     fetcher,
				Sink:        overwriteSink,
				PathFor:     pathUnder(config.OutputDir, "latest"),
				Quotes:      ratesSaver.QuoteCurrencies,
				Concurrency: config.Concurrency,
				Metrics:     collected,
			},
		},
	}

	if err := cmd.Execute(&cmd.Config{
		Ctx:            ctx,
		Jobs:           jobs,
		Metrics:        collected,
		PushgatewayURL: config.PushgatewayURL,
	}); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
