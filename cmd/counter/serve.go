package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/weegigs/wee-counter-go/support"
)

var serveFlags struct {
	addr          string
	apiURL        string
	logLevel      string
	traceExporter string
	cacheSize     int
	fetchTimeout  time.Duration
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server, cleanup, err := initializeServer(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		return server.Run(ctx)
	},
}

func init() {
	flags := serveCmd.Flags()
	flags.StringVar(&serveFlags.addr, "addr", "", "listen address (COUNTER_ADDR)")
	flags.StringVar(&serveFlags.apiURL, "api-url", "", "base URL the home page fetches its seed from (COUNTER_API_URL)")
	flags.StringVar(&serveFlags.logLevel, "log-level", "", "log level (COUNTER_LOG_LEVEL)")
	flags.StringVar(&serveFlags.traceExporter, "trace-exporter", "", "none, console, otlp or jaeger (COUNTER_TRACE_EXPORTER)")
	flags.IntVar(&serveFlags.cacheSize, "page-cache-size", 0, "maximum cached counter pages (COUNTER_PAGE_CACHE_SIZE)")
	flags.DurationVar(&serveFlags.fetchTimeout, "fetch-timeout", 0, "seed fetch timeout, 0 for none (COUNTER_FETCH_TIMEOUT)")

	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the environment and applies any flags that were set.
func loadConfig(cmd *cobra.Command) (support.Config, error) {
	if err := support.LoadEnv(envFiles...); err != nil {
		return support.Config{}, err
	}

	cfg, err := support.FromEnvironment()
	if err != nil {
		return support.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = serveFlags.addr
	}
	if flags.Changed("api-url") {
		cfg.APIURL = serveFlags.apiURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = serveFlags.logLevel
	}
	if flags.Changed("trace-exporter") {
		cfg.TraceExporter = serveFlags.traceExporter
	}
	if flags.Changed("page-cache-size") {
		cfg.PageCacheSize = serveFlags.cacheSize
	}
	if flags.Changed("fetch-timeout") {
		cfg.FetchTimeout = serveFlags.fetchTimeout
	}

	return cfg, nil
}
