package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rajeebsahoo/qkart-frontend/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	endpoint := flag.String("endpoint", "", "override API endpoint (optional)")
	token := flag.String("token", "", "override the stored session token (optional)")
	refreshSeconds := flag.Int("refresh", 0, "cart refresh interval in seconds (optional, disabled by default)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Endpoint:   *endpoint,
		Token:      *token,
	}
	if refresh := *refreshSeconds; refresh > 0 {
		opts.RefreshEvery = refresh
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "qkart: %v\n", err)
		return 1
	}
	return 0
}
