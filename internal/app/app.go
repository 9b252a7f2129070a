package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rajeebsahoo/qkart-frontend/internal/config"
	"github.com/rajeebsahoo/qkart-frontend/internal/logging"
	"github.com/rajeebsahoo/qkart-frontend/internal/session"
	"github.com/rajeebsahoo/qkart-frontend/internal/state"
	"github.com/rajeebsahoo/qkart-frontend/internal/storefront"
	"github.com/rajeebsahoo/qkart-frontend/internal/ui"
)

// Options configure the storefront application.
type Options struct {
	ConfigPath   string
	Endpoint     string // overrides config when set
	Token        string // overrides the stored session token when set
	RefreshEvery int    // seconds between cart re-syncs; zero uses config
}

// Run boots the storefront TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}

	log, err := logging.Setup(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	sess, err := session.Load(cfg.SessionPath)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if opts.Token != "" {
		sess.Token = opts.Token
	}

	client, err := storefront.NewClient(cfg.Endpoint, cfg.HTTPTimeout())
	if err != nil {
		return fmt.Errorf("init storefront client: %w", err)
	}

	store := &state.Store{}
	svc := NewService(client, store, sess, log, cfg.SearchQuiet())

	// Catalog load gates the first cart sync; both run in the background
	// so the UI comes up immediately with the loading flag raised.
	svc.Start(ctx)

	refresh := cfg.CartRefresh()
	if opts.RefreshEvery > 0 {
		refresh = time.Duration(opts.RefreshEvery) * time.Second
	}
	svc.StartRefresh(ctx, refresh)

	return ui.Run(ui.Options{
		Context: ctx,
		Actions: svc,
		Store:   store,
		Session: sess,
	})
}
