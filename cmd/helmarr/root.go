package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/vmunix/helmarr/internal/arr"
	"github.com/vmunix/helmarr/internal/config"
	"github.com/vmunix/helmarr/internal/events"
	"github.com/vmunix/helmarr/internal/instance"
	"github.com/vmunix/helmarr/internal/registry"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "helmarr",
	Short: "Remote control for movie and series managers",
	Long: `helmarr - remote control for movie and series managers

Register Radarr and Sonarr instances, inspect library state,
search indexers for releases, and dispatch downloads.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("helmarr {{.Version}}\n")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the helmarr version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("helmarr %s\n", version)
		},
	})
}

// app holds the wired components shared by all commands.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	db        *sql.DB
	store     *registry.Store
	bus       *events.Bus
	lifecycle *instance.Lifecycle
}

// newApp loads configuration and opens the registry database.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: configPath, Errors: errs}
	}

	log := newLogger(cfg.Log.Level)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := registry.NewStore(db)
	if err := store.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	bus := events.NewBus(log.With("component", "bus"))
	prober := instance.NewProber(nil, log.With("component", "prober"))
	lifecycle := instance.NewLifecycle(store, prober, bus, log.With("component", "lifecycle"))

	return &app{
		cfg:       cfg,
		log:       log,
		db:        db,
		store:     store,
		bus:       bus,
		lifecycle: lifecycle,
	}, nil
}

func (a *app) Close() {
	_ = a.bus.Close()
	_ = a.db.Close()
}

// selected returns the selected instance and a client for it.
func (a *app) selected(ctx context.Context) (*instance.Instance, arr.API, error) {
	id, err := a.store.Selected(ctx)
	if err != nil {
		return nil, nil, err
	}
	if id == 0 {
		return nil, nil, errors.New("no instance selected; run 'helmarr instance select'")
	}

	inst, err := a.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return inst, a.client(*inst), nil
}

// client builds a manager client from a descriptor.
func (a *app) client(inst instance.Instance) arr.API {
	opts := []arr.Option{
		arr.WithTimeout(inst.Timeout()),
		arr.WithLogger(a.log.With("instance", inst.Label)),
	}
	for _, h := range inst.Headers {
		opts = append(opts, arr.WithHeader(h.Name, h.Value))
	}
	return arr.New(inst.BaseURL, inst.APIKey, opts...)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	path, err := config.Discover()
	if err != nil {
		// No config file is fine for a client; defaults cover it.
		return config.Default(), nil
	}
	configPath = path
	return config.Load(path)
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return
	}
	fmt.Println(string(data))
}

// printConnectionError renders the single-alert presentation of a typed
// connection error: title plus recovery suggestion.
func printConnectionError(err error) {
	var cerr *instance.ConnectionError
	if errors.As(err, &cerr) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", cerr.Title(), cerr.Suggestion())
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}

func prompt(msg string) string {
	fmt.Print(msg)
	var input string
	_, _ = fmt.Scanln(&input)
	return input
}
