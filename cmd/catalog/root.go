package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/seed"
	"magazine-catalog/internal/usecase/catalog"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	stdout, stderr io.Writer

	v       *viper.Viper
	cfgFile string
	cfg     config.CatalogConfig

	logger          *slog.Logger
	metrics         *metrics.PrometheusMetrics
	service         *catalog.Service
	seeded          catalog.SeedResult
	shutdownTracing func(context.Context) error
}

// run executes the CLI with args and releases tracing and metrics output
// whether or not the command succeeded.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr, v: viper.New()}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if closeErr := a.close(ctx); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "catalog",
		Short:             "Explore authors, magazines and the articles linking them",
		Long:              `Loads a catalog dataset into an in-memory article registry and reports on authors, magazines and publishing activity.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML)")
	flags.String("seed", "", "dataset file (default: embedded dataset)")
	flags.StringP("output", "o", "", "output format: text or json")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")
	flags.Bool("trace", false, "write spans to stderr")
	flags.Bool("metrics", false, "write registry metrics to stderr after the command")

	// Bind flags to viper
	_ = a.v.BindPFlag("seed", flags.Lookup("seed"))
	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("observability.log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("observability.log_format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("observability.tracing", flags.Lookup("trace"))
	_ = a.v.BindPFlag("observability.metrics", flags.Lookup("metrics"))

	root.AddCommand(
		a.overviewCommand(),
		a.authorCommand(),
		a.magazineCommand(),
		a.topPublisherCommand(),
		a.validateCommand(),
	)
	return root
}

// setup resolves configuration, wires observability and seeds the registry.
// Environment variables supply defaults; the config file and flags override them.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(a.cfg.Observability.LogLevel)
	a.logger = logging.NewLogger(logging.Options{
		Level:  level,
		Format: a.cfg.Observability.LogFormat,
		Output: a.stderr,
	})
	ctx := logging.WithLogger(cmd.Context(), a.logger)
	cmd.SetContext(ctx)

	if a.cfg.Observability.EnableTracing {
		shutdown, err := tracing.InitStdout(a.stderr)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		a.shutdownTracing = shutdown
	}

	a.metrics = metrics.NewPrometheusMetrics()
	registry := memory.NewArticleRegistry(
		memory.WithMetrics(a.metrics),
		memory.WithLogger(a.logger),
	)
	a.service = catalog.NewService(registry, a.logger)

	dataset, source, err := a.loadDataset()
	if err != nil {
		return err
	}
	a.logger.Debug("dataset loaded",
		slog.String("source", source),
		slog.Int("authors", len(dataset.Authors)),
		slog.Int("magazines", len(dataset.Magazines)),
		slog.Int("articles", len(dataset.Articles)))

	a.seeded, err = a.service.Seed(ctx, dataset)
	if err != nil {
		return fmt.Errorf("seed %s: %w", source, err)
	}
	return nil
}

func (a *app) loadConfig() error {
	defaults, err := config.LoadCatalogConfig()
	if err != nil {
		return err
	}
	a.v.SetDefault("seed", defaults.SeedFile)
	a.v.SetDefault("output", defaults.Output)
	a.v.SetDefault("observability.log_level", defaults.Observability.LogLevel)
	a.v.SetDefault("observability.log_format", defaults.Observability.LogFormat)
	a.v.SetDefault("observability.tracing", defaults.Observability.EnableTracing)
	a.v.SetDefault("observability.metrics", defaults.Observability.EnableMetrics)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (a *app) loadDataset() (seed.Dataset, string, error) {
	if a.cfg.SeedFile == "" {
		return seed.Default(), "embedded dataset", nil
	}
	ds, err := seed.LoadFile(a.cfg.SeedFile)
	if err != nil {
		return seed.Dataset{}, "", err
	}
	return ds, a.cfg.SeedFile, nil
}

// close dumps metrics when requested and flushes the tracer provider.
func (a *app) close(ctx context.Context) error {
	var err error
	if a.metrics != nil && a.cfg.Observability.EnableMetrics {
		err = metrics.WriteText(a.stderr, a.metrics.Registry())
	}
	if a.shutdownTracing != nil {
		if shutdownErr := a.shutdownTracing(ctx); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}
	return err
}
