package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/justradojko/intellij-community/internal/api"
	"github.com/justradojko/intellij-community/internal/api/handlers"
	"github.com/justradojko/intellij-community/internal/config"
	"github.com/justradojko/intellij-community/internal/locator"
	"github.com/justradojko/intellij-community/internal/project"
	"github.com/justradojko/intellij-community/internal/tracing"
	"github.com/justradojko/intellij-community/pkg/logger"
)

func main() {
	cmd := newCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	projectRoot string
	logLevel    string
	port        int
}

func newCommand() *cobra.Command {
	return newCommandWithOptions(&options{})
}

func newCommandWithOptions(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the file locator REST server",
		Long: "Starts a REST server that answers whether a project file exists and can be navigated to.\n" +
			"Query: GET /api/file?file=<path>&line=<n>&column=<n>, JSON: POST /api/file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(ctx, cfg, opts.configFile(), flagOverrides(cmd, opts))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to config.yaml (default: $CONFIG_PATH, then /etc/locator, ./configs, .)")
	flags.StringVar(&opts.projectRoot, "project-root", "", "directory relative paths are resolved against")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug/info/warn/error")
	flags.IntVar(&opts.port, "port", 0, "port number to listen to")
	return cmd
}

func (o *options) configFile() string {
	if o.configPath != "" {
		return o.configPath
	}
	return os.Getenv("CONFIG_PATH")
}

// loadConfig reads file and environment configuration; flags set on the
// command line win over both.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.LoadEnvironmentConfig(opts.configFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flagOverrides(cmd, opts)(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command line: %w", err)
	}
	return cfg, nil
}

// flagOverrides returns a function applying the flags set on the command
// line. Reloaded configs go through it too, so a flag keeps winning.
func flagOverrides(cmd *cobra.Command, opts *options) func(*config.Config) {
	flags := cmd.Flags()
	return func(cfg *config.Config) {
		if flags.Changed("project-root") {
			cfg.Project.Root = opts.projectRoot
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = opts.logLevel
		}
		if flags.Changed("port") {
			cfg.Port = opts.port
		}
	}
}

func run(ctx context.Context, cfg *config.Config, configFile string, overrides func(*config.Config)) error {
	log := logger.New(cfg.LogLevel)
	log.Info("Starting file locator", "version", config.ServiceVersion, "environment", cfg.Environment)

	if cfg.Monitoring.TracingEnabled {
		tp, err := tracing.NewTracerProvider(ctx, cfg.Monitoring.ServiceName, config.ServiceVersion, cfg.Monitoring.OTLPEndpoint)
		if err != nil {
			log.Warn("Tracing disabled: exporter setup failed", "endpoint", cfg.Monitoring.OTLPEndpoint, "error", err)
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
				defer cancel()
				if err := tp.Shutdown(shutdownCtx); err != nil {
					log.Error("Failed to flush traces", "error", err)
				}
			}()
			log.Info("OTLP tracing enabled", "endpoint", cfg.Monitoring.OTLPEndpoint)
		}
	}

	model, err := project.NewModel(cfg.ProjectOptions(), log)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}
	if root, ok := model.Root(); ok {
		log.Info("Project opened", "root", root)
	} else {
		log.Warn("No project root configured; relative paths resolve against the working directory")
	}

	if cfg.Project.Watch {
		watcher := project.NewWatcher(model, log)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				log.Error("Project watcher failed", "error", err)
			}
		}()
	}

	if configFile != "" {
		cw := config.NewConfigWatcher(configFile, cfg, log)
		cw.RegisterWatcher(func(next *config.Config) {
			applyReload(model, next, overrides, log)
		})
		go func() {
			if err := cw.Start(ctx); err != nil {
				log.Error("Configuration watcher failed", "error", err)
			}
		}()
		defer cw.Stop()
	}

	loc := locator.New(model, model, log, locator.WithTracer(tracing.NewLocateTracer(cfg.Monitoring.ServiceName)))
	server := api.NewServer(cfg, log, loc, model, handlers.NewLogNavigator(log))

	if err := server.Start(ctx); err != nil {
		return err
	}

	log.Info("File locator shutdown complete")
	return nil
}

// applyReload switches the project root to the one in a reloaded config
// once command-line overrides are reapplied.
func applyReload(model *project.Model, next *config.Config, overrides func(*config.Config), log logger.Logger) {
	reloaded := *next
	if overrides != nil {
		overrides(&reloaded)
	}
	switchProjectRoot(model, reloaded.Project.Root, log)
}

// switchProjectRoot applies a project root change from a reloaded config.
func switchProjectRoot(model *project.Model, root string, log logger.Logger) {
	if model.Options().Root == root {
		return
	}
	if err := model.SetRoot(root); err != nil {
		log.Error("Failed to switch project root", "root", root, "error", err)
		return
	}
	log.Info("Project root switched", "root", root)
}
