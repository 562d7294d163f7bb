package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xvierd/fsh/internal/adapters/git"
	"github.com/xvierd/fsh/internal/adapters/identity"
	"github.com/xvierd/fsh/internal/adapters/render"
	"github.com/xvierd/fsh/internal/config"
	"github.com/xvierd/fsh/internal/logging"
	"github.com/xvierd/fsh/internal/ports"
	"github.com/xvierd/fsh/internal/services"
	"go.uber.org/zap"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	logger   *zap.Logger
	locator  ports.RepositoryLocator
	identity ports.IdentityProvider
	prompt   *services.PromptService
	renderer *render.Renderer
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices(cmd *cobra.Command) error {
	// Load configuration
	cfg, loadErr := config.Load(configPath)
	if loadErr != nil {
		// If config loading fails, use defaults
		cfg = config.DefaultConfig()
	}

	// Command line flags win over the file and the environment
	if err := applyFlags(cfg); err != nil {
		return err
	}

	level := cfg.Log.Level
	if debugMode {
		level = "debug"
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	if loadErr != nil {
		logger.Warn("failed to load config, using defaults", zap.Error(loadErr))
	}

	app = appDeps{
		config:   cfg,
		logger:   logger,
		locator:  git.NewLocator(logger),
		identity: identity.NewSystem(logger),
	}
	app.prompt = services.NewPromptService(app.locator, app.identity, cfg.Prompt, cfg.Theme.Glyphs(), logger)
	app.renderer = render.New(render.Options{
		Color: cfg.Render.Color,
		Shell: cfg.Render.Shell,
		Theme: cfg.Theme,
	})

	return nil
}

// applyFlags copies explicitly set flags into cfg and validates the result.
func applyFlags(cfg *config.Config) error {
	if colorFlag != "" {
		cfg.Render.Color = colorFlag
	}
	if shellFlag != "" {
		cfg.Render.Shell = shellFlag
	}
	if noHostname {
		cfg.Prompt.ShowHostname = false
	}
	return cfg.Validate()
}

// cleanupServices flushes buffered log entries.
func cleanupServices() error {
	if app.logger != nil {
		// Sync on a terminal stderr reports EINVAL on some platforms
		_ = app.logger.Sync()
	}
	return nil
}

// stopOnSignal stops h when the process is interrupted or terminated.
func stopOnSignal(h ports.MCPHandler) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		if h.IsRunning() {
			_ = h.Stop()
		}
	}()
}
