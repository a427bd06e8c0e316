// Package cli provides the cobra command tree for counsel.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driving"
	"github.com/custodia-labs/counsel-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// skipServices marks commands that run without the core services.
const skipServices = "skip-services"

var (
	verbose   bool
	configDir string
)

// Services holds everything the commands drive.
type Services struct {
	// Router answers single questions.
	Router driving.Router

	// Catalog lists registered specialists.
	Catalog driving.SpecialistCatalog

	// Policy exposes the effective keyword table.
	Policy driving.KeywordPolicy

	// Sessions runs interactive conversations.
	Sessions driving.SessionService

	// Watch starts hot reload of configuration and templates. Optional.
	Watch func() (io.Closer, error)

	// MCPRateLimit throttles MCP tool calls.
	MCPRateLimit mcp.RateLimitConfig

	// Close releases resources such as the session database. Optional.
	Close func() error
}

var (
	router         driving.Router
	catalog        driving.SpecialistCatalog
	policy         driving.KeywordPolicy
	sessionService driving.SessionService
	watch          func() (io.Closer, error)
	mcpRateLimit   = mcp.DefaultRateLimit
	closeFn        func() error

	bootstrap func(configDir string) (*Services, error)
	loaded    bool
)

var rootCmd = &cobra.Command{
	Use:   "counsel",
	Short: "UC/CSU transfer counseling from the terminal",
	Long: `Counsel answers community college students' questions about transferring
to UC and CSU schools. Each question is screened for scope, then routed to
the financial aid, career or academic planning specialist that covers it.
Questions spanning several topics get one combined answer.

Run without a command to start an interactive session.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if cmd.Annotations[skipServices] == "true" {
			return nil
		}
		return loadServices()
	},
	RunE: runChat,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.counsel)")
}

// SetBootstrap registers the function that builds services on first use.
func SetBootstrap(fn func(configDir string) (*Services, error)) {
	bootstrap = fn
	loaded = false
}

// SetServices installs services directly, bypassing the bootstrap.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	router = s.Router
	catalog = s.Catalog
	policy = s.Policy
	sessionService = s.Sessions
	watch = s.Watch
	closeFn = s.Close
	mcpRateLimit = s.MCPRateLimit
	if mcpRateLimit == (mcp.RateLimitConfig{}) {
		mcpRateLimit = mcp.DefaultRateLimit
	}
	loaded = true
}

// loadServices runs the bootstrap once.
func loadServices() error {
	if loaded || bootstrap == nil {
		return nil
	}
	s, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	SetServices(s)
	return nil
}

// closeServices releases resources acquired by the bootstrap.
func closeServices() {
	if closeFn == nil {
		return
	}
	fn := closeFn
	closeFn = nil
	if err := fn(); err != nil {
		logger.Warn("closing services: %v", err)
	}
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer closeServices()

	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
