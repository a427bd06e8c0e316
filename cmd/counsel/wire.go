package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/core/ports/driven"
	"github.com/custodia-labs/counsel-cli/internal/core/services"
	"github.com/custodia-labs/counsel-cli/internal/logger"
	"github.com/custodia-labs/counsel-cli/internal/specialists/academic"
	"github.com/custodia-labs/counsel-cli/internal/specialists/career"
	"github.com/custodia-labs/counsel-cli/internal/specialists/financialaid"
	"github.com/custodia-labs/counsel-cli/internal/specialists/templates"
)

// Session store backends selectable with session.store.
const (
	storeMemory = "memory"
	storeSQLite = "sqlite"
)

// bootstrap builds the services from the configuration directory.
func bootstrap(configDir string) (*cli.Services, error) {
	dir, err := file.ResolveDir(configDir)
	if err != nil {
		return nil, err
	}

	config, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	tmpl, err := file.NewTemplateStore(filepath.Join(dir, "templates"), templates.FS)
	if err != nil {
		return nil, fmt.Errorf("opening templates: %w", err)
	}

	current, err := buildRouter(config, tmpl)
	if err != nil {
		return nil, err
	}
	router := services.NewReloadableRouter(current)

	store, closeStore, err := openSessionStore(config.GetString(driven.ConfigSessionStore))
	if err != nil {
		return nil, err
	}

	return &cli.Services{
		Router:   router,
		Catalog:  router,
		Policy:   router,
		Sessions: services.NewSessionService(router, store),
		Watch: func() (io.Closer, error) {
			if err := tmpl.Init(); err != nil {
				logger.Warn("template directory unavailable: %v", err)
			}
			return file.NewWatcher(dir, tmpl.Dir(), 0, func() {
				reload(config, tmpl, router)
			})
		},
		MCPRateLimit: mcp.RateLimitConfig{
			RequestsPerSecond: config.GetFloat(driven.ConfigMCPRate),
			BurstSize:         config.GetInt(driven.ConfigMCPBurst),
		},
		Close: closeStore,
	}, nil
}

// buildRouter assembles a router from the current configuration.
func buildRouter(config driven.ConfigStore, source driven.TemplateSource) (*services.Router, error) {
	table, err := file.LoadRoutingTable(config)
	if err != nil {
		return nil, fmt.Errorf("loading routing table: %w", err)
	}

	router := services.NewRouter(services.NewScopeFilter(table), table, nil)
	router.SetParallelDispatch(config.GetBool(driven.ConfigParallelDispatch))

	specialists := []struct {
		id         string
		specialist driven.Specialist
	}{
		{domain.SpecialistFinancialAid, financialaid.New(source)},
		{domain.SpecialistCareerCounselor, career.New(source)},
		{domain.SpecialistCourseDifficulty, academic.New(source)},
	}
	for _, s := range specialists {
		if err := router.Register(s.id, s.specialist); err != nil {
			return nil, fmt.Errorf("registering %s: %w", s.id, err)
		}
	}

	logger.Debug("router built: %d specialists, parallel=%t", len(specialists), config.GetBool(driven.ConfigParallelDispatch))
	return router, nil
}

// reload rereads configuration and templates and swaps in a new router.
// On error the running router is kept.
func reload(config *file.ConfigStore, tmpl *file.TemplateStore, router *services.ReloadableRouter) {
	if err := config.Load(); err != nil {
		logger.Warn("reload: reading configuration: %v", err)
		return
	}
	tmpl.Reload()

	next, err := buildRouter(config, tmpl)
	if err != nil {
		logger.Warn("reload: %v", err)
		return
	}
	router.Swap(next)
	logger.Info("configuration reloaded")
}

// openSessionStore returns the transcript store named by kind.
func openSessionStore(kind string) (driven.SessionStore, func() error, error) {
	switch kind {
	case "", storeMemory:
		return memory.NewSessionStore(), nil, nil
	case storeSQLite:
		db, err := sqlite.NewStore()
		if err != nil {
			return nil, nil, fmt.Errorf("opening session database: %w", err)
		}
		return db.SessionStore(), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("%s: unknown session store %q: %w", driven.ConfigSessionStore, kind, domain.ErrInvalidInput)
	}
}
