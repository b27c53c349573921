package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/koten/internal/app"
	"github.com/abhisek/koten/internal/catalog"
	"github.com/abhisek/koten/internal/config"
	"github.com/abhisek/koten/internal/logger"
	"github.com/abhisek/koten/internal/session"
	"github.com/abhisek/koten/internal/store"
)

// env bundles the dependencies shared by commands.
type env struct {
	log     *zap.Logger
	store   *store.Store
	catalog *catalog.Catalog
}

// openEnv builds the logger, opens the store and loads the catalog.
func openEnv(cmd *cobra.Command) (*env, error) {
	c := cfg
	if c == nil {
		c = &config.Config{Env: "local"}
	}
	log, err := logger.New(c)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cat, err := catalog.Load(resolveCatalogPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	log.Debug("environment ready",
		zap.String("db", dbPath),
		zap.String("catalog", cat.Version),
		zap.Int("works", len(cat.Works)))
	return &env{log: log, store: st, catalog: cat}, nil
}

func (e *env) Close() {
	_ = e.log.Sync()
	_ = e.store.Close()
}

// newSession wires a session to the store.
func (e *env) newSession() *session.Session {
	return session.New(session.Options{
		Catalog:  e.catalog,
		Progress: e.store.ProgressRepo(),
		Events:   e.store.EventRepo(),
		Logger:   e.log,
	})
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(app.Options{
		Session:  e.newSession(),
		Progress: e.store.ProgressRepo(),
		Events:   e.store.EventRepo(),
		Logger:   e.log,
	})
}
