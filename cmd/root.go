package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/koten/internal/config"
	"github.com/abhisek/koten/internal/store"
)

// cfg is loaded before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "koten",
	Short: "Adaptive classical literature drill",
	Long:  "Koten is a terminal quiz that drills classical Japanese literature and revisits what you missed.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KOTEN_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a catalog JSON file (overrides KOTEN_CATALOG env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/koten/config.yaml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(worksCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then KOTEN_DB / config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveCatalogPath returns the catalog path from --catalog or config.
// Empty means the embedded catalog.
func resolveCatalogPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return p
	}
	if cfg != nil {
		return cfg.CatalogPath
	}
	return ""
}
