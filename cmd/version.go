package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/koten/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Default()
		if err != nil {
			return err
		}
		fmt.Println("koten", version)
		fmt.Println("catalog", cat.Version)
		return nil
	},
}
