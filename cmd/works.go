package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/koten/internal/catalog"
)

var worksCmd = &cobra.Command{
	Use:   "works [work]",
	Short: "List works, or the parts of one work",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(resolveCatalogPath(cmd))
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Printf("%-16s %-24s %6s %9s\n", "KEY", "TITLE", "PARTS", "QUESTIONS")
			fmt.Println(strings.Repeat("─", 58))
			for _, w := range cat.Works {
				fmt.Printf("%-16s %-24s %6d %9d\n", w.Key, w.Title, len(w.Parts), w.QuestionCount())
			}
			return nil
		}

		w, err := cat.Work(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s", w.Title)
		if w.Author != "" {
			fmt.Printf(" (%s)", w.Author)
		}
		fmt.Println()
		fmt.Println()
		fmt.Printf("%-16s %-30s %9s\n", "PART", "TITLE", "QUESTIONS")
		fmt.Println(strings.Repeat("─", 57))
		for _, p := range w.Parts {
			fmt.Printf("%-16s %-30s %9d\n", p.Key, p.Title, len(p.Questions))
		}
		return nil
	},
}
