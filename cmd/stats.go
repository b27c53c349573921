package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abhisek/koten/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery and answer statistics per part",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		table := e.store.ProgressRepo().Load(ctx)
		totals, err := e.store.EventRepo().AnswerTotals(ctx)
		if err != nil {
			return err
		}
		byPart := make(map[string]store.PartTotals, len(totals))
		for _, t := range totals {
			byPart[t.WorkKey+"/"+t.PartKey] = t
		}

		fmt.Printf("%-28s %5s %5s %5s %8s %9s  %s\n",
			"PART", "○", "×", "－", "ANSWERS", "ACCURACY", "LAST")
		fmt.Println(strings.Repeat("─", 84))

		for _, w := range e.catalog.Works {
			for _, p := range w.Parts {
				c, i, u := 0, 0, len(p.Questions)
				if rec, ok := table.Get(w.Key, p.Key); ok {
					c, i, u = rec.Counts()
				}
				t := byPart[w.Key+"/"+p.Key]
				last := "-"
				if !t.LastSeen.IsZero() {
					last = humanize.Time(t.LastSeen)
				}
				fmt.Printf("%-28s %5d %5d %5d %8s %8.0f%%  %s\n",
					w.Key+"/"+p.Key, c, i, u, humanize.Comma(int64(t.Answers)), t.Accuracy()*100, last)
			}
		}

		rounds, err := e.store.EventRepo().QueryRounds(ctx, store.QueryOpts{Limit: 5})
		if err != nil {
			return err
		}
		if len(rounds) > 0 {
			fmt.Println()
			fmt.Println("Recent activity:")
			for _, r := range rounds {
				fmt.Printf("  %-14s %-8s %-28s %d/%d\n",
					humanize.Time(r.Timestamp), r.Action, r.WorkKey+"/"+r.PartKey, r.Score, r.Questions)
			}
		}
		return nil
	},
}
