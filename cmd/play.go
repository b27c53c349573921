package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/koten/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play <work> <part>",
	Short: "Play one round in line mode, without the TUI",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		s := e.newSession()
		defer s.Reset()
		if err := s.Start(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		return playRound(cmd.Context(), s, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// playRound runs the current round of s against a line-oriented terminal.
func playRound(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for s.Phase() == session.PhaseInRound {
		q, _ := s.Current()

		fmt.Fprintf(out, "\n── Question %d/%d ──\n", s.Index()+1, s.Len())
		fmt.Fprintln(out, q.Question)
		fmt.Fprintln(out)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
		}

		option, ok := readOption(scanner, out, len(q.Options))
		if !ok {
			fmt.Fprintln(out, "\nRound abandoned.")
			return nil
		}

		res, err := s.Answer(ctx, option)
		if errors.Is(err, session.ErrNoQuestion) || errors.Is(err, session.ErrAlreadyAnswered) {
			return err
		}
		if res.Correct {
			fmt.Fprintln(out, "\033[32m✓ 正解！\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ 不正解… 正解は %d) %s\033[0m\n", res.Answer+1, q.Options[res.Answer])
		}
		if res.Explanation != "" {
			fmt.Fprintf(out, "  %s\n", res.Explanation)
		}
		if err != nil {
			fmt.Fprintf(out, "  (warning: %v)\n", err)
		}
		s.Advance()
	}

	sum := s.Summary()
	fmt.Fprintf(out, "\n── Summary: %d/%d correct (%d%%) ──\n", sum.Score, sum.Total, sum.Percent)
	fmt.Fprintln(out, sum.Message)
	return nil
}

// readOption prompts until a valid 1-based option is entered. ok is false
// on EOF or "q".
func readOption(scanner *bufio.Scanner, out io.Writer, n int) (option int, ok bool) {
	for {
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			return 0, false
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "q" {
			return 0, false
		}
		v, err := strconv.Atoi(text)
		if err != nil || v < 1 || v > n {
			fmt.Fprintf(out, "Enter a number between 1 and %d (q to quit).\n", n)
			continue
		}
		return v - 1, true
	}
}
