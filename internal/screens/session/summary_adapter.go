package session

import (
	"github.com/abhisek/koten/internal/screen"
	"github.com/abhisek/koten/internal/screens/summary"
	sess "github.com/abhisek/koten/internal/session"
)

// newSummaryScreenAdapter creates the result screen for a finished round.
func newSummaryScreenAdapter(s *sess.Session) screen.Screen {
	return summary.New(s, New)
}
