package session

import (
	"github.com/abhisek/koten/internal/catalog"
)

// Phase represents the current phase of a session.
type Phase int

const (
	PhaseIdle      Phase = iota // No round in progress
	PhaseInRound                // Serving questions
	PhaseCompleted              // Last question advanced past; score is final
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInRound:
		return "in-round"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// Outcome describes the result of answering the current question.
type Outcome struct {
	// QuestionID is the ID of the answered question.
	QuestionID int

	// Selected is the submitted option index.
	Selected int

	// Answer is the index of the correct option.
	Answer int

	// Correct reports whether Selected matched Answer.
	Correct bool

	// Explanation is shown alongside the feedback.
	Explanation string

	// Score is the round score after this answer.
	Score int

	// Last is true when this was the final question of the round.
	Last bool
}

// roundState is the round-local state discarded by Reset.
type roundState struct {
	id        string
	workKey   string
	partKey   string
	questions []catalog.Question
	index     int
	score     int
	answered  bool
}
