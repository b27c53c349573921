package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	WorkKey string // restrict to one work ("" = all)
	PartKey string // restrict to one part; requires WorkKey
}

// Round actions recorded in round_events.
const (
	RoundStart    = "start"
	RoundComplete = "complete"
	RoundAbandon  = "abandon"
)

// RoundEventData captures a round lifecycle event.
type RoundEventData struct {
	RoundID   string
	WorkKey   string
	PartKey   string
	Action    string
	Questions int
	Score     int
}

// RoundRecord is a stored round event.
type RoundRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	RoundEventData
}

// AnswerEventData captures a single submitted answer.
type AnswerEventData struct {
	RoundID    string
	WorkKey    string
	PartKey    string
	QuestionID int
	Selected   int
	Correct    bool
}

// PartTotals aggregates every answer ever given for one part.
type PartTotals struct {
	WorkKey  string
	PartKey  string
	Answers  int
	Correct  int
	LastSeen time.Time
}

// Accuracy returns the fraction of correct answers, 0 when none exist.
func (p PartTotals) Accuracy() float64 {
	if p.Answers == 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Answers)
}

// EventRepo provides append and query access to the round history.
type EventRepo interface {
	// AppendRoundEvent records a round start, completion or abandonment.
	AppendRoundEvent(ctx context.Context, data RoundEventData) error

	// AppendAnswerEvent records one answer within a round.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryRounds returns round events, newest first.
	QueryRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error)

	// AnswerTotals returns per-part answer aggregates ordered by work and part key.
	AnswerTotals(ctx context.Context) ([]PartTotals, error)

	// DeleteHistory removes events for a work/part ("" matches all).
	DeleteHistory(ctx context.Context, workKey, partKey string) error
}
