// Package session drives a single practice round: question order, answers,
// scoring and the per-answer mastery update.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/koten/internal/catalog"
	"github.com/abhisek/koten/internal/progress"
	"github.com/abhisek/koten/internal/selector"
	"github.com/abhisek/koten/internal/store"
)

var (
	// ErrNoQuestion is returned by Answer when there is no current question.
	ErrNoQuestion = errors.New("no current question")

	// ErrAlreadyAnswered is returned when the current question was answered.
	ErrAlreadyAnswered = errors.New("question already answered")
)

// Options configures a Session.
type Options struct {
	Catalog  *catalog.Catalog
	Progress progress.Repo

	// Events receives round and answer history. Optional.
	Events store.EventRepo

	// Rand drives the shuffle of mastered questions. Optional.
	Rand *rand.Rand

	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Session owns the state of the round in progress. It is not safe for
// concurrent use; the TUI drives it from a single goroutine.
type Session struct {
	catalog  *catalog.Catalog
	progress progress.Repo
	events   store.EventRepo
	rng      *rand.Rand
	log      *zap.Logger

	phase Phase
	round roundState
}

// New creates an idle session.
func New(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		catalog:  opts.Catalog,
		progress: opts.Progress,
		events:   opts.Events,
		rng:      opts.Rand,
		log:      log,
		phase:    PhaseIdle,
	}
}

// Catalog returns the content catalog the session draws from.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// WorkKey returns the work of the current or last round.
func (s *Session) WorkKey() string { return s.round.workKey }

// PartKey returns the part of the current or last round.
func (s *Session) PartKey() string { return s.round.partKey }

// RoundID returns the history identifier of the current round.
func (s *Session) RoundID() string { return s.round.id }

// Index returns the 0-based index of the current question.
func (s *Session) Index() int { return s.round.index }

// Score returns the number of correct answers so far in the round.
func (s *Session) Score() int { return s.round.score }

// Len returns the number of questions in the round.
func (s *Session) Len() int { return len(s.round.questions) }

// Answered reports whether the current question has been answered.
func (s *Session) Answered() bool { return s.round.answered }

// Answers returns how many questions of the round have been answered.
func (s *Session) Answers() int {
	switch {
	case s.phase == PhaseCompleted:
		return len(s.round.questions)
	case s.phase != PhaseInRound:
		return 0
	case s.round.answered:
		return s.round.index + 1
	}
	return s.round.index
}

// Current returns the question being shown. ok is false outside a round.
func (s *Session) Current() (q catalog.Question, ok bool) {
	if s.phase != PhaseInRound || s.round.index >= len(s.round.questions) {
		return catalog.Question{}, false
	}
	return s.round.questions[s.round.index], true
}

// Progress returns index/N for the progress bar. The bar fills completely
// once the last question is answered.
func (s *Session) Progress() float64 {
	n := len(s.round.questions)
	switch {
	case n == 0:
		return 0
	case s.phase == PhaseCompleted:
		return 1
	case s.round.answered && s.round.index == n-1:
		return 1
	}
	return float64(s.round.index) / float64(n)
}

// Start creates or reconciles the part's mastery record against the current
// pool, selects a round and enters InRound(0). On error the session is left
// unchanged.
func (s *Session) Start(ctx context.Context, workKey, partKey string) error {
	part, err := s.catalog.Part(workKey, partKey)
	if err != nil {
		return err
	}

	table := s.progress.Load(ctx)
	rec, changed := table.Sync(workKey, partKey, part.IDs())

	questions, err := selector.Select(rec, part, s.rng)
	if err != nil {
		return fmt.Errorf("start %s/%s: %w", workKey, partKey, err)
	}

	if changed {
		if err := s.progress.Save(ctx, table); err != nil {
			s.log.Warn("persist synced record",
				zap.String("work", workKey),
				zap.String("part", partKey),
				zap.Error(err))
		}
	}

	s.round = roundState{
		id:        uuid.New().String(),
		workKey:   workKey,
		partKey:   partKey,
		questions: questions,
	}
	s.phase = PhaseInRound

	s.log.Debug("round started",
		zap.String("round", s.round.id),
		zap.String("work", workKey),
		zap.String("part", partKey),
		zap.Int("questions", len(questions)))
	s.appendRound(ctx, store.RoundStart)
	return nil
}

// Answer submits an option for the current question. The score and mastery
// record are updated and the table is persisted before returning. A
// persistence failure is returned together with the outcome; the in-memory
// round has already advanced past the answer.
func (s *Session) Answer(ctx context.Context, option int) (Outcome, error) {
	q, ok := s.Current()
	if !ok {
		return Outcome{}, ErrNoQuestion
	}
	if s.round.answered {
		return Outcome{}, ErrAlreadyAnswered
	}
	if option < 0 || option >= len(q.Options) {
		return Outcome{}, fmt.Errorf("option %d of %d: %w", option, len(q.Options), ErrNoQuestion)
	}

	correct := q.IsCorrect(option)
	if correct {
		s.round.score++
	}
	s.round.answered = true

	out := Outcome{
		QuestionID:  q.ID,
		Selected:    option,
		Answer:      q.Answer,
		Correct:     correct,
		Explanation: q.Explanation,
		Score:       s.round.score,
		Last:        s.round.index == len(s.round.questions)-1,
	}

	s.appendAnswer(ctx, out)

	if err := s.persist(ctx, q.ID, correct); err != nil {
		s.log.Error("persist answer",
			zap.String("round", s.round.id),
			zap.Int("question", q.ID),
			zap.Error(err))
		return out, err
	}
	return out, nil
}

// Advance moves to the next question, or to Completed after the last one.
// It is a no-op unless the current question has been answered.
func (s *Session) Advance() Phase {
	if s.phase != PhaseInRound || !s.round.answered {
		return s.phase
	}

	if s.round.index+1 < len(s.round.questions) {
		s.round.index++
		s.round.answered = false
		return s.phase
	}

	s.phase = PhaseCompleted
	s.appendRound(context.Background(), store.RoundComplete)
	s.log.Debug("round completed",
		zap.String("round", s.round.id),
		zap.Int("score", s.round.score),
		zap.Int("questions", len(s.round.questions)))
	return s.phase
}

// Reset returns to Idle from any phase, discarding round-local state. An
// unfinished round is recorded as abandoned.
func (s *Session) Reset() {
	if s.phase == PhaseInRound {
		s.appendRound(context.Background(), store.RoundAbandon)
	}
	s.phase = PhaseIdle
	s.round = roundState{}
}

// Retry starts a new round on the part of the previous round. If the new
// round cannot start, the session is Idle but still remembers the part so
// Retry can be called again.
func (s *Session) Retry(ctx context.Context) error {
	workKey, partKey := s.round.workKey, s.round.partKey
	if workKey == "" {
		return ErrNoQuestion
	}
	s.Reset()
	if err := s.Start(ctx, workKey, partKey); err != nil {
		s.round.workKey, s.round.partKey = workKey, partKey
		return err
	}
	return nil
}

// Summary returns the result of the round.
func (s *Session) Summary() Summary {
	total := len(s.round.questions)
	return Summary{
		WorkKey:   s.round.workKey,
		PartKey:   s.round.partKey,
		Score:     s.round.score,
		Total:     total,
		Percent:   Percent(s.round.score, total),
		Message:   ResultMessage(s.round.score, total),
		Completed: s.phase == PhaseCompleted,
	}
}

// persist reloads the table, reclassifies one question and saves it.
func (s *Session) persist(ctx context.Context, id int, correct bool) error {
	part, err := s.catalog.Part(s.round.workKey, s.round.partKey)
	if err != nil {
		return err
	}
	table := s.progress.Load(ctx)
	rec, _ := table.Sync(s.round.workKey, s.round.partKey, part.IDs())
	rec.Reclassify(id, correct)
	if err := s.progress.Save(ctx, table); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// appendRound records a round lifecycle event. History is best effort.
func (s *Session) appendRound(ctx context.Context, action string) {
	if s.events == nil {
		return
	}
	err := s.events.AppendRoundEvent(ctx, store.RoundEventData{
		RoundID:   s.round.id,
		WorkKey:   s.round.workKey,
		PartKey:   s.round.partKey,
		Action:    action,
		Questions: len(s.round.questions),
		Score:     s.round.score,
	})
	if err != nil {
		s.log.Warn("append round event", zap.String("action", action), zap.Error(err))
	}
}

func (s *Session) appendAnswer(ctx context.Context, out Outcome) {
	if s.events == nil {
		return
	}
	err := s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		RoundID:    s.round.id,
		WorkKey:    s.round.workKey,
		PartKey:    s.round.partKey,
		QuestionID: out.QuestionID,
		Selected:   out.Selected,
		Correct:    out.Correct,
	})
	if err != nil {
		s.log.Warn("append answer event", zap.Int("question", out.QuestionID), zap.Error(err))
	}
}
