package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// eventRepo implements EventRepo with raw SQL.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendRoundEvent(ctx context.Context, data RoundEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO round_events (sequence, timestamp, round_id, work_key, part_key, action, questions, score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixMilli(), data.RoundID, data.WorkKey, data.PartKey,
		data.Action, data.Questions, data.Score)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO answer_events (sequence, timestamp, round_id, work_key, part_key, question_id, selected, correct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixMilli(), data.RoundID, data.WorkKey, data.PartKey,
		data.QuestionID, data.Selected, boolToInt(data.Correct))
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error) {
	where, args := partFilter(opts.WorkKey, opts.PartKey)
	q := `SELECT id, sequence, timestamp, round_id, work_key, part_key, action, questions, score
		FROM round_events` + where + ` ORDER BY sequence DESC`
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var rec RoundRecord
		var ts int64
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.RoundID, &rec.WorkKey,
			&rec.PartKey, &rec.Action, &rec.Questions, &rec.Score); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) AnswerTotals(ctx context.Context) ([]PartTotals, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT work_key, part_key, COUNT(*), COALESCE(SUM(correct), 0), MAX(timestamp)
		FROM answer_events
		GROUP BY work_key, part_key
		ORDER BY work_key, part_key`)
	if err != nil {
		return nil, fmt.Errorf("query answer totals: %w", err)
	}
	defer rows.Close()

	var totals []PartTotals
	for rows.Next() {
		var pt PartTotals
		var last int64
		if err := rows.Scan(&pt.WorkKey, &pt.PartKey, &pt.Answers, &pt.Correct, &last); err != nil {
			return nil, fmt.Errorf("scan answer totals: %w", err)
		}
		pt.LastSeen = time.UnixMilli(last)
		totals = append(totals, pt)
	}
	return totals, rows.Err()
}

func (r *eventRepo) DeleteHistory(ctx context.Context, workKey, partKey string) error {
	where, args := partFilter(workKey, partKey)
	for _, table := range []string{"round_events", "answer_events"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table+where, args...); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	return nil
}

// partFilter builds a WHERE clause restricting rows to a work and part.
func partFilter(workKey, partKey string) (string, []any) {
	var conds []string
	var args []any
	if workKey != "" {
		conds = append(conds, "work_key = ?")
		args = append(args, workKey)
		if partKey != "" {
			conds = append(conds, "part_key = ?")
			args = append(args, partKey)
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
