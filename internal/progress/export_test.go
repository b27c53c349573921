package progress

import "slices"

// Status is the mastery classification of a single question.
type Status string

const (
	StatusCorrect     Status = "correct"
	StatusIncorrect   Status = "incorrect"
	StatusUnattempted Status = "unattempted"
	StatusUnknown     Status = "unknown" // ID not present in the record
)

// Status returns the list that currently holds id.
func (r *Record) Status(id int) Status {
	switch {
	case slices.Contains(r.Correct, id):
		return StatusCorrect
	case slices.Contains(r.Incorrect, id):
		return StatusIncorrect
	case slices.Contains(r.Unattempted, id):
		return StatusUnattempted
	}
	return StatusUnknown
}

// Total returns the number of IDs tracked by the record.
func (r *Record) Total() int {
	return len(r.Correct) + len(r.Incorrect) + len(r.Unattempted)
}
