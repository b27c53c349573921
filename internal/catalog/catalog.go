package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a work or part key is not in the catalog.
var ErrNotFound = errors.New("not found")

// Question is a single multiple-choice question.
type Question struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"` // index into Options
	Explanation string   `json:"explanation"`
}

// IsCorrect reports whether option is the index of the correct answer.
func (q Question) IsCorrect(option int) bool {
	return option == q.Answer
}

// Part is a subdivision of a work holding a fixed pool of questions.
type Part struct {
	Key       string     `json:"key"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// IDs returns the question IDs in pool order.
func (p Part) IDs() []int {
	ids := make([]int, len(p.Questions))
	for i, q := range p.Questions {
		ids[i] = q.ID
	}
	return ids
}

// Question looks up a question by ID.
func (p Part) Question(id int) (Question, bool) {
	for _, q := range p.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Work is a top-level content grouping, typically one literary text.
type Work struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	Parts  []Part `json:"parts"`
}

// Part returns the part with the given key.
func (w Work) Part(key string) (Part, error) {
	for _, p := range w.Parts {
		if p.Key == key {
			return p, nil
		}
	}
	return Part{}, fmt.Errorf("part %q of work %q: %w", key, w.Key, ErrNotFound)
}

// QuestionCount returns the number of questions across all parts.
func (w Work) QuestionCount() int {
	n := 0
	for _, p := range w.Parts {
		n += len(p.Questions)
	}
	return n
}

// Catalog is the read-only works → parts → questions dataset.
// Works and parts keep document order.
type Catalog struct {
	Version string `json:"version"`
	Works   []Work `json:"works"`

	byKey map[string]int
}

// index builds the work lookup table.
func (c *Catalog) index() {
	c.byKey = make(map[string]int, len(c.Works))
	for i, w := range c.Works {
		c.byKey[w.Key] = i
	}
}

// Work returns the work with the given key.
func (c *Catalog) Work(key string) (Work, error) {
	if c.byKey == nil {
		c.index()
	}
	i, ok := c.byKey[key]
	if !ok {
		return Work{}, fmt.Errorf("work %q: %w", key, ErrNotFound)
	}
	return c.Works[i], nil
}

// Part returns the part identified by work and part key.
func (c *Catalog) Part(workKey, partKey string) (Part, error) {
	w, err := c.Work(workKey)
	if err != nil {
		return Part{}, err
	}
	return w.Part(partKey)
}
