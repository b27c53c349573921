package catalog

import (
	"fmt"
	"strings"
)

// validateCatalog performs structural checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(c *Catalog) error {
	var errs []string

	workKeys := make(map[string]bool, len(c.Works))
	for _, w := range c.Works {
		if workKeys[w.Key] {
			errs = append(errs, fmt.Sprintf("duplicate work key: %q", w.Key))
		}
		workKeys[w.Key] = true

		partKeys := make(map[string]bool, len(w.Parts))
		for _, p := range w.Parts {
			if partKeys[p.Key] {
				errs = append(errs, fmt.Sprintf("work %q: duplicate part key: %q", w.Key, p.Key))
			}
			partKeys[p.Key] = true

			ids := make(map[int]bool, len(p.Questions))
			for _, q := range p.Questions {
				if ids[q.ID] {
					errs = append(errs, fmt.Sprintf("%s/%s: duplicate question ID %d", w.Key, p.Key, q.ID))
				}
				ids[q.ID] = true

				if len(q.Options) < 2 {
					errs = append(errs, fmt.Sprintf("%s/%s: question %d has %d options, need at least 2",
						w.Key, p.Key, q.ID, len(q.Options)))
				}
				if q.Answer < 0 || q.Answer >= len(q.Options) {
					errs = append(errs, fmt.Sprintf("%s/%s: question %d answer index %d out of range",
						w.Key, p.Key, q.ID, q.Answer))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
