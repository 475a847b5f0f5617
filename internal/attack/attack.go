// Package attack resolves technique identifiers to attack-framework pattern
// records and derives the alert enrichment (tags and procedure timeline).
package attack

import (
	"context"
	"fmt"

	"github.com/linnemanlabs/go-core/log"

	"github.com/linnemanlabs/hivebridge/internal/alert"
)

// Pattern is one attack-framework record returned by the external lookup.
type Pattern struct {
	PatternID   string   `json:"patternId"`
	Tactics     []string `json:"tactics"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// PatternLookup is the external query collaborator. A lookup that matches
// nothing returns an empty slice and no error.
type PatternLookup interface {
	GetPattern(ctx context.Context, idOrName string) ([]Pattern, error)
}

// Resolver turns a list of technique identifiers into pattern records.
type Resolver struct {
	lookup PatternLookup
	logger log.Logger
}

// NewResolver creates a resolver over the given lookup collaborator.
func NewResolver(lookup PatternLookup, logger log.Logger) *Resolver {
	if logger == nil {
		logger = log.Nop()
	}
	return &Resolver{lookup: lookup, logger: logger}
}

// Resolve issues one lookup per identifier and concatenates the results in
// identifier order. An identifier may contribute zero, one, or several
// patterns; identical patterns from different identifiers are kept, not
// deduplicated. An empty identifier list performs no lookups.
func (r *Resolver) Resolve(ctx context.Context, ids []string) ([]Pattern, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var out []Pattern
	for _, id := range ids {
		patterns, err := r.lookup.GetPattern(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get pattern %q: %w", id, err)
		}
		if len(patterns) == 0 {
			r.logger.Info(ctx, "technique matched no pattern", "technique", id)
			continue
		}
		out = append(out, patterns...)
	}
	return out, nil
}

// Procedures derives the procedure timeline from resolved patterns. The
// tactic is the pattern's first tactic; patterns without tactics carry no
// timeline position and are skipped here (they still contribute a tag).
func Procedures(patterns []Pattern, occurDate int64) []alert.Procedure {
	out := make([]alert.Procedure, 0, len(patterns))
	for _, p := range patterns {
		if len(p.Tactics) == 0 {
			continue
		}
		out = append(out, alert.Procedure{
			PatternID:   p.PatternID,
			Tactic:      p.Tactics[0],
			OccurDate:   occurDate,
			Description: p.Description,
		})
	}
	return out
}

// Tags returns one tag per resolved pattern, in resolution order.
func Tags(patterns []Pattern) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p.Name)
	}
	return out
}
