package observable

import "github.com/linnemanlabs/hivebridge/internal/alert"

// Set accumulates observables across all entities of one payload with
// append-or-merge semantics. Identity is the exact (dataType, data) pair;
// a second insert of the same pair unions its tags into the first. Output
// order is insertion order of first occurrence, which keeps runs
// reproducible.
type Set struct {
	index map[string]int
	obs   []alert.Observable
}

// NewSet returns an empty accumulator.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

func obsKey(dataType, data string) string {
	return dataType + "\x00" + data
}

// Add merges one observable into the set. Tags on a colliding insert are
// unioned; tags are only attached when non-empty. Input slices are never
// retained or mutated.
func (s *Set) Add(dataType, data string, tags []string) {
	k := obsKey(dataType, data)
	if i, ok := s.index[k]; ok {
		if len(tags) > 0 {
			s.obs[i].Tags = unionTags(s.obs[i].Tags, tags)
		}
		return
	}

	o := alert.Observable{DataType: dataType, Data: data}
	if len(tags) > 0 {
		o.Tags = append([]string(nil), tags...)
	}
	s.index[k] = len(s.obs)
	s.obs = append(s.obs, o)
}

// AddAll merges a batch of mapped observables, in order.
func (s *Set) AddAll(list []alert.Observable) {
	for _, o := range list {
		s.Add(o.DataType, o.Data, o.Tags)
	}
}

// Observables returns the deduplicated list. The final pass drops empty
// data values and any residual (dataType, data) duplicate; neither should
// occur through Add, but out-of-band appends must not leak through.
func (s *Set) Observables() []alert.Observable {
	seen := make(map[string]struct{}, len(s.obs))
	out := make([]alert.Observable, 0, len(s.obs))
	for _, o := range s.obs {
		if o.Data == "" {
			continue
		}
		k := obsKey(o.DataType, o.Data)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, o)
	}
	return out
}

// unionTags appends the members of add not already in have, preserving
// first-seen order.
func unionTags(have, add []string) []string {
	seen := make(map[string]struct{}, len(have)+len(add))
	out := append([]string(nil), have...)
	for _, t := range have {
		seen[t] = struct{}{}
	}
	for _, t := range add {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
