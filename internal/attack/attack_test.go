package attack

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// mockLookup returns preconfigured patterns per identifier.
type mockLookup struct {
	patterns map[string][]Pattern
	errs     map[string]error
	calls    []string
}

func (m *mockLookup) GetPattern(_ context.Context, id string) ([]Pattern, error) {
	m.calls = append(m.calls, id)
	if err := m.errs[id]; err != nil {
		return nil, err
	}
	return m.patterns[id], nil
}

func TestResolve_EmptyIDsPerformsNoLookups(t *testing.T) {
	t.Parallel()

	lk := &mockLookup{}
	r := NewResolver(lk, nil)

	got, err := r.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve(nil) error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("patterns = %v, want empty", got)
	}
	if len(lk.calls) != 0 {
		t.Errorf("lookup calls = %v, want none", lk.calls)
	}
}

func TestResolve_ConcatenatesInIdentifierOrder(t *testing.T) {
	t.Parallel()

	lk := &mockLookup{patterns: map[string][]Pattern{
		"T1566": {{PatternID: "T1566", Name: "Phishing", Tactics: []string{"initial-access"}}},
		"T1059": {
			{PatternID: "T1059", Name: "Command and Scripting Interpreter", Tactics: []string{"execution"}},
			{PatternID: "T1059.001", Name: "PowerShell", Tactics: []string{"execution"}},
		},
	}}
	r := NewResolver(lk, nil)

	got, err := r.Resolve(context.Background(), []string{"T1566", "T1059"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	wantIDs := []string{"T1566", "T1059", "T1059.001"}
	if len(got) != len(wantIDs) {
		t.Fatalf("len = %d, want %d: %v", len(got), len(wantIDs), got)
	}
	for i, id := range wantIDs {
		if got[i].PatternID != id {
			t.Errorf("patterns[%d].PatternID = %q, want %q", i, got[i].PatternID, id)
		}
	}
	if !reflect.DeepEqual(lk.calls, []string{"T1566", "T1059"}) {
		t.Errorf("lookup order = %v, want identifier order", lk.calls)
	}
}

func TestResolve_OneHitOneMiss(t *testing.T) {
	t.Parallel()

	lk := &mockLookup{patterns: map[string][]Pattern{
		"T1": {{PatternID: "T1", Name: "Only Match", Tactics: []string{"impact"}, Description: "d"}},
	}}
	r := NewResolver(lk, nil)

	got, err := r.Resolve(context.Background(), []string{"T1", "T2"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if tags := Tags(got); len(tags) != 1 || tags[0] != "Only Match" {
		t.Errorf("tags = %v, want exactly [Only Match]", tags)
	}
	procs := Procedures(got, 1700000000000)
	if len(procs) != 1 {
		t.Fatalf("procedures = %v, want exactly one", procs)
	}
	if procs[0].Tactic != "impact" || procs[0].OccurDate != 1700000000000 {
		t.Errorf("procedure = %+v, want tactic impact at 1700000000000", procs[0])
	}
}

func TestResolve_DuplicatePatternsAreKept(t *testing.T) {
	t.Parallel()

	same := Pattern{PatternID: "T1110", Name: "Brute Force", Tactics: []string{"credential-access"}}
	lk := &mockLookup{patterns: map[string][]Pattern{
		"T1110":       {same},
		"Brute Force": {same},
	}}
	r := NewResolver(lk, nil)

	got, err := r.Resolve(context.Background(), []string{"T1110", "Brute Force"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 (resolver performs no dedup)", len(got))
	}
}

func TestResolve_LookupFailurePropagates(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("query timeout")
	lk := &mockLookup{errs: map[string]error{"T2": wantErr}}
	r := NewResolver(lk, nil)

	_, err := r.Resolve(context.Background(), []string{"T2"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want wrapped %v", err, wantErr)
	}
}

func TestProcedures_SkipsPatternsWithoutTactics(t *testing.T) {
	t.Parallel()

	patterns := []Pattern{
		{PatternID: "T1", Name: "HasTactic", Tactics: []string{"execution"}},
		{PatternID: "T2", Name: "NoTactic"},
	}

	procs := Procedures(patterns, 42)
	if len(procs) != 1 {
		t.Fatalf("procedures = %v, want 1", procs)
	}
	if procs[0].PatternID != "T1" {
		t.Errorf("patternId = %q, want T1", procs[0].PatternID)
	}

	// The tactic-less pattern still contributes a tag.
	if tags := Tags(patterns); len(tags) != 2 {
		t.Errorf("tags = %v, want 2", tags)
	}
}
