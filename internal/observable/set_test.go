package observable

import (
	"reflect"
	"testing"

	"github.com/linnemanlabs/hivebridge/internal/alert"
)

func TestSet_AppendsDistinctKeys(t *testing.T) {
	t.Parallel()

	s := NewSet()
	s.Add("ip", "10.0.0.1", nil)
	s.Add("ip", "10.0.0.2", nil)
	s.Add("hostname", "10.0.0.1", nil) // same data, different type: distinct

	got := s.Observables()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3: %v", len(got), got)
	}
}

func TestSet_MergeUnionsTags_EitherOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		first []string
		then  []string
		want  []string
	}{
		{"tagged then tagged", []string{"mail-sender"}, []string{"mail-recipient"}, []string{"mail-sender", "mail-recipient"}},
		{"reverse order", []string{"mail-recipient"}, []string{"mail-sender"}, []string{"mail-recipient", "mail-sender"}},
		{"untagged then tagged", nil, []string{"mailbox"}, []string{"mailbox"}},
		{"tagged then untagged", []string{"mailbox"}, nil, []string{"mailbox"}},
		{"overlapping", []string{"a", "b"}, []string{"b", "c"}, []string{"a", "b", "c"}},
		{"identical", []string{"a"}, []string{"a"}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewSet()
			s.Add("mail", "a@b.com", tt.first)
			s.Add("mail", "a@b.com", tt.then)

			got := s.Observables()
			if len(got) != 1 {
				t.Fatalf("len = %d, want 1: %v", len(got), got)
			}
			if !reflect.DeepEqual(got[0].Tags, tt.want) {
				t.Errorf("tags = %v, want %v", got[0].Tags, tt.want)
			}
		})
	}
}

func TestSet_PreservesFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	s := NewSet()
	s.Add("hostname", "h1", nil)
	s.Add("ip", "10.0.0.1", nil)
	s.Add("hostname", "h1", []string{"dup"}) // merge, must not reorder
	s.Add("mail", "a@b.com", nil)

	got := s.Observables()
	wantOrder := []string{"h1", "10.0.0.1", "a@b.com"}
	if len(got) != len(wantOrder) {
		t.Fatalf("len = %d, want %d: %v", len(got), len(wantOrder), got)
	}
	for i, data := range wantOrder {
		if got[i].Data != data {
			t.Errorf("obs[%d].Data = %q, want %q", i, got[i].Data, data)
		}
	}
}

func TestSet_FinalPassDropsEmptyData(t *testing.T) {
	t.Parallel()

	s := NewSet()
	s.Add("ip", "10.0.0.1", nil)
	// Simulate out-of-band insertion bypassing Add.
	s.obs = append(s.obs, alert.Observable{DataType: "ip", Data: ""})
	s.obs = append(s.obs, alert.Observable{DataType: "ip", Data: "10.0.0.1"})

	got := s.Observables()
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1: %v", len(got), got)
	}
	if got[0].Data != "10.0.0.1" {
		t.Errorf("data = %q, want %q", got[0].Data, "10.0.0.1")
	}
}

func TestSet_TagsOmittedWhenNeverSupplied(t *testing.T) {
	t.Parallel()

	s := NewSet()
	s.Add("ip", "10.0.0.1", nil)
	s.Add("ip", "10.0.0.1", []string{})

	got := s.Observables()
	if got[0].Tags != nil {
		t.Errorf("tags = %v, want nil", got[0].Tags)
	}
}

func TestSet_DoesNotRetainCallerSlices(t *testing.T) {
	t.Parallel()

	tags := []string{"mail-sender"}
	s := NewSet()
	s.Add("mail", "a@b.com", tags)

	tags[0] = "mutated"

	got := s.Observables()
	if got[0].Tags[0] != "mail-sender" {
		t.Errorf("tags = %v, caller mutation leaked into set", got[0].Tags)
	}
}

func TestSet_EmptyYieldsEmptyList(t *testing.T) {
	t.Parallel()

	got := NewSet().Observables()
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
