package fscmp

import (
	"reflect"
	"testing"
)

func TestKeySet(t *testing.T) {
	s := make(KeySet)
	s.Add("b")
	s.Add("a")
	s.Add("a")

	if len(s) != 2 {
		t.Fatalf("Expected 2 keys, got %d", len(s))
	}
	if !s.Has("a") || !s.Has("b") || s.Has("c") {
		t.Error("Membership checks failed")
	}
	if got := s.Sorted(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Sorted = %v, want [a b]", got)
	}
}

func TestDirectorySets_PreservesOrder(t *testing.T) {
	d := NewDirectorySets()
	d.Add("zeta", make(KeySet))
	d.Add("alpha", make(KeySet))
	d.Add("mid", make(KeySet))

	want := []string{"zeta", "alpha", "mid"}
	if got := d.Directories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Directories = %v, want %v", got, want)
	}
	if d.Len() != 3 {
		t.Errorf("Len = %d, want 3", d.Len())
	}
}

func TestDirectorySets_ReAddKeepsPosition(t *testing.T) {
	d := NewDirectorySets()
	first := make(KeySet)
	first.Add("old")
	d.Add("a", first)
	d.Add("b", make(KeySet))

	second := make(KeySet)
	second.Add("new")
	d.Add("a", second)

	if got := d.Directories(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Directories = %v, want [a b]", got)
	}
	if !d.Keys("a").Has("new") || d.Keys("a").Has("old") {
		t.Error("Re-adding a directory must replace its set")
	}
}

func TestPartitionResult_SignatureOrdering(t *testing.T) {
	r := NewPartitionResult()
	r.Add(Signature{"a", "b"}, "k1")
	r.Add(Signature{"c"}, "k2")
	r.Add(Signature{"a"}, "k3")
	r.Add(Signature{"a", "c"}, "k4")

	got := r.Signatures()
	want := []Signature{{"a"}, {"c"}, {"a", "b"}, {"a", "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Signatures = %v, want %v", got, want)
	}
}

func TestPartitionResult_KeysSortedCopy(t *testing.T) {
	r := NewPartitionResult()
	r.Add(Signature{"a"}, "z")
	r.Add(Signature{"a"}, "m")
	r.Add(Signature{"a"}, "a")

	got := r.Keys(Signature{"a"})
	if !reflect.DeepEqual(got, []string{"a", "m", "z"}) {
		t.Errorf("Keys = %v, want sorted", got)
	}

	// Mutating the returned slice must not affect the result.
	got[0] = "mutated"
	if again := r.Keys(Signature{"a"}); again[0] != "a" {
		t.Error("Keys must return a copy")
	}
}

func TestPartitionResult_UnknownSignature(t *testing.T) {
	r := NewPartitionResult()
	r.Add(Signature{"a"}, "k")

	if got := r.Keys(Signature{"b"}); got != nil {
		t.Errorf("Expected nil for unknown signature, got %v", got)
	}
}

func TestPartitionResult_Counts(t *testing.T) {
	r := NewPartitionResult()
	r.Add(Signature{"a"}, "k1")
	r.Add(Signature{"a"}, "k2")
	r.Add(Signature{"a", "b"}, "k3")

	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
	if r.TotalKeys() != 3 {
		t.Errorf("TotalKeys = %d, want 3", r.TotalKeys())
	}
}
