package partition

import (
	"reflect"
	"testing"

	"github.com/vvka-141/fscmp/pkg/fscmp"
)

func keySet(keys ...string) fscmp.KeySet {
	s := make(fscmp.KeySet)
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func TestPartition_TwoDirectories(t *testing.T) {
	sets := fscmp.NewDirectorySets()
	sets.Add("A", keySet("foo", "bar"))
	sets.Add("B", keySet("foo", "baz"))

	result := New().Partition(sets)

	if result.Len() != 3 {
		t.Fatalf("Expected 3 signature groups, got %d", result.Len())
	}

	cases := []struct {
		sig  fscmp.Signature
		keys []string
	}{
		{fscmp.Signature{"A"}, []string{"bar"}},
		{fscmp.Signature{"B"}, []string{"baz"}},
		{fscmp.Signature{"A", "B"}, []string{"foo"}},
	}
	for _, c := range cases {
		if got := result.Keys(c.sig); !reflect.DeepEqual(got, c.keys) {
			t.Errorf("Keys(%v) = %v, want %v", c.sig, got, c.keys)
		}
	}
}

func TestPartition_SignaturePreservesInputOrder(t *testing.T) {
	// A key in the first and third directories gets the tuple (A, C),
	// in the caller's original order, never re-sorted.
	sets := fscmp.NewDirectorySets()
	sets.Add("dirA", keySet("shared"))
	sets.Add("dirB", keySet("other"))
	sets.Add("dirC", keySet("shared"))

	result := New().Partition(sets)

	if got := result.Keys(fscmp.Signature{"dirA", "dirC"}); !reflect.DeepEqual(got, []string{"shared"}) {
		t.Errorf("Keys(dirA, dirC) = %v, want [shared]", got)
	}
	if got := result.Keys(fscmp.Signature{"dirC", "dirA"}); got != nil {
		t.Errorf("Re-sorted signature must not exist, got %v", got)
	}
}

func TestPartition_ExhaustiveAndDisjoint(t *testing.T) {
	sets := fscmp.NewDirectorySets()
	sets.Add("A", keySet("a", "ab", "abc", "ac"))
	sets.Add("B", keySet("b", "ab", "abc", "bc"))
	sets.Add("C", keySet("c", "ac", "abc", "bc"))

	result := New().Partition(sets)

	// Union of all groups equals the universe, with no key in two groups.
	seen := map[string]int{}
	for _, sig := range result.Signatures() {
		for _, key := range result.Keys(sig) {
			seen[key]++
		}
	}

	wantUniverse := []string{"a", "ab", "abc", "ac", "b", "bc", "c"}
	if len(seen) != len(wantUniverse) {
		t.Fatalf("Expected %d keys in partition, got %d", len(wantUniverse), len(seen))
	}
	for _, key := range wantUniverse {
		if seen[key] != 1 {
			t.Errorf("Key %q appears %d times across groups, want exactly 1", key, seen[key])
		}
	}
	if result.TotalKeys() != len(wantUniverse) {
		t.Errorf("TotalKeys = %d, want %d", result.TotalKeys(), len(wantUniverse))
	}
}

func TestPartition_SignatureCorrectness(t *testing.T) {
	sets := fscmp.NewDirectorySets()
	sets.Add("X", keySet("p", "q"))
	sets.Add("Y", keySet("q", "r"))

	result := New().Partition(sets)

	// Membership in a signature iff membership in the directory's set.
	for _, sig := range result.Signatures() {
		inSig := map[string]bool{}
		for _, dir := range sig {
			inSig[dir] = true
		}
		for _, key := range result.Keys(sig) {
			for _, dir := range sets.Directories() {
				if sets.Keys(dir).Has(key) != inSig[dir] {
					t.Errorf("Key %q: directory %q membership mismatch with signature %v", key, dir, sig)
				}
			}
		}
	}
}

func TestPartition_EmptyUniverse(t *testing.T) {
	sets := fscmp.NewDirectorySets()
	sets.Add("A", keySet())
	sets.Add("B", keySet())

	result := New().Partition(sets)

	if result.Len() != 0 {
		t.Errorf("Expected empty partition, got %d groups", result.Len())
	}
	if result.TotalKeys() != 0 {
		t.Errorf("Expected 0 total keys, got %d", result.TotalKeys())
	}
}

func TestPartition_KeysSortedWithinGroup(t *testing.T) {
	sets := fscmp.NewDirectorySets()
	sets.Add("A", keySet("zeta", "alpha", "mid"))
	sets.Add("B", keySet())

	result := New().Partition(sets)

	want := []string{"alpha", "mid", "zeta"}
	if got := result.Keys(fscmp.Signature{"A"}); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys(A) = %v, want %v", got, want)
	}
}
