package fscmp

import (
	"sort"
	"strings"
)

// Rule is a single literal substring substitution applied during name
// normalization. Rules are immutable once constructed.
type Rule struct {
	Match   string
	Replace string
}

// RuleSet is an ordered sequence of rules. Rules are applied in declaration
// order; each rule scans the output of the previous one, so the sequence is
// not commutative.
type RuleSet []Rule

// KeySet is a set of comparison keys collected from a single directory.
// Duplicate keys within a directory collapse: a directory contributes a set,
// not a multiset.
type KeySet map[string]struct{}

// Add inserts a key into the set.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Has reports whether the set contains key.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the keys in lexicographic order.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DirectorySets maps directory identifiers to their collected key sets while
// preserving the caller's directory order. Directory identifiers are the
// paths exactly as supplied; no canonicalization is performed, so two
// symlinks to the same directory are two distinct directories.
type DirectorySets struct {
	order []string
	sets  map[string]KeySet
}

// NewDirectorySets creates an empty DirectorySets.
func NewDirectorySets() *DirectorySets {
	return &DirectorySets{
		sets: make(map[string]KeySet),
	}
}

// Add records the key set collected for dir. Adding the same directory twice
// replaces its set without changing its position in the order.
func (d *DirectorySets) Add(dir string, keys KeySet) {
	if _, exists := d.sets[dir]; !exists {
		d.order = append(d.order, dir)
	}
	d.sets[dir] = keys
}

// Directories returns the directory identifiers in the order they were added.
func (d *DirectorySets) Directories() []string {
	return d.order
}

// Keys returns the key set collected for dir, or nil if dir is unknown.
func (d *DirectorySets) Keys(dir string) KeySet {
	return d.sets[dir]
}

// Len returns the number of directories.
func (d *DirectorySets) Len() int {
	return len(d.order)
}

// Signature is the ordered tuple of directory identifiers that contain a
// given key. The tuple preserves the caller's original directory order and
// is never re-sorted, so its identity depends on input order.
type Signature []string

// signatureSep separates tuple elements in the surrogate map key. NUL cannot
// appear in a path string on any supported platform.
const signatureSep = "\x00"

// surrogate returns a string form of the tuple usable as a map key. Go maps
// cannot key on slices, so grouping uses this joined form with a side table
// recovering the original tuple.
func (s Signature) surrogate() string {
	return strings.Join(s, signatureSep)
}

// PartitionResult maps each membership signature to the keys sharing it.
// Every key present in any directory set appears in exactly one group.
type PartitionResult struct {
	keys   map[string][]string
	tuples map[string]Signature
}

// NewPartitionResult creates an empty PartitionResult.
func NewPartitionResult() *PartitionResult {
	return &PartitionResult{
		keys:   make(map[string][]string),
		tuples: make(map[string]Signature),
	}
}

// Add appends key to the group identified by sig.
func (r *PartitionResult) Add(sig Signature, key string) {
	id := sig.surrogate()
	if _, exists := r.tuples[id]; !exists {
		r.tuples[id] = sig
	}
	r.keys[id] = append(r.keys[id], key)
}

// Signatures returns the distinct signatures ordered by tuple length
// ascending, then by tuple contents lexicographically. This is the
// presentation order: smallest subsets first, "present in all" last.
func (r *PartitionResult) Signatures() []Signature {
	sigs := make([]Signature, 0, len(r.tuples))
	for _, sig := range r.tuples {
		sigs = append(sigs, sig)
	}
	sort.Slice(sigs, func(i, j int) bool {
		if len(sigs[i]) != len(sigs[j]) {
			return len(sigs[i]) < len(sigs[j])
		}
		return sigs[i].surrogate() < sigs[j].surrogate()
	})
	return sigs
}

// Keys returns the keys grouped under sig in lexicographic order. Returns nil
// for an unknown signature.
func (r *PartitionResult) Keys(sig Signature) []string {
	keys := r.keys[sig.surrogate()]
	if keys == nil {
		return nil
	}
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)
	return sorted
}

// Len returns the number of distinct signatures.
func (r *PartitionResult) Len() int {
	return len(r.tuples)
}

// TotalKeys returns the number of keys across all groups. Since the partition
// is exhaustive and disjoint, this equals the size of the key universe.
func (r *PartitionResult) TotalKeys() int {
	total := 0
	for _, keys := range r.keys {
		total += len(keys)
	}
	return total
}
