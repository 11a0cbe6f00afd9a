// Package partition groups comparison keys by membership signature: the
// ordered tuple of directories containing each key. The grouping is total and
// exhaustive; every key lands in exactly one signature group.
package partition

import "github.com/vvka-141/fscmp/pkg/fscmp"

// Partitioner computes the membership-signature partition of the collected
// directory sets. It depends only on the completed sets, never on the
// filesystem, so its correctness is independent of traversal behavior.
type Partitioner struct{}

// New creates a Partitioner.
func New() *Partitioner {
	return &Partitioner{}
}

// Partition computes, for every key in the union of all directory sets, the
// exact subset of directories containing it, and groups keys by that subset.
// Signature tuples preserve the caller's original directory order and are
// never re-sorted. An empty universe yields an empty result, not an error.
func (p *Partitioner) Partition(sets *fscmp.DirectorySets) *fscmp.PartitionResult {
	result := fscmp.NewPartitionResult()

	for _, key := range universe(sets) {
		result.Add(signature(key, sets), key)
	}
	return result
}

// universe returns the union of all keys across all directory sets.
func universe(sets *fscmp.DirectorySets) []string {
	all := make(fscmp.KeySet)
	for _, dir := range sets.Directories() {
		for key := range sets.Keys(dir) {
			all.Add(key)
		}
	}
	return all.Sorted()
}

// signature returns the ordered tuple of directories whose set contains key,
// iterating directories in input order.
func signature(key string, sets *fscmp.DirectorySets) fscmp.Signature {
	var sig fscmp.Signature
	for _, dir := range sets.Directories() {
		if sets.Keys(dir).Has(key) {
			sig = append(sig, dir)
		}
	}
	return sig
}

var _ fscmp.Partitioner = (*Partitioner)(nil)
