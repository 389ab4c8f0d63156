package hashdups

import (
	"cmp"
	"slices"
)

// Group is a maximal set of input lines sharing the same hash string.
type Group struct {
	Key string
	// Indices are zero-based line positions, strictly ascending.
	Indices []int
}

// entry tags a key with its position in the input.
type entry struct {
	key   string
	index int
}

// TrimTrailingEmpty drops the final element of lines if it is empty.
// A text ending in a newline splits into a trailing "" that is not a key.
// Empty strings anywhere else are kept.
func TrimTrailingEmpty(lines []string) []string {
	if n := len(lines); n > 0 && lines[n-1] == "" {
		return lines[:n-1]
	}
	return lines
}

// GroupAll partitions the (trimmed) lines into groups of equal keys, ordered
// by ascending key. Every index in [0, N) appears in exactly one group.
func GroupAll(lines []string) []Group {
	lines = TrimTrailingEmpty(lines)
	if len(lines) == 0 {
		return nil
	}

	entries := make([]entry, len(lines))
	for i, key := range lines {
		entries[i] = entry{key: key, index: i}
	}
	// Stable so that equal keys keep their input order, which makes the
	// indices of each group come out ascending.
	slices.SortStableFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.key, b.key)
	})

	var groups []Group
	start := 0
	for i := 1; i <= len(entries); i++ {
		if i < len(entries) && entries[i].key == entries[start].key {
			continue
		}
		indices := make([]int, i-start)
		for j, e := range entries[start:i] {
			indices[j] = e.index
		}
		groups = append(groups, Group{Key: entries[start].key, Indices: indices})
		start = i
	}
	return groups
}

// DuplicateGroups returns the groups of lines with more than one member, in
// ascending key order.
func DuplicateGroups(lines []string) []Group {
	return duplicatesOf(GroupAll(lines))
}

// duplicatesOf returns the groups in all with more than one member, or nil.
// all is left unmodified.
func duplicatesOf(all []Group) []Group {
	var dups []Group
	for _, g := range all {
		if len(g.Indices) > 1 {
			dups = append(dups, g)
		}
	}
	return dups
}

// indicesOf strips the keys from groups.
func indicesOf(groups []Group) [][]int {
	if groups == nil {
		return nil
	}
	out := make([][]int, len(groups))
	for i, g := range groups {
		out[i] = g.Indices
	}
	return out
}

// FindDuplicateGroups returns, for every hash that occurs on more than one
// line, the ascending list of line indices holding it. Groups are ordered by
// ascending hash value. Input without duplicates yields nil.
func FindDuplicateGroups(lines []string) [][]int {
	return indicesOf(DuplicateGroups(lines))
}
