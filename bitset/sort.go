package bitset

import "sort"

// dedupSortInPlace sorts s ascending and removes duplicates in place.
// Complexity: O(n log n).
func dedupSortInPlace(s Seq) Seq {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return Dedup(s)
}
