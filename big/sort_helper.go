package big

import "sort"

// sortDedup sorts s ascending and removes duplicates in place. Kept local
// to package big (rather than reusing bitset.Dedup directly) because the
// SCC closure merge works over plain []int32 slices built by repeated
// append, not over the bitset.Seq type alias used by the implication
// layer — same underlying type, different call site vocabulary.
func sortDedup(s []int32) []int32 {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	if len(s) < 2 {
		return s
	}
	w := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[w-1] {
			s[w] = s[i]
			w++
		}
	}
	return s[:w]
}
