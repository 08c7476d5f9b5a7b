package bitset

// Seq is an ascending, duplicate-free sequence of int32 ids. Every function
// in this file assumes its []int32 inputs already satisfy that invariant;
// violating it is undefined behavior, per the implication table's contract.
type Seq = []int32

// Union returns a new ascending, duplicate-free sequence containing every
// element of a or b.
// Complexity: O(len(a)+len(b)).
func Union(a, b Seq) Seq {
	out := make(Seq, 0, len(a)+len(b))
	return UnionInto(out, a, b)
}

// UnionInto appends the union of a and b onto dst (dst is assumed disjoint
// from, or a prefix to be overwritten... callers pass dst[:0] to reuse
// backing storage) and returns the result.
// Complexity: O(len(a)+len(b)).
func UnionInto(dst, a, b Seq) Seq {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dst = append(dst, a[i])
			i++
		case a[i] > b[j]:
			dst = append(dst, b[j])
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	dst = append(dst, b[j:]...)
	return dst
}

// Intersect returns a new ascending sequence containing elements present in
// both a and b.
// Complexity: O(len(a)+len(b)).
func Intersect(a, b Seq) Seq {
	out := make(Seq, 0, minInt(len(a), len(b)))
	return IntersectInto(out, a, b)
}

// IntersectInto appends the intersection of a and b onto dst.
// Complexity: O(len(a)+len(b)).
func IntersectInto(dst, a, b Seq) Seq {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}
	return dst
}

// Difference returns a new ascending sequence of elements in a but not in b
// (a \ b).
// Complexity: O(len(a)+len(b)).
func Difference(a, b Seq) Seq {
	out := make(Seq, 0, len(a))
	return DifferenceInto(out, a, b)
}

// DifferenceInto appends a\b onto dst.
// Complexity: O(len(a)+len(b)).
func DifferenceInto(dst, a, b Seq) Seq {
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) {
			dst = append(dst, a[i:]...)
			return dst
		}
		switch {
		case a[i] < b[j]:
			dst = append(dst, a[i])
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
	}
	return dst
}

// Intersects reports whether a and b share at least one element, without
// materializing the intersection (two-pointer early exit).
// Complexity: O(len(a)+len(b)) worst case, typically much less.
func Intersects(a, b Seq) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			return true
		}
	}
	return false
}

// Insert inserts v into s, preserving ascending order, and returns the
// extended slice. If v is already present, s is returned unchanged.
// Complexity: O(n).
func Insert(s Seq, v int32) Seq {
	idx := lowerBound(s, v)
	if idx < len(s) && s[idx] == v {
		return s
	}
	s = append(s, 0)
	copy(s[idx+1:], s[idx:len(s)-1])
	s[idx] = v
	return s
}

// Delete removes v from s if present and returns the (possibly shortened)
// slice. s is unchanged if v is absent.
// Complexity: O(n).
func Delete(s Seq, v int32) Seq {
	idx := lowerBound(s, v)
	if idx >= len(s) || s[idx] != v {
		return s
	}
	copy(s[idx:], s[idx+1:])
	return s[:len(s)-1]
}

// Contains reports whether v is present in the ascending sequence s.
// Complexity: O(log n).
func Contains(s Seq, v int32) bool {
	idx := lowerBound(s, v)
	return idx < len(s) && s[idx] == v
}

// FilterOut removes from s every element that also appears in filter,
// returning the filtered slice. If removed is non-nil, the removed elements
// are appended to it (in ascending order) and the extended slice is
// returned as the second result.
// Complexity: O(len(s)+len(filter)).
func FilterOut(s, filter, removed Seq) (Seq, Seq) {
	w := 0
	i, j := 0, 0
	for i < len(s) {
		if j < len(filter) && filter[j] < s[i] {
			j++
			continue
		}
		if j < len(filter) && filter[j] == s[i] {
			if removed != nil {
				removed = append(removed, s[i])
			}
			i++
			j++
			continue
		}
		s[w] = s[i]
		w++
		i++
	}
	return s[:w], removed
}

// ExtendSorted appends extra to s, sorts the whole slice ascending, and
// removes duplicates in place. Use when extra is not known to be
// individually sorted relative to s (e.g. batched inserts from an
// unordered source); callers who can guarantee sortedness should use
// UnionInto instead to avoid the O(n log n) sort.
// Complexity: O((n+m) log (n+m)).
func ExtendSorted(s Seq, extra ...int32) Seq {
	s = append(s, extra...)
	return dedupSortInPlace(s)
}

// Dedup removes consecutive duplicates from an already-ascending s,
// returning the shortened slice. It does not sort; callers must ensure s
// is sorted first.
// Complexity: O(n).
func Dedup(s Seq) Seq {
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

func lowerBound(s Seq, v int32) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
