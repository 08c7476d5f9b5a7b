package big

import "github.com/sudokubig/bigsolver/literal"

// Literal nodes for Tarjan/closure are indexed 0..2*varCount-1: the
// positive literal of variable v is node 2v, the negative literal is
// node 2v+1. This keeps closurePos/closureNeg indexed per-literal (a
// literal's positive and negative consequents are unrelated sets, unlike
// implication.Table's per-variable adjacency which already encodes sign
// via which of the four polarity tables holds it).
func nodeIndex(lit literal.Literal) int {
	v := int(literal.Var(lit))
	if literal.IsPositive(lit) {
		return 2 * v
	}
	return 2*v + 1
}

func nodeLiteral(node int) literal.Literal {
	v := literal.Variable(node / 2)
	if node%2 == 0 {
		return literal.Pos(v)
	}
	return literal.Neg(v)
}

// recomputeSCC runs Tarjan's algorithm over the literal graph visible at
// this layer (own table plus every parent, full-variable view including
// pseudo-variables) and rebuilds closurePos/closureNeg for every literal
// node. SCCs are identified by Tarjan in reverse-topological order, so by
// the time a component is popped, every component it can reach has
// already had its closure computed — each new component's closure is
// then just the union of its direct external edges' targets and those
// targets' own already-computed closures.
// Complexity: O(V+E) over the literal graph.
func (b *BIG) recomputeSCC() {
	nNodes := 2 * b.varCount
	index := make([]int, nNodes)
	lowlink := make([]int, nNodes)
	onStack := make([]bool, nNodes)
	for i := range index {
		index[i] = -1
	}

	b.closurePos = make([][]int32, nNodes)
	b.closureNeg = make([][]int32, nNodes)

	var stack []int
	nextIndex := 0

	var strongConnect func(v int)
	strongConnect = func(v int) {
		index[v] = nextIndex
		lowlink[v] = nextIndex
		nextIndex++
		stack = append(stack, v)
		onStack[v] = true

		lit := nodeLiteral(v)
		posSucc := b.getConsequences(lit, true)
		negSucc := b.getConsequences(lit, false)

		for _, pv := range posSucc {
			w := 2 * int(pv)
			if index[w] == -1 {
				strongConnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && index[w] < lowlink[v] {
				lowlink[v] = index[w]
			}
		}
		for _, nv := range negSucc {
			w := 2*int(nv) + 1
			if index[w] == -1 {
				strongConnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && index[w] < lowlink[v] {
				lowlink[v] = index[w]
			}
		}

		if lowlink[v] == index[v] {
			var component []int
			for {
				n := len(stack) - 1
				w := stack[n]
				stack = stack[:n]
				onStack[w] = false
				component = append(component, w)
				if w == v {
					break
				}
			}
			b.finalizeComponent(component)
		}
	}

	for v := 0; v < nNodes; v++ {
		if index[v] == -1 {
			strongConnect(v)
		}
	}

	b.sccRecomputedAt = b.clock.Now()
}

// finalizeComponent assigns every literal node in component the same
// closure: the union, over every outgoing edge leaving the component, of
// the direct target plus that target's own (already-computed) closure.
func (b *BIG) finalizeComponent(component []int) {
	memberSet := make(map[int]bool, len(component))
	for _, v := range component {
		memberSet[v] = true
	}

	var closurePos, closureNeg []int32
	for _, v := range component {
		lit := nodeLiteral(v)
		for _, pv := range b.getConsequences(lit, true) {
			target := 2 * int(pv)
			if memberSet[target] {
				continue
			}
			closurePos = append(closurePos, pv)
			closurePos = append(closurePos, b.closurePos[target]...)
			closureNeg = append(closureNeg, b.closureNeg[target]...)
		}
		for _, nv := range b.getConsequences(lit, false) {
			target := 2*int(nv) + 1
			if memberSet[target] {
				continue
			}
			closureNeg = append(closureNeg, nv)
			closurePos = append(closurePos, b.closurePos[target]...)
			closureNeg = append(closureNeg, b.closureNeg[target]...)
		}
	}
	closurePos = dedupSorted(closurePos)
	closureNeg = dedupSorted(closureNeg)

	for _, v := range component {
		b.closurePos[v] = closurePos
		b.closureNeg[v] = closureNeg
	}
}

func dedupSorted(s []int32) []int32 {
	if len(s) == 0 {
		return s
	}
	// small enough (variable-count bound) that an O(n log n) sort here
	// per component is not worth hand-rolling merge logic for.
	out := append([]int32(nil), s...)
	return sortDedup(out)
}
