package board

import "math"

// DefaultRegions returns only the n box regions for an N-symbol grid (the
// row and column regions come from RowRegions and ColumnRegions): a square-root box
// tessellation when n has an integer root, otherwise the
// widest-by-shortest factorization. Cells are identified by row*n+col, row-major.
func DefaultRegions(n int) [][]int {
	h, w := boxDimensions(n)
	regions := make([][]int, 0, n)
	for boxRow := 0; boxRow < n/h; boxRow++ {
		for boxCol := 0; boxCol < n/w; boxCol++ {
			region := make([]int, 0, n)
			for r := boxRow * h; r < boxRow*h+h; r++ {
				for c := boxCol * w; c < boxCol*w+w; c++ {
					region = append(region, r*n+c)
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// boxDimensions returns (height, width) of one box so that height*width
// == n: the integer square root when n is a perfect square, otherwise
// the widest factor pair (the factor closest to, but not exceeding,
// sqrt(n), paired with n divided by it).
func boxDimensions(n int) (h, w int) {
	root := int(math.Sqrt(float64(n)))
	for root*root > n {
		root--
	}
	if root*root == n {
		return root, root
	}
	for d := root; d >= 1; d-- {
		if n%d == 0 {
			return d, n / d
		}
	}
	return 1, n
}

// RowRegions returns the n row regions of an n×n grid.
func RowRegions(n int) [][]int {
	rows := make([][]int, n)
	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			row[c] = r*n + c
		}
		rows[r] = row
	}
	return rows
}

// ColumnRegions returns the n column regions of an n×n grid.
func ColumnRegions(n int) [][]int {
	cols := make([][]int, n)
	for c := 0; c < n; c++ {
		col := make([]int, n)
		for r := 0; r < n; r++ {
			col[r] = r*n + c
		}
		cols[c] = col
	}
	return cols
}
