package board_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sudokubig/bigsolver/board"
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/literal"
)

func TestBoardE2E(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "board e2e suite")
}

var _ = Describe("a minimal 4x4 classic puzzle", func() {
	// S1 — Minimal 4x4 classic.
	It("has a unique solution satisfying every row and column", func() {
		cfg := givensConfig(4, "0030040010000002")
		brd, err := board.NewBoard(cfg, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		defer brd.Release()

		Expect(brd.InvalidInit()).To(BeFalse())

		res := brd.FindSolution(board.FindSolutionOptions{AllowPreprocessing: true}, nil)
		Expect(res.NoSolution).To(BeFalse())
		Expect(res.Solution).NotTo(BeNil())
		defer res.Solution.Release()

		for r := 0; r < 4; r++ {
			sum := 0
			for c := 0; c < 4; c++ {
				sum += res.Solution.Value(r*4 + c)
			}
			Expect(sum).To(Equal(10))
		}

		counted, err := board.NewBoard(cfg, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		defer counted.Release()
		countRes := counted.CountSolutions(board.CountSolutionsOptions{Max: 2, AllowPreprocessing: true}, nil)
		Expect(countRes.Count).To(Equal(1), "S1's puzzle is specified to have a unique solution")
	})
})

var _ = Describe("contradictory givens", func() {
	// S2 — Contradictory givens.
	It("flips invalidInit and reports noSolution without searching", func() {
		cfg := givensConfig(4, "1100000000000000")
		brd, err := board.NewBoard(cfg, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		defer brd.Release()

		Expect(brd.InvalidInit()).To(BeTrue())

		res := brd.FindSolution(board.FindSolutionOptions{}, nil)
		Expect(res.NoSolution).To(BeTrue())
		Expect(res.Solution).To(BeNil())
	})
})

var _ = Describe("implication derivation through preprocess", func() {
	// S3 — Implication derivation.
	It("makes a transitively derived implication visible via the closure view", func() {
		cfg := board.Config{N: 4}
		brd, err := board.NewBoard(cfg, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		defer brd.Release()

		n := 4
		r1c1v1 := literal.Pos(cellvar.Encode(n, 0, 1))  // r1c1=1
		r2c2v2 := literal.Pos(cellvar.Encode(n, 5, 2))  // r2c2=2
		r3c3v3 := literal.Pos(cellvar.Encode(n, 10, 3)) // r3c3=3

		graph := brd.Graph()
		graph.AddImplication(r1c1v1, r2c2v2)
		graph.AddImplication(r2c2v2, r3c3v3)

		Expect(graph.HasImplication(r1c1v1, r3c3v3)).To(BeFalse(), "not yet derivable before preprocess's closure pass")

		brd.Preprocess()

		Expect(graph.HasImplication(r1c1v1, r3c3v3)).To(BeTrue())
	})
})
