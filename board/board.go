package board

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/sudokubig/bigsolver/big"
	"github.com/sudokubig/bigsolver/cellgrid"
	"github.com/sudokubig/bigsolver/cellvar"
	"github.com/sudokubig/bigsolver/constraint"
	"github.com/sudokubig/bigsolver/literal"
	"github.com/sudokubig/bigsolver/pool"
	"github.com/sudokubig/bigsolver/propagate"
	"github.com/sudokubig/bigsolver/search"
	"github.com/sudokubig/bigsolver/status"
	"github.com/sudokubig/bigsolver/steps"
)

// Board is a fully constructed, ready-to-query puzzle: a cell grid, a
// root BIG layer, region weak links, and whatever constraints the
// config named, wrapped in the search.Snapshot every core operation
// forks from.
type Board struct {
	root         *search.Snapshot
	regions      [][]int
	log          hclog.Logger
	invalidInit  bool
	allowedSteps []steps.Name
}

// defaultAllowedLogicalSteps are the optional (non-always-enabled)
// heuristics a board enables when Config.AllowedLogicalSteps is left
// unset: naked-pair cross-implication wiring, so LogicalStep/LogicalSolve
// exercise it without every caller having to opt in by name.
var defaultAllowedLogicalSteps = []steps.Name{steps.NamePairs}

func resolveAllowedSteps(names []string) []steps.Name {
	if names == nil {
		return defaultAllowedLogicalSteps
	}
	allowed := make([]steps.Name, len(names))
	for i, n := range names {
		allowed[i] = steps.Name(n)
	}
	return allowed
}

// N returns the puzzle's symbol count / side length.
func (b *Board) N() int { return b.root.Grid.N() }

// InvalidInit reports whether construction itself already proved the
// puzzle unsatisfiable: a weak link or a
// constraint's Init contradicted an already-given cell pair. Every core
// operation short-circuits to "no solution" without entering the search
// loop when this is true.
func (b *Board) InvalidInit() bool { return b.invalidInit }

// Regions returns the board's region list (boxes, rows, and columns) as
// wired during construction.
func (b *Board) Regions() [][]int { return b.regions }

// Graph returns the board's own root BIG layer, for callers that need
// to inspect or extend implications directly (e.g. a host adding
// puzzle-specific implications before the first search).
func (b *Board) Graph() *big.BIG { return b.root.Graph }

// Preprocess runs a full BIG Preprocess pass (sort, prune, SCC/closure,
// clause-LUT rebuild) against the board's own root state, the same pass
// FindSolution runs automatically on its first branch when
// AllowPreprocessing is set. CountSolutions runs it on its first branch
// unconditionally; it does not read CountSolutionsOptions.AllowPreprocessing.
// Exposed directly for callers that want
// to force it before inspecting Graph(): only after preprocessing does
// HasImplication see transitively derived pairs via the closure view.
func (b *Board) Preprocess() { b.root.Graph.Preprocess(b.root.Grid) }

// Release returns the board's pooled resources. Callers must not use b
// after calling Release.
func (b *Board) Release() { b.root.Release() }

// NewBoard decodes cfg into a constructed Board: it lays out the grid
// from per-cell load instructions, builds the root BIG with one
// exactly-one clause per cell (cell-index ordered, so propagate's
// cell-forcing convention holds), wires the Latin-square region weak
// links, instantiates and initializes every named constraint, and
// finally threads the puzzle's given cells through the now-complete
// graph.
func NewBoard(cfg Config, registry ConstraintRegistry, logger hclog.Logger) (*Board, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	log := logger.Named("board")

	if cfg.N <= 0 {
		return nil, ErrInvalidSize
	}
	n := cfg.N
	numCells := n * n

	grid := cellgrid.New(n, pool.New(numCells))

	var verr *multierror.Error
	var givenCells []int
	var givenValues []int

	for cell := 0; cell < numCells; cell++ {
		if cell >= len(cfg.Cells) {
			continue // no spec for this cell: default, all values
		}
		spec := cfg.Cells[cell]
		modes := 0
		if spec.Given {
			modes++
		}
		if len(spec.GivenPencilMarks) > 0 {
			modes++
		}
		if len(spec.CenterPencilMarks) > 0 {
			modes++
		}
		if modes > 1 {
			verr = multierror.Append(verr, fmt.Errorf("%w: cell %d", ErrCellLoadConflict, cell))
			continue
		}

		switch {
		case spec.Given:
			if err := grid.SetAsGivenRaw(cell, spec.Value); err != nil {
				verr = multierror.Append(verr, fmt.Errorf("cell %d: %w", cell, err))
				continue
			}
			givenCells = append(givenCells, cell)
			givenValues = append(givenValues, spec.Value)
		case len(spec.GivenPencilMarks) > 0:
			grid.ApplyPencilMarksRaw(cell, marksToMask(spec.GivenPencilMarks))
		case len(spec.CenterPencilMarks) > 0:
			grid.ApplyPencilMarksRaw(cell, marksToMask(spec.CenterPencilMarks))
		}
	}
	if err := verr.ErrorOrNil(); err != nil {
		grid.Release()
		return nil, err
	}

	clauseSpecs := make([]big.ClauseSpec, numCells)
	for cell := 0; cell < numCells; cell++ {
		lits := make([]literal.Literal, n)
		for v := 1; v <= n; v++ {
			lits[v-1] = literal.Pos(cellvar.Encode(n, cell, v))
		}
		clauseSpecs[cell] = big.ClauseSpec{Literals: lits}
	}
	graph, err := big.NewBIG(cellvar.CellValueCount(n), clauseSpecs)
	if err != nil {
		grid.Release()
		return nil, err
	}

	regions := cellRegions(cfg, n)
	invalidInit := wireRegionWeakLinks(graph, grid, n, regions)

	brd := &Board{
		root:         &search.Snapshot{Grid: grid, Graph: graph},
		regions:      regions,
		log:          log,
		allowedSteps: resolveAllowedSteps(cfg.AllowedLogicalSteps),
	}

	constraints, err := instantiateConstraints(brd, cfg.Constraints, registry)
	if err != nil {
		brd.Release()
		return nil, err
	}
	brd.root.Constraints = constraints

	engine := propagate.NewEngine(brd.root.Grid, brd.root.Graph, brd.root.Constraints)
	engine.BruteForce = true

	for _, c := range constraints {
		res, err := c.Init(engine)
		if err != nil {
			brd.Release()
			return nil, err
		}
		if res.Status == status.Invalid {
			invalidInit = true
		}
	}

	if len(givenCells) > 0 {
		singles := make([]literal.Literal, len(givenCells))
		for i, cell := range givenCells {
			singles[i] = literal.Pos(cellvar.Encode(n, cell, givenValues[i]))
		}
		if st := engine.SeedGivens(singles); st == status.Invalid {
			invalidInit = true
		}
	}

	brd.invalidInit = invalidInit
	log.Debug("board constructed", "n", n, "invalidInit", invalidInit, "constraints", len(constraints))
	return brd, nil
}

func instantiateConstraints(b *Board, specs []ConstraintSpec, registry ConstraintRegistry) ([]constraint.Constraint, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	var verr *multierror.Error
	constraints := make([]constraint.Constraint, 0, len(specs))
	for _, cs := range specs {
		factory, ok := registry[cs.Name]
		if !ok {
			verr = multierror.Append(verr, fmt.Errorf("%w: %s", ErrUnknownConstraint, cs.Name))
			continue
		}
		c, err := factory(b, cs.Params)
		if err != nil {
			verr = multierror.Append(verr, fmt.Errorf("constraint %s: %w", cs.Name, err))
			continue
		}
		constraints = append(constraints, c)
	}
	if err := verr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return constraints, nil
}

// cellRegions resolves the board's regions: boxes (default tessellation,
// or a per-cell Region override), plus the always-present row and column
// regions.
func cellRegions(cfg Config, n int) [][]int {
	boxes := DefaultRegions(n)

	override := false
	for _, c := range cfg.Cells {
		if c.Region != nil {
			override = true
			break
		}
	}
	if override {
		idOf := make(map[int]int, n*n)
		for id, region := range boxes {
			for _, cell := range region {
				idOf[cell] = id
			}
		}
		grouped := make(map[int][]int)
		for cell := 0; cell < n*n; cell++ {
			id := idOf[cell]
			if cell < len(cfg.Cells) && cfg.Cells[cell].Region != nil {
				id = *cfg.Cells[cell].Region
			}
			grouped[id] = append(grouped[id], cell)
		}
		ids := make([]int, 0, len(grouped))
		for id := range grouped {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		boxes = boxes[:0]
		for _, id := range ids {
			boxes = append(boxes, grouped[id])
		}
	}

	all := make([][]int, 0, len(boxes)+2*n)
	all = append(all, boxes...)
	all = append(all, RowRegions(n)...)
	all = append(all, ColumnRegions(n)...)
	return all
}

func marksToMask(values []int) uint64 {
	var mask uint64
	for _, v := range values {
		if v >= 1 {
			mask |= uint64(1) << uint(v-1)
		}
	}
	return mask
}
