// Package puzzle implements the sliding-tile puzzle: the grid, move
// resolution, the slide animation and the per-tick engine.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ErrInvalidGrid is returned when a grid would break the permutation invariant.
var ErrInvalidGrid = errors.New("puzzle: invalid grid")

// Cell is a grid position.
type Cell struct {
	Row, Col int
}

// Grid is a row-major matrix of tile identifiers in [0, rows*cols).
// The largest identifier is the empty slot; its position is cached in
// emptyRow/emptyCol and always agrees with cells.
type Grid struct {
	rows, cols int
	cells      [][]int
	emptyRow   int
	emptyCol   int
}

// validSize reports whether a rows x cols board holds at least one tile
// and the empty slot.
func validSize(rows, cols int) bool {
	return rows >= 1 && cols >= 1 && rows*cols >= 2
}

// NewSolvedGrid returns a grid in solved order: cells[r][c] = r*cols+c.
func NewSolvedGrid(rows, cols int) (*Grid, error) {
	if !validSize(rows, cols) {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidGrid, rows, cols)
	}

	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]int, rows)
	for r := range g.cells {
		g.cells[r] = make([]int, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = r*cols + c
		}
	}
	g.emptyRow, g.emptyCol = rows-1, cols-1
	return g, nil
}

// NewGrid returns a shuffled, solvable, unsolved grid.
func NewGrid(rows, cols int, rng *rand.Rand) (*Grid, error) {
	g, err := NewSolvedGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	g.Shuffle(rng)
	return g, nil
}

// GridFromValues builds a grid from a flattened row-major slice.
// values must be a permutation of [0, rows*cols).
func GridFromValues(rows, cols int, values []int) (*Grid, error) {
	g, err := NewSolvedGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrInvalidGrid, len(values), rows, cols)
	}
	seen := make([]bool, len(values))
	for _, v := range values {
		if v < 0 || v >= len(values) || seen[v] {
			return nil, fmt.Errorf("%w: %v is not a permutation", ErrInvalidGrid, values)
		}
		seen[v] = true
	}
	g.load(values)
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// EmptyID returns the identifier of the empty slot.
func (g *Grid) EmptyID() int { return g.rows*g.cols - 1 }

// Empty returns the position of the empty slot.
func (g *Grid) Empty() Cell { return Cell{Row: g.emptyRow, Col: g.emptyCol} }

// At returns the identifier at (row, col).
func (g *Grid) At(row, col int) int { return g.cells[row][col] }

// Values returns a flattened row-major copy of the cells.
func (g *Grid) Values() []int {
	out := make([]int, 0, g.rows*g.cols)
	for _, row := range g.cells {
		out = append(out, row...)
	}
	return out
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([][]int, g.rows)
	for r := range g.cells {
		c.cells[r] = append([]int(nil), g.cells[r]...)
	}
	return &c
}

// IsSolved reports whether every cell holds r*cols+c.
func (g *Grid) IsSolved() bool {
	for r, row := range g.cells {
		for c, v := range row {
			if v != r*g.cols+c {
				return false
			}
		}
	}
	return true
}

// Validate checks the permutation invariant and the cached empty position.
func (g *Grid) Validate() error {
	n := g.rows * g.cols
	seen := make([]bool, n)
	for _, v := range g.Values() {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: duplicate or out-of-range tile %d", ErrInvalidGrid, v)
		}
		seen[v] = true
	}
	if g.cells[g.emptyRow][g.emptyCol] != g.EmptyID() {
		return fmt.Errorf("%w: empty slot not at (%d,%d)", ErrInvalidGrid, g.emptyRow, g.emptyCol)
	}
	return nil
}

// IsSolvable reports whether the solved order is reachable by legal moves.
func (g *Grid) IsSolvable() bool {
	if g.rows == 1 || g.cols == 1 {
		// A single line can only shift the empty slot; tile order is fixed.
		prev := -1
		for _, v := range g.Values() {
			if v == g.EmptyID() {
				continue
			}
			if v < prev {
				return false
			}
			prev = v
		}
		return true
	}

	inv := g.inversions()
	if g.cols%2 == 1 {
		return inv%2 == 0
	}
	// Even width: each vertical move flips inversion parity and changes the
	// empty row by one, so inversions+emptyRow keeps its parity.
	return (inv+g.emptyRow)%2 == (g.rows-1)%2
}

// inversions counts pairs of non-empty tiles that are out of order.
func (g *Grid) inversions() int {
	values := g.Values()
	empty := g.EmptyID()
	count := 0
	for i := range values {
		if values[i] == empty {
			continue
		}
		for j := i + 1; j < len(values); j++ {
			if values[j] != empty && values[i] > values[j] {
				count++
			}
		}
	}
	return count
}

// Shuffle permutes the grid in place into a solvable, unsolved order.
// Shuffled orders with the wrong parity are fixed by swapping two
// non-empty tiles. Single-row and single-column grids are scrambled with
// a random walk of legal moves instead.
func (g *Grid) Shuffle(rng *rand.Rand) {
	if g.rows == 1 || g.cols == 1 {
		g.scramble(rng)
		return
	}

	values := g.Values()
	for {
		rng.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		g.load(values)
		if !g.IsSolvable() {
			g.swapFirstTiles()
		}
		if !g.IsSolved() {
			return
		}
		values = g.Values()
	}
}

// scramble applies random legal moves until the grid is unsolved.
func (g *Grid) scramble(rng *rand.Rand) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	minSteps := 4 * g.rows * g.cols
	for steps := 0; steps < minSteps || g.IsSolved(); steps++ {
		dir := dirs[rng.Intn(len(dirs))]
		if mv, ok := Resolve(dir, g.emptyRow, g.emptyCol, g.rows, g.cols); ok {
			g.slide(mv.Target)
		}
	}
}

// swapFirstTiles swaps the first two non-empty tiles in row-major order,
// flipping the permutation parity without moving the empty slot.
func (g *Grid) swapFirstTiles() {
	var picked []Cell
	for r := 0; r < g.rows && len(picked) < 2; r++ {
		for c := 0; c < g.cols && len(picked) < 2; c++ {
			if g.cells[r][c] != g.EmptyID() {
				picked = append(picked, Cell{r, c})
			}
		}
	}
	a, b := picked[0], picked[1]
	g.cells[a.Row][a.Col], g.cells[b.Row][b.Col] = g.cells[b.Row][b.Col], g.cells[a.Row][a.Col]
}

// slide exchanges the empty slot with target and moves the cached
// empty position there. target must be inside the grid.
func (g *Grid) slide(target Cell) {
	g.cells[g.emptyRow][g.emptyCol], g.cells[target.Row][target.Col] =
		g.cells[target.Row][target.Col], g.cells[g.emptyRow][g.emptyCol]
	g.emptyRow, g.emptyCol = target.Row, target.Col
}

// load copies a flattened permutation into cells and relocates the empty slot.
func (g *Grid) load(values []int) {
	for i, v := range values {
		r, c := i/g.cols, i%g.cols
		g.cells[r][c] = v
		if v == g.EmptyID() {
			g.emptyRow, g.emptyCol = r, c
		}
	}
}

// String renders the grid as rows of identifiers, "_" for the empty slot.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			if v == g.EmptyID() {
				b.WriteByte('_')
			} else {
				b.WriteString(strconv.Itoa(v))
			}
		}
	}
	return b.String()
}
