package puzzle

// Direction is a player-facing move direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Move is a resolved legal move: the tile at Target slides into Source,
// the empty slot.
type Move struct {
	Direction Direction
	Source    Cell
	Target    Cell
}

// Resolve computes the tile that slides for dir.
//
// The direction names the way the tile travels, so the tile comes from the
// opposite side of the empty slot: up takes the tile below it, down the tile
// above, left the tile to its right and right the tile to its left.
// ok is false when that tile would lie outside the grid.
func Resolve(dir Direction, emptyRow, emptyCol, rows, cols int) (Move, bool) {
	target := Cell{Row: emptyRow, Col: emptyCol}
	switch dir {
	case DirUp:
		target.Row++
	case DirDown:
		target.Row--
	case DirLeft:
		target.Col++
	case DirRight:
		target.Col--
	default:
		return Move{}, false
	}

	if target.Row < 0 || target.Row >= rows || target.Col < 0 || target.Col >= cols {
		return Move{}, false
	}

	return Move{
		Direction: dir,
		Source:    Cell{Row: emptyRow, Col: emptyCol},
		Target:    target,
	}, true
}
