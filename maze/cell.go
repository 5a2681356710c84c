package maze

import "fmt"

// CellState is the tag stored in every slot of the expanded grid.
type CellState uint8

const (
	// Empty is open space. It is valid for both cell slots and wall slots.
	Empty CellState = iota
	// Wall marks a wall between two adjacent cells. Valid only for wall slots.
	Wall
	// Visited marks a cell reached during generation. Valid only for cell slots.
	Visited
)

// String returns the name of the state.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Visited:
		return "Visited"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Location is a (row, col) pair. It is used both for logical cell
// coordinates and for expanded array coordinates; only Grid converts
// between the two.
type Location struct {
	Row int // Row index
	Col int // Column index
}

// String formats the location as "(row,col)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}

// Direction names one of the four sides of a cell.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in the order the generator considers them.
var Directions = []Direction{North, South, West, East}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// delta returns the row and column offsets of a step in direction d.
func (d Direction) delta() (int, int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		panic(fmt.Sprintf("maze: invalid direction %d", uint8(d)))
	}
}
