package maze

import "fmt"

// Grid is a rectangular grid of numRows x numCols logical cells.
//
// Cells and the walls between them share one array of
// (2*numRows+1) x (2*numCols+1) slots. Logical cell (r, c) lives at expanded
// coordinate (2r+1, 2c+1); the slot one step away in a direction is the wall
// on that side. Slots where both coordinates are even are corners and are
// never accessed.
//
// Every exported method that takes logical coordinates panics when they are
// out of range. A panic here means the caller is broken, not the input.
type Grid struct {
	numRows int
	numCols int
	start   Location
	end     Location
	cells   []CellState
}

// NewGrid allocates a grid of the given size with every slot Empty.
func NewGrid(numRows, numCols int) *Grid {
	if numRows <= 0 || numCols <= 0 {
		panic(fmt.Sprintf("maze: invalid grid dimensions %dx%d", numRows, numCols))
	}

	return &Grid{
		numRows: numRows,
		numCols: numCols,
		cells:   make([]CellState, (2*numRows+1)*(2*numCols+1)),
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)

	return &Grid{
		numRows: g.numRows,
		numCols: g.numCols,
		start:   g.start,
		end:     g.end,
		cells:   cells,
	}
}

// NumRows returns the number of logical rows.
func (g *Grid) NumRows() int {
	return g.numRows
}

// NumCols returns the number of logical columns.
func (g *Grid) NumCols() int {
	return g.numCols
}

// Start returns the entry cell.
func (g *Grid) Start() Location {
	return g.start
}

// SetStart sets the entry cell.
func (g *Grid) SetStart(row, col int) {
	g.mustBeCell(row, col)
	g.start = Location{Row: row, Col: col}
}

// End returns the exit cell.
func (g *Grid) End() Location {
	return g.end
}

// SetEnd sets the exit cell.
func (g *Grid) SetEnd(row, col int) {
	g.mustBeCell(row, col)
	g.end = Location{Row: row, Col: col}
}

// Clear resets every slot, cells and walls alike, to Empty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// SetAllWalls puts a wall in every wall slot and leaves cell slots alone.
func (g *Grid) SetAllWalls() {
	// Row width is odd, so a slot's linear index is odd exactly when one of
	// its coordinates is odd and the other even.
	for i := range g.cells {
		if i%2 == 1 {
			g.cells[i] = Wall
		}
	}
}

// Cell returns the raw state of a cell slot.
func (g *Grid) Cell(row, col int) CellState {
	g.mustBeCell(row, col)
	return g.cells[g.arrayIndex(g.cellArrayCoord(row, col))]
}

// SetCell overwrites the raw state of a cell slot.
func (g *Grid) SetCell(row, col int, state CellState) {
	g.mustBeCell(row, col)
	g.cells[g.arrayIndex(g.cellArrayCoord(row, col))] = state
}

// HasNeighbor reports whether the cell has a neighbor in direction dir.
func (g *Grid) HasNeighbor(row, col int, dir Direction) bool {
	g.mustBeCell(row, col)
	dr, dc := dir.delta()
	return g.inBounds(row+dr, col+dc)
}

// NeighborCell returns the logical coordinates of the adjacent cell in
// direction dir. It panics if there is no such cell, e.g. North of row 0.
func (g *Grid) NeighborCell(row, col int, dir Direction) Location {
	if !g.HasNeighbor(row, col, dir) {
		panic(fmt.Sprintf("maze: cell (%d,%d) has no %s neighbor", row, col, dir))
	}
	dr, dc := dir.delta()
	return Location{Row: row + dr, Col: col + dc}
}

// HasWall reports whether a wall separates the cell from its neighbor in
// direction dir.
func (g *Grid) HasWall(row, col int, dir Direction) bool {
	return g.wallSlot(row, col, dir) == Wall
}

// SetWall places a wall on the dir side of the cell.
func (g *Grid) SetWall(row, col int, dir Direction) {
	g.setWallSlot(row, col, dir, Wall)
}

// ClearWall removes the wall on the dir side of the cell.
func (g *Grid) ClearWall(row, col int, dir Direction) {
	g.setWallSlot(row, col, dir, Empty)
}

// IsVisited reports whether the cell has been marked Visited.
func (g *Grid) IsVisited(row, col int) bool {
	return g.visitSlot(row, col) == Visited
}

// SetVisited marks the cell Visited. There is no way to unmark it short of
// Clear.
func (g *Grid) SetVisited(row, col int) {
	g.visitSlot(row, col)
	g.cells[g.arrayIndex(g.cellArrayCoord(row, col))] = Visited
}

// OpenPassages counts the interior walls that have been removed, i.e. the
// number of connections between adjacent cells.
func (g *Grid) OpenPassages() int {
	open := 0
	for row := 0; row < g.numRows; row++ {
		for col := 0; col < g.numCols; col++ {
			if row < g.numRows-1 && !g.HasWall(row, col, South) {
				open++
			}
			if col < g.numCols-1 && !g.HasWall(row, col, East) {
				open++
			}
		}
	}
	return open
}

func (g *Grid) wallSlot(row, col int, dir Direction) CellState {
	g.mustBeCell(row, col)
	state := g.cells[g.arrayIndex(g.wallArrayCoord(row, col, dir))]
	if state != Wall && state != Empty {
		panic(fmt.Sprintf("maze: wall slot %s of (%d,%d) holds %s", dir, row, col, state))
	}
	return state
}

func (g *Grid) setWallSlot(row, col int, dir Direction, state CellState) {
	g.wallSlot(row, col, dir)
	g.cells[g.arrayIndex(g.wallArrayCoord(row, col, dir))] = state
}

func (g *Grid) visitSlot(row, col int) CellState {
	g.mustBeCell(row, col)
	state := g.cells[g.arrayIndex(g.cellArrayCoord(row, col))]
	if state != Visited && state != Empty {
		panic(fmt.Sprintf("maze: cell (%d,%d) holds %s", row, col, state))
	}
	return state
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.numRows && col >= 0 && col < g.numCols
}

func (g *Grid) mustBeCell(row, col int) {
	if !g.inBounds(row, col) {
		panic(fmt.Sprintf("maze: cell (%d,%d) outside %dx%d grid", row, col, g.numRows, g.numCols))
	}
}

// arrayIndex maps expanded 2D coordinates to the flat slice index.
func (g *Grid) arrayIndex(loc Location) int {
	return loc.Row*(2*g.numCols+1) + loc.Col
}

// cellArrayCoord returns the expanded coordinates of a logical cell.
func (g *Grid) cellArrayCoord(row, col int) Location {
	return Location{Row: 2*row + 1, Col: 2*col + 1}
}

// wallArrayCoord returns the expanded coordinates of the wall on the dir
// side of a logical cell.
func (g *Grid) wallArrayCoord(row, col int, dir Direction) Location {
	loc := g.cellArrayCoord(row, col)
	dr, dc := dir.delta()
	loc.Row += dr
	loc.Col += dc
	return loc
}
