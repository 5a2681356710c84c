/*
Package maze provides tools for creating and rendering rectangular perfect mazes.

A Grid stores cells and the walls between them in one expanded array. The
Generator carves a spanning tree into a fully walled grid with randomized
depth-first search, and Print renders the result as ASCII art.
*/
package maze

import (
	"time"

	"github.com/google/uuid"
)

// Maze is a generated grid together with the metadata used to track it.
type Maze struct {
	ID        uuid.UUID // Unique identifier of this maze
	Grid      *Grid     // Carved grid
	CreatedAt time.Time // Generation time (UTC)
}

// New wraps a carved grid in a Maze with a fresh ID.
func New(g *Grid) *Maze {
	return &Maze{
		ID:        uuid.New(),
		Grid:      g,
		CreatedAt: time.Now().UTC(),
	}
}

// String renders the underlying grid.
func (m *Maze) String() string {
	return m.Grid.String()
}
