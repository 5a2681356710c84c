package i

import "github.com/beka-birhanu/genmaze/maze"

// MazeGenerator produces perfect mazes on demand.
type MazeGenerator interface {
	// Generate builds and carves a maze with the given number of rows and columns.
	// Returns an error if the dimensions are not accepted.
	Generate(rows, cols int) (*maze.Maze, error)
}
