package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/genmaze/maze"
	"github.com/beka-birhanu/genmaze/service/i"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrNilRandSource     = errors.New("random source is nil")
	ErrNilLogger         = errors.New("logger is nil")
)

// MazeService builds, carves and labels mazes.
// Implements i.MazeGenerator.
type MazeService struct {
	generator *maze.Generator
	logger    i.Logger
	maxDim    int
	sync.Mutex // The random source is not safe for concurrent use.
}

// NewMazeService creates a MazeService that draws randomness from src and
// accepts mazes of up to maxDim rows and columns.
func NewMazeService(src maze.RandSource, logger i.Logger, maxDim int) (i.MazeGenerator, error) {
	if src == nil {
		return nil, ErrNilRandSource
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	if maxDim <= 0 {
		return nil, fmt.Errorf("max dimension %d: %w", maxDim, ErrInvalidDimensions)
	}

	return &MazeService{
		generator: maze.NewGenerator(src),
		logger:    logger,
		maxDim:    maxDim,
	}, nil
}

// Generate carves a rows x cols maze with the entry at the top-left cell and
// the exit at the bottom-right cell.
func (s *MazeService) Generate(rows, cols int) (*maze.Maze, error) {
	if rows <= 0 || cols <= 0 || rows > s.maxDim || cols > s.maxDim {
		return nil, fmt.Errorf("%dx%d (allowed 1..%d): %w", rows, cols, s.maxDim, ErrInvalidDimensions)
	}

	grid := maze.NewGrid(rows, cols)
	grid.Clear()
	grid.SetAllWalls()
	grid.SetStart(0, 0)
	grid.SetEnd(rows-1, cols-1)

	s.Lock()
	s.generator.Generate(grid)
	s.Unlock()

	m := maze.New(grid)
	s.logger.Info(fmt.Sprintf("Generated maze %s: %dx%d, %d open passages", m.ID, rows, cols, grid.OpenPassages()))

	return m, nil
}
