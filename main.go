package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/beka-birhanu/genmaze/config"
	logger "github.com/beka-birhanu/genmaze/infrastruture/log"
	"github.com/beka-birhanu/genmaze/maze"
	"github.com/beka-birhanu/genmaze/service"
)

// usage prints the command line synopsis.
func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: genmaze numRows numCols")
	fmt.Fprintln(w, "       numRows is the number of rows in the maze")
	fmt.Fprintln(w, "       numCols is the number of columns in the maze")
}

// newRandSource seeds the process random source exactly once.
func newRandSource(seed int64) maze.RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// run generates a maze from the command line arguments (without the program
// name) and prints it to stdout. It returns the process exit status.
func run(args []string, src maze.RandSource, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		usage(stderr)
		return 1
	}

	numRows, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "numRows must be an integer: %q\n", args[0])
		usage(stderr)
		return 1
	}
	numCols, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(stderr, "numCols must be an integer: %q\n", args[1])
		usage(stderr)
		return 1
	}

	appLogger, err := logger.New("GENMAZE", config.ColorGreen, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "creating logger: %v\n", err)
		return 1
	}

	mazeService, err := service.NewMazeService(src, appLogger, config.Envs.MaxMazeDimension)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		return 1
	}

	m, err := mazeService.Generate(numRows, numCols)
	if err != nil {
		fmt.Fprintln(stderr, err)
		usage(stderr)
		return 1
	}

	if err := m.Grid.Print(stdout); err != nil {
		appLogger.Error(fmt.Sprintf("Printing maze: %v", err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], newRandSource(config.Envs.MazeSeed), os.Stdout, os.Stderr))
}
