package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Print writes the grid as ASCII art:
//
//	3 4
//	+---+---+---+---+
//	| S     |       |
//	+---+   +   +   +
//	|   |   |   |   |
//	+   +   +   +   +
//	|           | E |
//	+---+---+---+---+
//
// The first line holds the number of rows and columns. If start and end are
// the same cell it is labelled S.
func (g *Grid) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n", g.numRows, g.numCols)

	// Top boundary
	bw.WriteString("+" + strings.Repeat("---+", g.numCols) + "\n")

	for row := 0; row < g.numRows; row++ {
		// Cell row
		bw.WriteByte('|')
		for col := 0; col < g.numCols; col++ {
			bw.WriteString(g.label(Location{Row: row, Col: col}))

			if g.HasWall(row, col, East) {
				bw.WriteByte('|')
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')

		// Wall row
		bw.WriteByte('+')
		for col := 0; col < g.numCols; col++ {
			if g.HasWall(row, col, South) {
				bw.WriteString("---+")
			} else {
				bw.WriteString("   +")
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// String provides a textual representation of the grid, identical to Print.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Print(&sb)
	return sb.String()
}

func (g *Grid) label(loc Location) string {
	switch loc {
	case g.start:
		return " S "
	case g.end:
		return " E "
	default:
		return "   "
	}
}
