package maze

// RandSource picks a uniformly random integer in [0, n).
// *rand.Rand from math/rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Generator carves a perfect maze with randomized depth-first search.
type Generator struct {
	rand RandSource
}

// NewGenerator creates a Generator drawing its choices from src.
func NewGenerator(src RandSource) *Generator {
	return &Generator{rand: src}
}

// Generate carves passages into g starting from g.Start().
//
// The grid is expected to be freshly cleared with every wall set. When it
// returns every cell is Visited and the open passages form a spanning tree.
// The end cell is never extended from, so it is always a dead end.
func (gen *Generator) Generate(g *Grid) {
	start := g.Start()
	end := g.End()

	path := make([]Location, 0, g.NumRows()*g.NumCols())
	g.SetVisited(start.Row, start.Col)
	path = append(path, start)

	options := make([]Direction, 0, len(Directions))
	for len(path) > 0 {
		current := path[len(path)-1]

		if current == end {
			path = path[:len(path)-1]
			continue
		}

		options = gen.viableDirections(g, current, options[:0])
		if len(options) == 0 {
			path = path[:len(path)-1]
			continue
		}

		dir := options[gen.rand.Intn(len(options))]
		g.ClearWall(current.Row, current.Col, dir)

		next := g.NeighborCell(current.Row, current.Col, dir)
		g.SetVisited(next.Row, next.Col)
		path = append(path, next)
	}
}

// viableDirections appends to dst every direction from cur that leads to an
// unvisited cell inside the grid.
func (gen *Generator) viableDirections(g *Grid, cur Location, dst []Direction) []Direction {
	for _, dir := range Directions {
		if !g.HasNeighbor(cur.Row, cur.Col, dir) {
			continue
		}
		next := g.NeighborCell(cur.Row, cur.Col, dir)
		if !g.IsVisited(next.Row, next.Col) {
			dst = append(dst, dir)
		}
	}
	return dst
}
