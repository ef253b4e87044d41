package pacman

import "github.com/vovakirdan/arcade-portal/internal/core"

// CellKind tags what occupies a maze cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellFood
)

// FoodKind distinguishes regular pellets from power pellets.
type FoodKind uint8

const (
	FoodNormal FoodKind = iota
	FoodPower
)

func (k FoodKind) String() string {
	if k == FoodPower {
		return "power"
	}
	return "normal"
}

// Cell is a tagged variant: Food is meaningful only when Kind is CellFood.
type Cell struct {
	Kind CellKind
	Food FoodKind
}

// DefaultLayout is the hand-authored maze. '#' is a wall, '.' a pellet,
// 'o' a power pellet; everything else is open floor. Row 7 wraps.
var DefaultLayout = []string{
	"###################",
	"#........#........#",
	"#o##.###.#.###.##o#",
	"#.................#",
	"#.##.#.#####.#.##.#",
	"#....#...#...#....#",
	"####.### # ###.####",
	"   #.#   0   #.#   ",
	"####.# ##### #.####",
	"#....#...#...#....#",
	"#.##.#.#####.#.##.#",
	"#.................#",
	"#o##.###.#.###.##o#",
	"#........#........#",
	"###################",
}

// Grid is the maze. FoodLeft counts the pellets not yet eaten.
type Grid struct {
	Width    int
	Height   int
	FoodLeft int
	cells    [][]Cell
}

// NewGrid parses a layout. Short rows are padded with open floor.
func NewGrid(layout []string) *Grid {
	g := &Grid{Height: len(layout)}
	for _, row := range layout {
		g.Width = max(g.Width, len(row))
	}

	g.cells = make([][]Cell, g.Height)
	for y, row := range layout {
		g.cells[y] = make([]Cell, g.Width)
		for x, ch := range row {
			switch ch {
			case '#':
				g.cells[y][x] = Cell{Kind: CellWall}
			case '.':
				g.cells[y][x] = Cell{Kind: CellFood, Food: FoodNormal}
				g.FoodLeft++
			case 'o':
				g.cells[y][x] = Cell{Kind: CellFood, Food: FoodPower}
				g.FoodLeft++
			}
		}
	}
	return g
}

// At returns the cell at (x, y). ok is false outside the grid.
func (g *Grid) At(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return Cell{}, false
	}
	return g.cells[y][x], true
}

// IsWall reports whether (x, y) is a wall. Positions outside the grid are
// open so actors can leave through the wrap corridor.
func (g *Grid) IsWall(x, y int) bool {
	c, ok := g.At(x, y)
	return ok && c.Kind == CellWall
}

// Consume eats the pellet at pt, if any, and decrements FoodLeft.
func (g *Grid) Consume(pt core.Point) (FoodKind, bool) {
	c, ok := g.At(pt.X, pt.Y)
	if !ok || c.Kind != CellFood {
		return 0, false
	}
	g.cells[pt.Y][pt.X] = Cell{Kind: CellEmpty}
	g.FoodLeft--
	return c.Food, true
}

// Rows renders the grid back to layout characters.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	for y := 0; y < g.Height; y++ {
		b := make([]byte, g.Width)
		for x := 0; x < g.Width; x++ {
			switch c := g.cells[y][x]; {
			case c.Kind == CellWall:
				b[x] = '#'
			case c.Kind == CellFood && c.Food == FoodPower:
				b[x] = 'o'
			case c.Kind == CellFood:
				b[x] = '.'
			default:
				b[x] = ' '
			}
		}
		rows[y] = string(b)
	}
	return rows
}
