// Package grid converts between linear focus indices and row/column
// coordinates for a collection laid out in a fixed number of columns.
package grid

// Geometry describes a collection laid out row-major.
type Geometry struct {
	Columns int
	Total   int
}

// ToRowCol returns the row and column of index.
func ToRowCol(index, columns int) (row, col int) {
	columns = normalizeColumns(columns)
	return index / columns, index % columns
}

// ToIndex returns the linear index for (row, col), clamped to
// [0, max(0, total-1)]. Moves off an edge land on the nearest valid index
// rather than wrapping.
func ToIndex(row, col, columns, total int) int {
	columns = normalizeColumns(columns)
	return Clamp(row*columns+col, 0, Last(total))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Last returns the highest valid index for a collection of total items.
// Empty collections still have index 0.
func Last(total int) int {
	if total < 1 {
		return 0
	}
	return total - 1
}

// Direction is a single-step move in the grid.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Rows returns the number of rows the collection occupies, at least 1.
func (g Geometry) Rows() int {
	columns := normalizeColumns(g.Columns)
	if g.Total <= columns {
		return 1
	}
	return (g.Total + columns - 1) / columns
}

// Move returns the index reached from index by one step in dir. Row and
// column are each held inside the grid before mapping back, so a step off
// any edge leaves focus where it was; a step into a short last row lands on
// its final item.
func (g Geometry) Move(index int, dir Direction) int {
	columns := normalizeColumns(g.Columns)
	row, col := ToRowCol(Clamp(index, 0, Last(g.Total)), columns)
	switch dir {
	case Up:
		row--
	case Down:
		row++
	case Left:
		col--
	case Right:
		col++
	}
	row = Clamp(row, 0, g.Rows()-1)
	col = Clamp(col, 0, columns-1)
	return ToIndex(row, col, columns, g.Total)
}

func normalizeColumns(columns int) int {
	if columns < 1 {
		return 1
	}
	return columns
}
