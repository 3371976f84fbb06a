package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRowCol(t *testing.T) {
	cases := []struct {
		index, columns int
		row, col       int
	}{
		{0, 3, 0, 0},
		{4, 3, 1, 1},
		{5, 3, 1, 2},
		{6, 3, 2, 0},
		{4, 1, 4, 0},
		{4, 0, 4, 0},
		{4, -2, 4, 0},
	}
	for _, tc := range cases {
		row, col := ToRowCol(tc.index, tc.columns)
		assert.Equal(t, tc.row, row, "row for index %d cols %d", tc.index, tc.columns)
		assert.Equal(t, tc.col, col, "col for index %d cols %d", tc.index, tc.columns)
	}
}

func TestToIndexAlwaysInRange(t *testing.T) {
	for columns := 1; columns <= 6; columns++ {
		for total := 0; total <= 20; total++ {
			for row := -3; row <= 10; row++ {
				for col := -3; col <= 10; col++ {
					got := ToIndex(row, col, columns, total)
					require.GreaterOrEqual(t, got, 0)
					require.LessOrEqual(t, got, Last(total))
				}
			}
		}
	}
}

func TestRoundTripIsIdempotentUnderClamp(t *testing.T) {
	for columns := 1; columns <= 6; columns++ {
		for total := 0; total <= 20; total++ {
			for index := 0; index <= total+5; index++ {
				row, col := ToRowCol(index, columns)
				got := ToIndex(row, col, columns, total)
				require.Equal(t, Clamp(index, 0, Last(total)), got,
					"index=%d columns=%d total=%d", index, columns, total)
			}
		}
	}
}

func TestToIndexInvalidColumnsTreatedAsOne(t *testing.T) {
	assert.Equal(t, 2, ToIndex(2, 0, 0, 6))
	assert.Equal(t, 2, ToIndex(2, 0, -4, 6))
	assert.Equal(t, 5, ToIndex(9, 0, 0, 6))
}

func TestToIndexClampsInsteadOfWrapping(t *testing.T) {
	// left from column 0 of row 0
	assert.Equal(t, 0, ToIndex(0, -1, 3, 6))
	// past the last row
	assert.Equal(t, 5, ToIndex(4, 0, 3, 6))
	// empty collection
	assert.Equal(t, 0, ToIndex(2, 2, 3, 0))
}

func TestGeometryMove(t *testing.T) {
	g := Geometry{Columns: 3, Total: 6}

	cases := []struct {
		name string
		from int
		dir  Direction
		want int
	}{
		{"down past last row stays", 4, Down, 4},
		{"down within grid", 1, Down, 4},
		{"up from top row stays", 1, Up, 1},
		{"left from column zero stays", 3, Left, 3},
		{"right from last column stays", 2, Right, 2},
		{"right within row", 3, Right, 4},
		{"none", 4, None, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Move(tc.from, tc.dir))
		})
	}
}

func TestGeometryMoveShortLastRow(t *testing.T) {
	g := Geometry{Columns: 3, Total: 5}
	assert.Equal(t, 4, g.Move(2, Down), "step into short row lands on its last item")
	assert.Equal(t, 4, g.Move(4, Right))
	assert.Equal(t, 1, g.Move(4, Up))
}

func TestGeometryMoveListView(t *testing.T) {
	g := Geometry{Columns: 1, Total: 6}
	assert.Equal(t, 5, g.Move(4, Down))
	assert.Equal(t, 5, g.Move(5, Down))
	assert.Equal(t, 4, g.Move(4, Left))
	assert.Equal(t, 0, g.Move(0, Up))
}

func TestGeometryMoveEmpty(t *testing.T) {
	g := Geometry{Columns: 3, Total: 0}
	for _, dir := range []Direction{Up, Down, Left, Right} {
		assert.Equal(t, 0, g.Move(0, dir), dir.String())
	}
}

func TestRows(t *testing.T) {
	assert.Equal(t, 1, Geometry{Columns: 3, Total: 0}.Rows())
	assert.Equal(t, 1, Geometry{Columns: 3, Total: 3}.Rows())
	assert.Equal(t, 2, Geometry{Columns: 3, Total: 4}.Rows())
	assert.Equal(t, 6, Geometry{Columns: 0, Total: 6}.Rows())
}
