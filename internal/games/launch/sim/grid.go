package sim

import "gonum.org/v1/gonum/spatial/r2"

// Grid stores the tiles of a level by row and column. Cells may be nil.
type Grid struct {
	rows [][]*Tile
}

// NewGrid builds a grid from level tile specs. Nil specs leave empty cells.
func NewGrid(specs [][]*TileSpec, offset r2.Vec) *Grid {
	g := &Grid{rows: make([][]*Tile, len(specs))}
	for y, row := range specs {
		g.rows[y] = make([]*Tile, len(row))
		for x, spec := range row {
			if spec == nil {
				continue
			}
			g.rows[y][x] = NewTile(GridCoord{X: x, Y: y}, spec.Type, spec.Value, offset)
		}
	}
	g.trim(-1)
	return g
}

// At returns the tile at c, or nil.
func (g *Grid) At(c GridCoord) *Tile {
	if c.Y < 0 || c.Y >= len(g.rows) {
		return nil
	}
	row := g.rows[c.Y]
	if c.X < 0 || c.X >= len(row) {
		return nil
	}
	return row[c.X]
}

// Remove deletes t from its cell. It reports false when the cell no
// longer holds t, so a tile can only be removed once.
func (g *Grid) Remove(t *Tile) bool {
	if t == nil || g.At(t.Location) != t {
		return false
	}
	g.rows[t.Location.Y][t.Location.X] = nil
	g.trim(t.Location.Y)
	return true
}

// trim drops trailing empty cells of row y (all rows when y < 0) and
// trailing empty rows.
func (g *Grid) trim(y int) {
	for i := range g.rows {
		if y >= 0 && i != y {
			continue
		}
		row := g.rows[i]
		n := len(row)
		for n > 0 && row[n-1] == nil {
			n--
		}
		g.rows[i] = row[:n]
	}
	n := len(g.rows)
	for n > 0 && len(g.rows[n-1]) == 0 {
		n--
	}
	g.rows = g.rows[:n]
}

// Each calls fn for every tile in row-major order. fn may remove tiles,
// including ones not yet visited; removed tiles are skipped. Removal can
// trim the current row or drop it entirely, so bounds are re-read after
// every call.
func (g *Grid) Each(fn func(*Tile)) {
	for y := 0; y < len(g.rows); y++ {
		for x := 0; y < len(g.rows) && x < len(g.rows[y]); x++ {
			if t := g.rows[y][x]; t != nil {
				fn(t)
			}
		}
	}
}

// Tiles returns the live tiles in row-major order.
func (g *Grid) Tiles() []*Tile {
	var tiles []*Tile
	g.Each(func(t *Tile) {
		tiles = append(tiles, t)
	})
	return tiles
}

// Count returns the number of live tiles.
func (g *Grid) Count() int {
	n := 0
	g.Each(func(*Tile) { n++ })
	return n
}

// Empty reports whether no tile is left.
func (g *Grid) Empty() bool {
	return len(g.rows) == 0
}

// Rows returns the current number of rows after trimming.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// RowLen returns the current length of row y after trimming.
func (g *Grid) RowLen(y int) int {
	if y < 0 || y >= len(g.rows) {
		return 0
	}
	return len(g.rows[y])
}
