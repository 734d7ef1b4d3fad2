// Package pieces defines the 21 canonical Blokus shapes and their
// rotated/reflected variants, precomputed into board-coordinate offsets.
package pieces

import (
	"fmt"
	"strings"
)

// BoardWidth is the stride used to convert a (row, col) pair inside a
// variant's bounding box into a single board-coordinate offset.
const BoardWidth = 20

// PieceVariant is one orientation of a Piece: the set of filled-cell
// offsets relative to the top-left corner of its bounding box, addressed
// in row-major board coordinates (row*BoardWidth + col).
type PieceVariant struct {
	Offsets []int // ascending, board-coordinate offsets within the padded footprint
	Width   int   // bounding-box width, used for right-edge overflow checks
	Len     int   // (height-1)*BoardWidth + width, used for end-of-board checks
}

// Piece is one of the 21 Blokus shapes: a stable identity, its point
// value, and the distinct variants obtained from rotating and mirroring it.
type Piece struct {
	ID       int
	Name     string
	Points   int
	Variants []PieceVariant
}

// Catalog holds the 21 canonical pieces in a fixed, stable order. Every
// Game and Board references pieces by index into this slice.
var Catalog = buildCatalog()

type shapeDef struct {
	name  string
	cells [][2]int
	rows  int
	cols  int
}

// shapes lists each piece's canonical orientation as a list of (row, col)
// cells inside its minimal bounding box. Variants are derived mechanically
// by rotating and mirroring these base shapes.
var shapes = []shapeDef{
	{"1", [][2]int{{0, 0}}, 1, 1},
	{"I2", [][2]int{{0, 0}, {0, 1}}, 1, 2},
	{"I3", [][2]int{{0, 0}, {0, 1}, {0, 2}}, 1, 3},
	{"V3", [][2]int{{0, 0}, {1, 0}, {1, 1}}, 2, 2},
	{"I4", [][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, 1, 4},
	{"O4", [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, 2, 2},
	{"T4", [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}}, 2, 3},
	{"L4", [][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}}, 3, 2},
	{"S4", [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}}, 2, 3},
	{"F5", [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}}, 3, 3},
	{"I5", [][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}, 1, 5},
	{"L5", [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}}, 4, 2},
	{"N5", [][2]int{{0, 1}, {1, 1}, {2, 0}, {2, 1}, {3, 0}}, 4, 2},
	{"P5", [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}}, 3, 2},
	{"T5", [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}}, 3, 3},
	{"U5", [][2]int{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, 2, 3},
	{"V5", [][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, 3, 3},
	{"W5", [][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}, 3, 3},
	{"X5", [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}}, 3, 3},
	{"Y5", [][2]int{{0, 1}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}, 4, 2},
	{"Z5", [][2]int{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}}, 3, 3},
}

func buildCatalog() []Piece {
	catalog := make([]Piece, 0, len(shapes))
	for id, s := range shapes {
		grid := toGrid(s.cells, s.rows, s.cols)
		variants := genVariants(grid)
		catalog = append(catalog, Piece{
			ID:       id,
			Name:     s.name,
			Points:   len(s.cells),
			Variants: variants,
		})
	}
	return catalog
}

func toGrid(cells [][2]int, rows, cols int) [][]bool {
	grid := make([][]bool, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
	}
	for _, c := range cells {
		grid[c[0]][c[1]] = true
	}
	return grid
}

// rotate turns a shape 90 degrees clockwise.
func rotate(shape [][]bool) [][]bool {
	rows := len(shape)
	cols := len(shape[0])
	out := make([][]bool, cols)
	for i := 0; i < cols; i++ {
		row := make([]bool, rows)
		for j := 0; j < rows; j++ {
			row[j] = shape[rows-1-j][i]
		}
		out[i] = row
	}
	return out
}

// mirror flips a shape horizontally.
func mirror(shape [][]bool) [][]bool {
	out := make([][]bool, len(shape))
	for i, row := range shape {
		newRow := make([]bool, len(row))
		for j := range row {
			newRow[j] = row[len(row)-1-j]
		}
		out[i] = newRow
	}
	return out
}

// genVariants produces the distinct rotated/reflected orientations of a
// shape: 4 rotations of the shape itself, then 4 rotations of its mirror,
// deduplicated by their padded bitmask.
func genVariants(shape [][]bool) []PieceVariant {
	seen := make(map[string]bool)
	variants := make([]PieceVariant, 0, 8)

	add := func(g [][]bool) {
		v := toVariant(g)
		key := variantKey(v)
		if seen[key] {
			return
		}
		seen[key] = true
		variants = append(variants, v)
	}

	current := shape
	for i := 0; i < 4; i++ {
		add(current)
		current = rotate(current)
	}
	current = mirror(shape)
	for i := 0; i < 4; i++ {
		add(current)
		current = rotate(current)
	}

	return variants
}

func toVariant(grid [][]bool) PieceVariant {
	height := len(grid)
	width := len(grid[0])
	offsets := make([]int, 0, height*width)
	for i, row := range grid {
		for j, filled := range row {
			if filled {
				offsets = append(offsets, i*BoardWidth+j)
			}
		}
	}
	return PieceVariant{
		Offsets: offsets,
		Width:   width,
		Len:     (height-1)*BoardWidth + width,
	}
}

func variantKey(v PieceVariant) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "w%d:", v.Width)
	for _, o := range v.Offsets {
		fmt.Fprintf(&sb, "%d,", o)
	}
	return sb.String()
}
