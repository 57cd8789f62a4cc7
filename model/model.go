package model

// Cell is a single maze square. Empty is a corridor, anything else is a wall
// carrying its palette color index.
type Cell uint8

const Empty Cell = 0

// PaletteSize is the number of wall color indices (1..PaletteSize).
const PaletteSize = 4

func HexColor(u uint32, id int) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b, id}
}

type GameColor struct {
	R  float64
	G  float64
	B  float64
	ID int
}

// Shade scales each channel by f, used for directional wall shading.
func (c GameColor) Shade(f float64) GameColor {
	return GameColor{c.R * f, c.G * f, c.B * f, c.ID}
}

// RGBA returns the 8-bit channels for framebuffer writes.
func (c GameColor) RGBA() (uint8, uint8, uint8) {
	return uint8(c.R * 255), uint8(c.G * 255), uint8(c.B * 255)
}

var COLOR_WHITE = HexColor(0xffffff, 0)
var COLOR_BACKGROUND = HexColor(0x646464, 0)

var COLORS = []GameColor{
	HexColor(0x0000ff, 1),
	HexColor(0xff0000, 2),
	HexColor(0x00ff00, 3),
	HexColor(0xffff00, 4),
}

// PaletteColor maps a wall cell to its color, falling back to white for
// indices outside the palette.
func PaletteColor(c Cell) GameColor {
	i := int(c)
	if i < 1 || i > PaletteSize {
		return COLOR_WHITE
	}
	return COLORS[i-1]
}

// Grid is the maze. Cells are stored row-major; it is mutated only during
// generation and read-only afterwards.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *Grid) At(x, y int) Cell {
	return g.cells[y*g.Width+x]
}

func (g *Grid) Set(x, y int, c Cell) {
	g.cells[y*g.Width+x] = c
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsEmpty reports whether (x,y) is a corridor. Out-of-bounds coordinates are
// treated as solid so collision checks never index past the border.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.InBounds(x, y) && g.At(x, y) == Empty
}
