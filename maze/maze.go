// Package maze generates perfect mazes by randomized recursive backtracking
// over an odd-dimensioned grid.
package maze

import (
	"fmt"
	"math/rand"

	"github.com/mkral/mazecaster/model"
)

// wallSeed marks uncarved cells during generation; the paint pass replaces it
// with a random palette index.
const wallSeed model.Cell = 1

var directions = [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// Generate carves a perfect maze into a width x height grid. Both dimensions
// must be odd and at least 3. The corridors form a spanning tree over the
// odd-coordinate junction lattice; every wall cell ends up with a random
// color index from rng.
func Generate(width, height int, rng *rand.Rand) (*model.Grid, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("maze dimensions %dx%d too small, need at least 3x3", width, height)
	}
	if width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("maze dimensions %dx%d must be odd", width, height)
	}

	g := model.NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set(x, y, wallSeed)
		}
	}

	g.Set(1, 1, model.Empty)
	stack := [][2]int{{1, 1}}
	for len(stack) > 0 {
		x, y := stack[len(stack)-1][0], stack[len(stack)-1][1]

		candidates := make([][2]int, 0, 4)
		for _, d := range directions {
			nx, ny := x+d[0], y+d[1]
			if 0 < nx && nx < width-1 && 0 < ny && ny < height-1 && g.At(nx, ny) != model.Empty {
				candidates = append(candidates, [2]int{nx, ny})
			}
		}

		if len(candidates) > 0 {
			next := candidates[rng.Intn(len(candidates))]
			nx, ny := next[0], next[1]
			g.Set(nx, ny, model.Empty)
			// knock down the wall between the two junctions
			g.Set(x+(nx-x)/2, y+(ny-y)/2, model.Empty)
			stack = append(stack, next)
		} else {
			stack = stack[:len(stack)-1]
		}
	}

	paint(g, rng)
	return g, nil
}

// paint assigns every remaining wall cell a random palette index. Corridors
// are never touched.
func paint(g *model.Grid, rng *rand.Rand) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) != model.Empty {
				g.Set(x, y, model.Cell(1+rng.Intn(model.PaletteSize)))
			}
		}
	}
}
