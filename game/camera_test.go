package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkral/mazecaster/maze"
	"github.com/mkral/mazecaster/model"
)

// boxGrid returns a grid of the given size with solid borders and an empty
// interior.
func boxGrid(w, h int) *model.Grid {
	g := model.NewGrid(w, h)
	for x := 0; x < w; x++ {
		g.Set(x, 0, 1)
		g.Set(x, h-1, 1)
	}
	for y := 0; y < h; y++ {
		g.Set(0, y, 1)
		g.Set(w-1, y, 1)
	}
	return g
}

func TestRotationPreservesVectors(t *testing.T) {
	cam := NewCamera()
	dirLen := math.Hypot(cam.DirX, cam.DirY)
	planeLen := math.Hypot(cam.PlaneX, cam.PlaneY)

	rng := rand.New(rand.NewSource(5))
	g := boxGrid(5, 5)
	for i := 0; i < 1000; i++ {
		in := Input{Left: rng.Intn(2) == 0, Right: rng.Intn(2) == 0}
		cam = Update(cam, g, in)
	}

	require.InDelta(t, dirLen, math.Hypot(cam.DirX, cam.DirY), 1e-9)
	require.InDelta(t, planeLen, math.Hypot(cam.PlaneX, cam.PlaneY), 1e-9)
	dot := cam.DirX*cam.PlaneX + cam.DirY*cam.PlaneY
	require.InDelta(t, 0, dot, 1e-9)
}

func TestForwardBlockedByWall(t *testing.T) {
	g := boxGrid(5, 5)
	cam := Camera{PosX: 1.5, PosY: 1.5, DirX: -1, DirY: 0, PlaneX: 0, PlaneY: 0.66}

	// walking into the west border never crosses into it
	for i := 0; i < 100; i++ {
		cam = Update(cam, g, Input{Forward: true})
	}
	require.True(t, g.IsEmpty(int(cam.PosX), int(cam.PosY)))
	require.True(t, cam.PosX >= 1)
}

func TestDiagonalSlideAlongWall(t *testing.T) {
	g := boxGrid(6, 6)
	// camera against the north border, facing up-right at 45 degrees: the Y
	// step is blocked, the X step slides
	cam := Camera{PosX: 1.5, PosY: 1.02, DirX: math.Sqrt2 / 2, DirY: -math.Sqrt2 / 2, PlaneY: 0.66}
	before := cam
	cam = Update(cam, g, Input{Forward: true})
	require.Greater(t, cam.PosX, before.PosX)
	require.Equal(t, before.PosY, cam.PosY)
}

func TestMovementNeverEntersWall(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	g, err := maze.Generate(21, 21, rng)
	require.NoError(t, err)

	cam := NewCamera()
	for i := 0; i < 5000; i++ {
		in := Input{
			Forward:  rng.Intn(3) > 0,
			Backward: rng.Intn(4) == 0,
			Left:     rng.Intn(3) == 0,
			Right:    rng.Intn(3) == 0,
		}
		cam = Update(cam, g, in)
		require.True(t, g.IsEmpty(int(cam.PosX), int(cam.PosY)),
			"step %d: camera at (%f,%f) inside wall cell", i, cam.PosX, cam.PosY)
	}
}

func TestSeededForwardStep(t *testing.T) {
	g, err := maze.Generate(21, 21, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	cam := NewCamera()
	require.Equal(t, Camera{PosX: 1.5, PosY: 1.5, DirX: 1, DirY: 0, PlaneX: 0, PlaneY: 0.66}, cam)

	moved := Update(cam, g, Input{Forward: true})
	if g.IsEmpty(int(math.Trunc(1.5+MoveSpeed)), 1) {
		require.InDelta(t, 1.55, moved.PosX, 1e-12)
	} else {
		require.Equal(t, cam.PosX, moved.PosX)
	}
	require.Equal(t, cam.PosY, moved.PosY)
}
