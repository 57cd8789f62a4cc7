package game

import (
	"math"

	"github.com/mkral/mazecaster/model"
)

const (
	MoveSpeed = 0.05 // map units per tick
	RotSpeed  = 0.04 // radians per tick
)

// Input is the key state sampled once per tick.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Quit     bool
}

// Camera holds the player pose: a sub-cell position, a facing vector and the
// view plane perpendicular to it. Dir and plane always rotate together so
// their magnitudes and the field of view stay fixed.
type Camera struct {
	PosX, PosY     float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
}

// NewCamera returns the start pose: cell (1,1), facing east, 0.66 plane.
func NewCamera() Camera {
	return Camera{
		PosX: 1.5, PosY: 1.5,
		DirX: 1, DirY: 0,
		PlaneX: 0, PlaneY: 0.66,
	}
}

// Update applies one tick of movement and rotation against the maze and
// returns the new pose. It is a pure function of its arguments.
//
// Translation is axis-separated: the X step is applied only if the target
// column is a corridor, then the Y step is checked against the already
// updated X. Blocking one axis but not the other lets the player slide along
// walls instead of stopping dead.
func Update(cam Camera, g *model.Grid, in Input) Camera {
	if in.Forward {
		cam = translate(cam, g, MoveSpeed)
	}
	if in.Backward {
		cam = translate(cam, g, -MoveSpeed)
	}
	if in.Left {
		cam = rotate(cam, RotSpeed)
	}
	if in.Right {
		cam = rotate(cam, -RotSpeed)
	}
	return cam
}

func translate(cam Camera, g *model.Grid, speed float64) Camera {
	newX := cam.PosX + cam.DirX*speed
	newY := cam.PosY + cam.DirY*speed
	if g.IsEmpty(int(newX), int(cam.PosY)) {
		cam.PosX = newX
	}
	if g.IsEmpty(int(cam.PosX), int(newY)) {
		cam.PosY = newY
	}
	return cam
}

// rotate applies the same exact 2D rotation to dir and plane, preserving
// both magnitudes and their perpendicularity.
func rotate(cam Camera, angle float64) Camera {
	sin, cos := math.Sin(angle), math.Cos(angle)
	oldDirX := cam.DirX
	cam.DirX = cam.DirX*cos - cam.DirY*sin
	cam.DirY = oldDirX*sin + cam.DirY*cos
	oldPlaneX := cam.PlaneX
	cam.PlaneX = cam.PlaneX*cos - cam.PlaneY*sin
	cam.PlaneY = oldPlaneX*sin + cam.PlaneY*cos
	return cam
}
