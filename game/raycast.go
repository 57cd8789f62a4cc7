package game

import (
	"github.com/mkral/mazecaster/model"
)

// Surface is the display collaborator the renderer draws through. Fill
// paints the whole canvas, VLine draws one vertical run of a single color.
type Surface interface {
	Fill(c model.GameColor)
	VLine(x, y0, y1 int, c model.GameColor)
}

const (
	// infDist stands in for 1/0 on a ray axis with no component; that axis
	// then never wins a DDA comparison.
	infDist = 1e30
	// distEps floors the perpendicular distance before projecting, keeping
	// the line height finite when the camera touches a wall.
	distEps = 1e-4

	sideShade = 0.8
)

type rayHit struct {
	dist        float64 // perpendicular distance, fisheye-corrected
	cell        model.Cell
	side        int // 0 = x-boundary, 1 = y-boundary
	outOfBounds bool
}

// Render casts one ray per screen column and draws the resulting wall slices
// onto s over a neutral background.
func Render(g *model.Grid, cam Camera, width, height int, s Surface) {
	s.Fill(model.COLOR_BACKGROUND)
	for x := 0; x < width; x++ {
		cameraX := 2*float64(x)/float64(width) - 1
		hit := castRay(g, cam, cameraX)

		lineHeight := int(float64(height) / (hit.dist + distEps))
		drawStart := -lineHeight/2 + height/2
		if drawStart < 0 {
			drawStart = 0
		}
		drawEnd := lineHeight/2 + height/2
		if drawEnd > height-1 {
			drawEnd = height - 1
		}

		color := model.COLOR_WHITE
		if !hit.outOfBounds {
			color = model.PaletteColor(hit.cell)
		}
		if hit.side == 1 {
			color = color.Shade(sideShade)
		}
		s.VLine(x, drawStart, drawEnd, color)
	}
}

// castRay walks the DDA from the camera cell along dir + plane*cameraX until
// it strikes a wall or leaves the grid. Leaving the grid is a defined miss,
// not an error.
func castRay(g *model.Grid, cam Camera, cameraX float64) rayHit {
	rayDirX := cam.DirX + cam.PlaneX*cameraX
	rayDirY := cam.DirY + cam.PlaneY*cameraX

	mapX := int(cam.PosX)
	mapY := int(cam.PosY)

	deltaDistX := infDist
	if rayDirX != 0 {
		deltaDistX = abs(1 / rayDirX)
	}
	deltaDistY := infDist
	if rayDirY != 0 {
		deltaDistY = abs(1 / rayDirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if rayDirX < 0 {
		stepX = -1
		sideDistX = (cam.PosX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - cam.PosX) * deltaDistX
	}
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (cam.PosY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - cam.PosY) * deltaDistY
	}

	side := 0
	hit := rayHit{}
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}
		if !g.InBounds(mapX, mapY) {
			hit.outOfBounds = true
			break
		}
		if g.At(mapX, mapY) != model.Empty {
			hit.cell = g.At(mapX, mapY)
			break
		}
	}

	// Project onto the hit axis rather than taking the euclidean length;
	// this is what keeps straight walls straight (no fisheye).
	hit.side = side
	if side == 0 {
		hit.dist = (float64(mapX) - cam.PosX + float64(1-stepX)/2) / rayDirX
	} else {
		hit.dist = (float64(mapY) - cam.PosY + float64(1-stepY)/2) / rayDirY
	}
	return hit
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
