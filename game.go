package main

import (
	"errors"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/mkral/mazecaster/game"
	"github.com/mkral/mazecaster/maze"
	"github.com/mkral/mazecaster/model"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	MazeWidth    = 21
	MazeHeight   = 21
)

// errQuit signals a clean exit out of ebiten.Run.
var errQuit = errors.New("quit")

type App struct {
	grid  *model.Grid
	cam   game.Camera
	fb    *frameBuffer
	frame *ebiten.Image
	fade  *fader
}

func newApp(grid *model.Grid) (*App, error) {
	frame, err := ebiten.NewImage(ScreenWidth, ScreenHeight, ebiten.FilterNearest)
	if err != nil {
		return nil, err
	}
	fade, err := newFader(ScreenWidth, ScreenHeight)
	if err != nil {
		return nil, err
	}
	return &App{
		grid:  grid,
		cam:   game.NewCamera(),
		fb:    newFrameBuffer(ScreenWidth, ScreenHeight),
		frame: frame,
		fade:  fade,
	}, nil
}

func pollInput() game.Input {
	return game.Input{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		Quit:     ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
}

func (a *App) update(screen *ebiten.Image) error {
	in := pollInput()
	if in.Quit {
		return errQuit
	}
	a.cam = game.Update(a.cam, a.grid, in)
	a.fade.Update()

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	game.Render(a.grid, a.cam, ScreenWidth, ScreenHeight, a.fb)
	if err := a.frame.ReplacePixels(a.fb.pix); err != nil {
		return err
	}
	if err := screen.DrawImage(a.frame, &ebiten.DrawImageOptions{}); err != nil {
		return err
	}
	return a.fade.Draw(screen)
}

func main() {
	// .env is optional, for dev overrides only
	_ = godotenv.Load()

	seed := time.Now().UnixNano()
	if s := os.Getenv("MAZECASTER_SEED"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			log.Fatalf("bad MAZECASTER_SEED %q: %v", s, err)
		}
		seed = v
	}
	scale := 1.0
	if s := os.Getenv("MAZECASTER_SCALE"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			log.Fatalf("bad MAZECASTER_SCALE %q: %v", s, err)
		}
		scale = v
	}

	log.Infof("generating %dx%d maze, seed %d", MazeWidth, MazeHeight, seed)
	rng := rand.New(rand.NewSource(seed))
	grid, err := maze.Generate(MazeWidth, MazeHeight, rng)
	if err != nil {
		log.Fatalf("maze generation: %v", err)
	}

	app, err := newApp(grid)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.Run(app.update, ScreenWidth, ScreenHeight, scale, "Mazecaster"); err != nil && err != errQuit {
		log.Fatal(err)
	}
}
