package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const fadeSeconds = 1.5

// fader tweens a black overlay from opaque to clear on startup.
type fader struct {
	tween   *gween.Tween
	overlay *ebiten.Image
	alpha   float64
	done    bool
}

func newFader(width, height int) (*fader, error) {
	overlay, err := ebiten.NewImage(width, height, ebiten.FilterNearest)
	if err != nil {
		return nil, err
	}
	if err := overlay.Fill(color.Black); err != nil {
		return nil, err
	}
	return &fader{
		tween:   gween.New(1, 0, fadeSeconds, ease.Linear),
		overlay: overlay,
		alpha:   1,
	}, nil
}

func (f *fader) Update() {
	if f.done {
		return
	}
	a, finished := f.tween.Update(1.0 / 60)
	f.alpha = float64(a)
	if finished {
		f.done = true
	}
}

func (f *fader) Draw(screen *ebiten.Image) error {
	if f.done {
		return nil
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorM.Scale(1, 1, 1, f.alpha)
	return screen.DrawImage(f.overlay, op)
}
