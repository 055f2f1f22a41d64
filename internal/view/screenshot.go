package view

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// saveScreenshot renders the current frame offscreen and writes it as a PNG
// to a location picked in a native save dialog. The dialog blocks the game
// loop, which is fine for a one-shot action. A canceled dialog is not an
// error.
func (v *View) saveScreenshot() error {
	shot := ebiten.NewImage(v.width, v.height)
	v.drawFrame(shot)

	pix := make([]byte, 4*v.width*v.height)
	shot.ReadPixels(pix)

	name := fmt.Sprintf("nnview-%s.png", time.Now().Format("20060102-150405"))
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("choosing save path: %w", err)
	}

	img := &image.RGBA{
		Pix:    pix,
		Stride: 4 * v.width,
		Rect:   image.Rect(0, 0, v.width, v.height),
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	v.log.Info("screenshot saved", "path", path)
	return nil
}
