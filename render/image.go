package render

import (
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// SnapshotOptions controls still-image export
type SnapshotOptions struct {
	Scale int      // integer upscale factor, values below 2 keep the canvas size
	HUD   []string // overlay lines drawn top-left
}

// Snapshot converts a canvas into an upscaled image with an optional text overlay
func Snapshot(c *Canvas, opts SnapshotOptions) *image.NRGBA {
	img := c.Image()
	if opts.Scale > 1 {
		dst := image.NewNRGBA(image.Rect(0, 0, c.Width*opts.Scale, c.Height*opts.Scale))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	drawHUD(img, opts.HUD)
	return img
}

func drawHUD(img *image.NRGBA, lines []string) {
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	// Dark band keeps text readable over the sky
	band := image.Rect(0, 0, img.Bounds().Dx(), lineHeight*len(lines)+4)
	draw.Draw(img, band, image.NewUniform(color.NRGBA{A: 160}), image.Point{}, draw.Over)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(4, lineHeight*(i+1))
		d.DrawString(line)
	}
}

// EncodeWebP writes img as lossless WebP
func EncodeWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return errors.Wrap(err, "webp encode")
	}
	return nil
}

// WriteWebP creates path, including parent directories, and encodes img into it
func WriteWebP(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := EncodeWebP(f, img); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
