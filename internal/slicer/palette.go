package slicer

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/ericpauley/go-quantize/quantize"
)

// palette quantizes the whole sheet so every sprite cut from it shares
// one palette, with a transparent entry at index 0. Returns nil when
// colors is 0 (no quantization requested).
func palette(sheet image.Image, colors int) color.Palette {
	if colors <= 0 {
		return nil
	}
	if colors < 2 {
		colors = 2
	}
	if colors > 256 {
		colors = 256
	}

	q := quantize.MedianCutQuantizer{}
	raw := q.Quantize(make([]color.Color, 0, colors), sheet)

	pal := color.Palette{color.RGBA{0, 0, 0, 0}}
	for _, c := range raw {
		if len(pal) >= colors {
			break
		}
		pal = append(pal, c)
	}
	return pal
}

// writePaletted maps the sprite onto pal and writes it as a paletted PNG.
func writePaletted(path string, sprite image.Image, pal color.Palette) error {
	dst := image.NewPaletted(sprite.Bounds(), pal)
	draw.FloydSteinberg.Draw(dst, sprite.Bounds(), sprite, sprite.Bounds().Min)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}
