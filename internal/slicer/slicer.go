// Package slicer cuts a sprite sheet into a fixed grid of cells and
// writes each cell out as its own image file.
package slicer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	// webp sheets decode through image.Decode once registered.
	_ "golang.org/x/image/webp"
)

// Defaults for output naming, matching the original asset convention.
const (
	DefaultPrefix = "hero"
	DefaultFormat = "png"
)

// Options control naming and encoding of the written sprites.
type Options struct {
	Prefix string // file name prefix, DefaultPrefix if empty
	Format string // output extension, DefaultFormat if empty
	Colors int    // >0: quantize sprites to a shared palette of this many colors
}

func (o Options) prefix() string {
	if o.Prefix == "" {
		return DefaultPrefix
	}
	return o.Prefix
}

func (o Options) format() string {
	if o.Format == "" {
		return DefaultFormat
	}
	return o.Format
}

// Slice cuts the sheet at sourcePath into grid cells and writes one
// image per cell into outDir, creating it (and any missing parents) if
// absent. Returned paths are in row-major order, columns varying
// fastest. Existing files at computed paths are overwritten.
func Slice(sourcePath, outDir string, grid Grid, opts Options) ([]string, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	ext := opts.format()
	if opts.Colors > 0 && ext != "png" {
		return nil, fmt.Errorf("palette quantization requires png output, got %q", ext)
	}

	sheet, err := imaging.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", sourcePath, err)
	}

	b := sheet.Bounds()
	cw, ch := grid.CellSize(b.Dx(), b.Dy())
	if cw == 0 || ch == 0 {
		return nil, fmt.Errorf("%s: %dx%d sheet is too small for a %dx%d grid",
			sourcePath, b.Dx(), b.Dy(), grid.Rows, grid.Cols)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", outDir, err)
	}

	pal := palette(sheet, opts.Colors)

	paths := make([]string, 0, grid.Rows*grid.Cols)
	for _, cell := range grid.Cells(b) {
		sprite := imaging.Crop(sheet, cell.Rect)
		name := fmt.Sprintf("%s_row%d_col%d.%s", opts.prefix(), cell.Row+1, cell.Col+1, ext)
		outPath := filepath.Join(outDir, name)

		if pal != nil {
			err = writePaletted(outPath, sprite, pal)
		} else {
			err = imaging.Save(sprite, outPath)
		}
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", outPath, err)
		}
		paths = append(paths, outPath)
	}
	return paths, nil
}
