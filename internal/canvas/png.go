package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Pixel size of one canvas cell. Go Mono at 10pt/96dpi advances exactly
// CellWidth pixels per glyph.
const (
	CellWidth  = 8
	CellHeight = 16
)

var monoFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gomono.TTF)
})

func newFace() (font.Face, error) {
	f, err := monoFont()
	if err != nil {
		return nil, fmt.Errorf("parsing Go Mono: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    10,
		DPI:     96,
		Hinting: font.HintingFull,
	})
}

// Image draws the canvas in black on white, each cell magnified scale
// times. Block elements (U+2580–U+259F) fill their cell geometrically so
// adjacent cells join up; every other character is drawn with Go Mono.
func (c *Canvas) Image(scale int) (*image.RGBA, error) {
	if scale < 1 {
		scale = 1
	}
	face, err := newFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	w, h := c.Cols()*CellWidth, c.Rows()*CellHeight
	base := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(base, base.Bounds(), image.White, image.Point{}, draw.Src)

	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{Dst: base, Src: image.NewUniform(color.Black), Face: face}
	for row := 0; row < c.Rows(); row++ {
		for col := 0; col < c.Cols(); col++ {
			cell := c.At(row, col)
			if cell == Blank {
				continue
			}
			origin := image.Pt(col*CellWidth, row*CellHeight)
			if fillBlock(base, origin, cell) {
				continue
			}
			d.Dot = fixed.P(origin.X, origin.Y+ascent)
			d.DrawString(cell)
		}
	}

	if scale == 1 {
		return base, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		for x := 0; x < w*scale; x++ {
			out.SetRGBA(x, y, base.RGBAAt(x/scale, y/scale))
		}
	}
	return out, nil
}

// WritePNG encodes c.Image(scale) as PNG.
func (c *Canvas) WritePNG(w io.Writer, scale int) error {
	if c.Rows() == 0 {
		return fmt.Errorf("nothing to draw: canvas is empty")
	}
	img, err := c.Image(scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
