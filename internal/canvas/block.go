package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"
)

// eighths is a rectangle within a cell, in eighths of the cell size.
type eighths struct{ x0, y0, x1, y1 int }

var (
	upperLeft  = eighths{0, 0, 4, 4}
	upperRight = eighths{4, 0, 8, 4}
	lowerLeft  = eighths{0, 4, 4, 8}
	lowerRight = eighths{4, 4, 8, 8}
	fullCell   = eighths{0, 0, 8, 8}
)

// blocks maps the Block Elements range to the parts of the cell it covers.
var blocks = map[rune][]eighths{
	'▀': {{0, 0, 8, 4}},
	'▁': {{0, 7, 8, 8}},
	'▂': {{0, 6, 8, 8}},
	'▃': {{0, 5, 8, 8}},
	'▄': {{0, 4, 8, 8}},
	'▅': {{0, 3, 8, 8}},
	'▆': {{0, 2, 8, 8}},
	'▇': {{0, 1, 8, 8}},
	'█': {fullCell},
	'▉': {{0, 0, 7, 8}},
	'▊': {{0, 0, 6, 8}},
	'▋': {{0, 0, 5, 8}},
	'▌': {{0, 0, 4, 8}},
	'▍': {{0, 0, 3, 8}},
	'▎': {{0, 0, 2, 8}},
	'▏': {{0, 0, 1, 8}},
	'▐': {{4, 0, 8, 8}},
	'▔': {{0, 0, 8, 1}},
	'▕': {{7, 0, 8, 8}},
	'▖': {lowerLeft},
	'▗': {lowerRight},
	'▘': {upperLeft},
	'▙': {upperLeft, lowerLeft, lowerRight},
	'▚': {upperLeft, lowerRight},
	'▛': {upperLeft, upperRight, lowerLeft},
	'▜': {upperLeft, upperRight, lowerRight},
	'▝': {upperRight},
	'▞': {upperRight, lowerLeft},
	'▟': {upperRight, lowerLeft, lowerRight},
}

// Shade characters fill the whole cell with a flat gray of matching density.
var shades = map[rune]uint8{
	'░': 0xbf,
	'▒': 0x80,
	'▓': 0x40,
}

// fillBlock paints cell at origin when it is a single block element and
// reports whether it did.
func fillBlock(dst *image.RGBA, origin image.Point, cell string) bool {
	r, size := utf8.DecodeRuneInString(cell)
	if size != len(cell) {
		return false
	}
	if g, ok := shades[r]; ok {
		fill(dst, origin, fullCell, color.Gray{Y: g})
		return true
	}
	parts, ok := blocks[r]
	if !ok {
		return false
	}
	for _, p := range parts {
		fill(dst, origin, p, color.Black)
	}
	return true
}

func fill(dst *image.RGBA, origin image.Point, e eighths, c color.Color) {
	rect := image.Rect(
		e.x0*CellWidth/8, e.y0*CellHeight/8,
		e.x1*CellWidth/8, e.y1*CellHeight/8,
	).Add(origin)
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}
