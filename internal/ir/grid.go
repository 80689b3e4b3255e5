package ir

import "sort"

// Triple is one decoded cell of the message: Char is drawn at (X, Y), where
// Y grows upward.
type Triple struct {
	X    int    `json:"x"`
	Char string `json:"char"`
	Y    int    `json:"y"`
}

// MaxCoordinate is the largest x or y a triple may use. It keeps the canvas
// at no more than (MaxCoordinate+1)^2 cells.
const MaxCoordinate = 1023

// Bounds holds the largest X and Y seen across all triples.
type Bounds struct {
	XMax int `json:"x_max"`
	YMax int `json:"y_max"`
}

// Width is the number of canvas columns.
func (b Bounds) Width() int { return b.XMax + 1 }

// Height is the number of canvas rows.
func (b Bounds) Height() int { return b.YMax + 1 }

// Grid is the intermediate representation passed between the grid builder
// and the renderer. Bounds is nil when the document had no data rows.
type Grid struct {
	Triples []Triple `json:"triples"`
	Bounds  *Bounds  `json:"bounds,omitempty"`
}

// Add appends t and widens the bounds to include it.
func (g *Grid) Add(t Triple) {
	g.Triples = append(g.Triples, t)
	if g.Bounds == nil {
		g.Bounds = &Bounds{XMax: t.X, YMax: t.Y}
		return
	}
	g.Bounds.XMax = max(g.Bounds.XMax, t.X)
	g.Bounds.YMax = max(g.Bounds.YMax, t.Y)
}

// Empty reports whether the grid has nothing to render.
func (g *Grid) Empty() bool {
	return g == nil || g.Bounds == nil
}

// Duplicates counts triples that land on a coordinate an earlier triple
// already used.
func (g *Grid) Duplicates() int {
	seen := make(map[[2]int]bool, len(g.Triples))
	n := 0
	for _, t := range g.Triples {
		k := [2]int{t.X, t.Y}
		if seen[k] {
			n++
		}
		seen[k] = true
	}
	return n
}

// Chars returns the distinct characters used, sorted.
func (g *Grid) Chars() []string {
	set := make(map[string]bool)
	for _, t := range g.Triples {
		set[t.Char] = true
	}
	chars := make([]string, 0, len(set))
	for c := range set {
		chars = append(chars, c)
	}
	sort.Strings(chars)
	return chars
}
