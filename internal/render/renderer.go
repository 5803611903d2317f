//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifeca/internal/core"
)

// GridPainter updates a single RGBA image from a board view and draws it
// scaled to the cell size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a board of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the committed cells of v into the painter image, draws it at
// cellSize pixels per cell and overlays grid lines when the palette asks for
// them.
func (gp *GridPainter) Blit(dst *ebiten.Image, v core.View, p Palette, cellSize float64) {
	if v.Size() != (core.Size{W: gp.w, H: gp.h}) {
		return
	}
	fillBinaryRGBA(gp.buf, v, p.Alive, p.Dead)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellSize, cellSize)
	dst.DrawImage(gp.img, op)

	if !p.GridLines || cellSize < 3 {
		return
	}
	width := float32(gp.w) * float32(cellSize)
	height := float32(gp.h) * float32(cellSize)
	for x := 0; x <= gp.w; x++ {
		fx := float32(x) * float32(cellSize)
		vector.StrokeLine(dst, fx, 0, fx, height, 1, p.Line, false)
	}
	for y := 0; y <= gp.h; y++ {
		fy := float32(y) * float32(cellSize)
		vector.StrokeLine(dst, 0, fy, width, fy, 1, p.Line, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
