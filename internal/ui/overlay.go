//go:build ebiten

package ui

import (
	"strconv"

	"lifeca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minLabelCell is the smallest cell edge, in pixels, that fits a count label.
const minLabelCell = 14

// Overlay prints each cell's live neighbor count over the board. H toggles it.
type Overlay struct {
	view     core.View
	cellSize float64
	show     bool
}

// NewOverlay constructs a hidden overlay for view.
func NewOverlay(view core.View, cellSize float64) *Overlay {
	return &Overlay{view: view, cellSize: cellSize}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.show }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw renders the counts onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.cellSize < minLabelCell {
		return
	}
	size := o.view.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			n := core.CountNeighbors(o.view, x, y)
			if n == 0 {
				continue
			}
			px := int(float64(x)*o.cellSize) + 2
			py := int(float64(y)*o.cellSize) + 1
			ebitenutil.DebugPrintAt(screen, strconv.Itoa(n), px, py)
		}
	}
}
