// Package render turns a committed board into pixels or text. The ebiten
// painter is only built with the ebiten tag; everything here is headless.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"lifeca/internal/core"
)

// ErrBadColor is returned by ParseHexColor for malformed input.
var ErrBadColor = errors.New("bad color")

// Palette holds the colors used to draw a board.
type Palette struct {
	Alive     color.Color
	Dead      color.Color
	Line      color.Color
	GridLines bool
}

// DefaultPalette draws green alive cells on black with red grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive:     color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
		Dead:      color.RGBA{A: 0xff},
		Line:      color.RGBA{R: 0xff, A: 0xff},
		GridLines: true,
	}
}

// ParseHexColor parses "#rrggbb", "#rrggbbaa" or the same without '#'.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// fillBinaryRGBA converts the committed cells of v into RGBA pixels in buf,
// one pixel per cell.
func fillBinaryRGBA(buf []byte, v core.View, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	size := v.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			if v.Alive(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// WriteText prints v one row per line using alive and dead runes.
func WriteText(w io.Writer, v core.View, alive, dead rune) error {
	size := v.Size()
	var b strings.Builder
	b.Grow((size.W + 1) * size.H)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if v.Alive(x, y) {
				b.WriteRune(alive)
			} else {
				b.WriteRune(dead)
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
