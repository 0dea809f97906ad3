package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// Sprite glyphs live in the control range below ASCII space.
const (
	GlyphDisc     byte = 1 // filled circle, planets and moons
	GlyphSun      byte = 2 // disc with rays
	GlyphRing     byte = 3 // hollow circle, black hole
	GlyphShip     byte = 4 // arrowhead
	GlyphBarFull  byte = 6 // full block for progress bars
	GlyphBarShade byte = 7 // light shade for the empty part of a bar
	GlyphCursor   byte = 8 // crosshair used while placing a black hole
	GlyphRule     byte = 9 // horizontal rule for panel separators
)

const (
	firstASCII = 32
	lastASCII  = 126
)

// FontAtlas holds the glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas builds the atlas at startup. ASCII is rendered with
// basicfont.Face7x13; sprite glyphs are drawn by hand.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx := (code % AtlasCols) * GlyphWidth
		cy := (code / AtlasCols) * GlyphHeight

		if code >= firstASCII && code <= lastASCII {
			drawFontGlyph(img, face, cx, cy, rune(code))
			continue
		}
		drawSpriteGlyph(img, cx, cy, byte(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x := (code % AtlasCols) * GlyphWidth
		y := (code / AtlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a glyph code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph renders one ASCII character, 7x13 centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// drawSpriteGlyph draws the non-ASCII glyphs. Unknown codes stay blank.
func drawSpriteGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}
	set := func(x, y int) { img.SetNRGBA(cellX+x, cellY+y, w) }

	// distance checks are done on doubled coordinates so the center sits
	// between pixels 7 and 8
	d2 := func(x, y int) int {
		dx, dy := 2*x-15, 2*y-15
		return dx*dx + dy*dy
	}

	switch code {
	case GlyphDisc:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if d2(x, y) <= 15*15 {
					set(x, y)
				}
			}
		}
	case GlyphSun:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if d2(x, y) <= 9*9 {
					set(x, y)
				}
			}
		}
		for i := 0; i < GlyphWidth; i += 2 {
			set(i, 7)
			set(7, i)
			set(i, i)
			set(i, GlyphHeight-1-i)
		}
	case GlyphRing:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if d := d2(x, y); d <= 15*15 && d >= 10*10 {
					set(x, y)
				}
			}
		}
	case GlyphShip:
		for y := 2; y < 14; y++ {
			half := (14 - y) / 2
			for x := 7 - half; x <= 8+half; x++ {
				set(x, y)
			}
		}
	case GlyphBarFull:
		for y := 2; y < 14; y++ {
			for x := 0; x < GlyphWidth; x++ {
				set(x, y)
			}
		}
	case GlyphBarShade:
		for y := 2; y < 14; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if (x+y)%4 == 0 {
					set(x, y)
				}
			}
		}
	case GlyphCursor:
		for i := 0; i < GlyphWidth; i++ {
			if i < 6 || i > 9 {
				set(i, 7)
				set(7, i)
			}
		}
	case GlyphRule:
		for x := 0; x < GlyphWidth; x++ {
			set(x, 7)
			set(x, 8)
		}
	}
}
