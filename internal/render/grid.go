package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // glyph code, see FontAtlas
	FG    uint8 // foreground palette index
	BG    uint8 // background palette index
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// CellBuffer is a 2D grid of character cells. The HUD is written into one
// every frame and drawn over the scene.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes s starting at (x, y), one cell per rune. Runes outside
// printable ASCII become '?'. It returns the number of cells written.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	n := 0
	for _, ch := range s {
		if ch < firstASCII || ch > lastASCII {
			ch = '?'
		}
		b.Set(x+n, y, byte(ch), fg, bg)
		n++
	}
	return n
}

// HLine fills width cells starting at (x, y) with glyph.
func (b *CellBuffer) HLine(x, y, width int, glyph byte, fg uint8) {
	for i := 0; i < width; i++ {
		b.Set(x+i, y, glyph, fg, ColorBlack)
	}
}

// Bar draws a width-cell progress bar for v in [0, 1].
func (b *CellBuffer) Bar(x, y, width int, v float64, fg uint8) {
	filled := int(v*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	b.HLine(x, y, filled, GlyphBarFull, fg)
	b.HLine(x+filled, y, width-filled, GlyphBarShade, ColorDarkGray)
}

// GridRenderer draws cell buffers and free-floating sprites to an
// Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders the buffer. Blank cells on black are skipped so whatever is
// already on screen shows through.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != ColorBlack {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.BG&0x0f])
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.FG&0x0f])
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}

// DrawSprite draws glyph scaled to a size x size square whose top-left
// corner is at (px, py). Bodies and ships are drawn this way so they can sit
// between cells.
func (r *GridRenderer) DrawSprite(screen *ebiten.Image, glyph byte, fg uint8, px, py, size float64) {
	if glyph == ' ' || glyph == 0 || size <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(size/GlyphWidth, size/GlyphHeight)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(Palette[fg&0x0f])
	screen.DrawImage(r.Atlas.Glyph(glyph), &op)
}
