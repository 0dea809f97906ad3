package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/missionsim/internal/game"
	"github.com/spacehole-rogue/missionsim/internal/world"
	"gonum.org/v1/gonum/spatial/r2"
)

const cursorSize = 24

// Viewport maps world coordinates onto screen pixels.
type Viewport struct {
	OffsetX, OffsetY float64
}

// ToScreen converts a world position to screen pixels.
func (v Viewport) ToScreen(p r2.Vec) (float64, float64) {
	return p.X + v.OffsetX, p.Y + v.OffsetY
}

// ToWorld converts a screen pixel to world coordinates.
func (v Viewport) ToWorld(x, y int) (float64, float64) {
	return float64(x) - v.OffsetX, float64(y) - v.OffsetY
}

// BodyGlyph returns the sprite glyph for a body variant.
func BodyGlyph(k world.BodyKind) byte {
	switch k {
	case world.KindStar:
		return GlyphSun
	case world.KindBlackHole:
		return GlyphRing
	default:
		return GlyphDisc
	}
}

// DrawScene paints orbit paths, ship routes, bodies and ships. The selected
// body or ship is highlighted.
func DrawScene(screen *ebiten.Image, r *GridRenderer, sim *game.Sim, view Viewport, selected ecs.Entity) {
	drawOrbits(screen, sim, view)
	drawRoutes(screen, sim, view)

	for _, e := range sim.Bodies() {
		b := sim.Body(e)
		if b == nil {
			continue
		}
		fg := b.Color
		if e == selected {
			fg = ColorSelected
		}
		x, y := view.ToScreen(b.Pos)
		r.DrawSprite(screen, BodyGlyph(b.Kind), fg, x, y, b.DisplaySize)
	}

	for _, e := range sim.Ships() {
		sh := sim.Ship(e)
		if sh == nil {
			continue
		}
		fg := sh.Color
		if e == selected {
			fg = ColorSelected
		}
		x, y := view.ToScreen(sh.Pos)
		r.DrawSprite(screen, GlyphShip, fg, x, y, sh.DisplaySize)
	}

	if sim.PlacingBlackHole {
		cx, cy := ebiten.CursorPosition()
		r.DrawSprite(screen, GlyphCursor, ColorLightRed, float64(cx)-cursorSize/2, float64(cy)-cursorSize/2, cursorSize)
	}
}

func drawOrbits(screen *ebiten.Image, sim *game.Sim, view Viewport) {
	for _, e := range sim.Bodies() {
		b := sim.Body(e)
		if b == nil || b.Static() || b.Kind == world.KindBlackHole {
			continue
		}
		anchor := sim.Center()
		if p := sim.Body(b.Parent); p != nil {
			anchor = p.Pos
		}
		cx, cy := view.ToScreen(anchor)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(b.OrbitRadius), 1, Palette[ColorOrbit], true)
	}
}

func drawRoutes(screen *ebiten.Image, sim *game.Sim, view Viewport) {
	for _, e := range sim.Ships() {
		sh := sim.Ship(e)
		if sh == nil {
			continue
		}
		t := sim.Body(sh.Target)
		if t == nil {
			continue
		}
		x0, y0 := view.ToScreen(sh.Center())
		x1, y1 := view.ToScreen(t.Center())
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, Palette[ColorRoute], true)
	}
}
