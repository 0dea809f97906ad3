package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/missionsim/internal/config"
	"github.com/spacehole-rogue/missionsim/internal/game"
	"github.com/spacehole-rogue/missionsim/internal/mission"
	"github.com/spacehole-rogue/missionsim/internal/render"
	"github.com/spacehole-rogue/missionsim/internal/shared/logger"
)

const (
	cellWidth      = 16
	cellHeight     = 16
	ticksPerSecond = 20

	// pick radius around a click, in world units
	pickRadius = 20
)

// viewport puts the world center in the middle of the scene area left of
// the mission panel.
var viewport = render.Viewport{OffsetX: 48, OffsetY: 40}

// Game is the Ebitengine game struct. It owns rendering and input.
// All simulation state lives in sim.
type Game struct {
	cfg      config.Config
	renderer *render.GridRenderer
	buffer   *render.CellBuffer
	sim      *game.Sim
	driver   *game.Driver

	selected        ecs.Entity
	selectedMission int
	exportPath      string
}

func NewGame(cfg config.Config, exportPath string) *Game {
	atlas := render.NewFontAtlas()
	sim := game.NewSim(cfg, logger.Init(cfg.Logging))

	g := &Game{
		cfg:        cfg,
		renderer:   render.NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:     render.NewCellBuffer(cfg.Window.Width/cellWidth, cfg.Window.Height/cellHeight),
		sim:        sim,
		driver:     game.NewDriver(sim, game.RealClock{}, cfg.Simulation.TickInterval),
		exportPath: exportPath,
	}
	g.driver.Start()
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleKeys()
	g.handleMouse()

	g.driver.Step()
	g.clampSelection()
	return nil
}

func (g *Game) handleKeys() {
	s := g.sim
	pressed := inpututil.IsKeyJustPressed

	switch {
	case pressed(ebiten.KeySpace):
		g.driver.Toggle()
	case pressed(ebiten.KeyB):
		s.SetBoost(!s.Boosted())
	case pressed(ebiten.KeyS):
		s.AddStar()
	case pressed(ebiten.KeyP):
		s.AddPlanet()
	case pressed(ebiten.KeyM):
		s.AddMoon(g.selected)
	case pressed(ebiten.KeyN):
		s.AddShip()
	case pressed(ebiten.KeyG):
		s.GenerateMissions(0)
	case pressed(ebiten.KeyH):
		s.BeginPlacingBlackHole()
	case pressed(ebiten.KeyR):
		s.ResetSandbox()
		g.selected = ecs.Entity{}
	case pressed(ebiten.KeyTab):
		if s.Mode == game.ModeSandbox {
			s.SwitchToMissions()
		} else {
			s.SwitchToSandbox()
		}
		g.selected = ecs.Entity{}
	case pressed(ebiten.KeyDelete), pressed(ebiten.KeyBackspace):
		if s.DeleteBody(g.selected) {
			g.selected = ecs.Entity{}
		}
	case pressed(ebiten.KeyUp):
		g.selectedMission--
	case pressed(ebiten.KeyDown):
		g.selectedMission++
	case pressed(ebiten.KeyEnter):
		if m := g.currentMission(); m != nil {
			if err := s.AcceptMission(m); err != nil {
				s.Log.Add(err.Error(), game.MsgWarning)
			}
		}
	case pressed(ebiten.KeyX):
		if m := g.currentMission(); m != nil && !s.ExtractMission(m) {
			s.Log.Add("That mission is not ready to extract.", game.MsgWarning)
		}
	case pressed(ebiten.KeyE):
		g.export()
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if pressed(key) {
			names := game.PresetNames()
			if i < len(names) {
				if err := s.ApplyPreset(names[i]); err != nil {
					s.Log.Add(err.Error(), game.MsgCritical)
				}
				g.selected = ecs.Entity{}
			}
		}
	}
}

func (g *Game) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := viewport.ToWorld(ebiten.CursorPosition())

	if g.sim.PlacingBlackHole {
		g.sim.PlaceBlackHole(x, y)
		return
	}

	g.selected = g.sim.ShipAt(x, y, pickRadius)
	if g.selected.IsZero() {
		g.selected = g.sim.BodyAt(x, y, pickRadius)
	}
}

func (g *Game) currentMission() *mission.Mission {
	if g.selectedMission < 0 || g.selectedMission >= len(g.sim.Missions) {
		return nil
	}
	return g.sim.Missions[g.selectedMission]
}

func (g *Game) clampSelection() {
	n := len(g.sim.Missions)
	g.selectedMission = max(0, min(g.selectedMission, n-1))
}

func (g *Game) selectedName() string {
	if b := g.sim.Body(g.selected); b != nil {
		return b.Name
	}
	if sh := g.sim.Ship(g.selected); sh != nil {
		return sh.Name
	}
	return ""
}

func (g *Game) export() {
	data, err := g.sim.Export()
	if err != nil {
		g.sim.Log.Add(err.Error(), game.MsgCritical)
		return
	}
	if err := os.WriteFile(g.exportPath, data, 0o644); err != nil {
		g.sim.Log.Add(fmt.Sprintf("Export failed: %v", err), game.MsgCritical)
		return
	}
	g.sim.Log.Addf(game.MsgInfo, "World exported to %s.", g.exportPath)
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawScene(screen, g.renderer, g.sim, viewport, g.selected)

	g.buffer.Clear()
	render.RenderHUD(g.buffer, g.sim, render.HUDState{
		Running:         g.driver.Running(),
		SelectedMission: g.selectedMission,
		SelectedName:    g.selectedName(),
	})
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	exportPath := flag.String("export", "scenario.json", "where E writes the world export")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg, err = config.FromEnv(cfg)
	if err != nil {
		log.Fatalf("load env: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ticksPerSecond)

	start := time.Now()
	if err := ebiten.RunGame(NewGame(cfg, *exportPath)); err != nil {
		log.Fatal(err)
	}
	log.Printf("session ended after %s", time.Since(start).Round(time.Second))
}
