package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacehole-rogue/missionsim/internal/config"
	"github.com/spacehole-rogue/missionsim/internal/game"
	"github.com/spacehole-rogue/missionsim/internal/mission"
	"github.com/spacehole-rogue/missionsim/internal/shared/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	exportPath := flag.String("export", "", "write the final world export here on exit")
	flag.Parse()

	if err := run(*configPath, *exportPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, exportPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err = config.FromEnv(cfg)
	if err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	lg := logger.Init(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sim := game.NewSim(cfg, lg)
	sim.SwitchToMissions()

	driver := game.NewDriver(sim, game.RealClock{}, cfg.Simulation.TickInterval)
	pilot := &autopilot{logger: lg.With("component", "autopilot")}
	driver.AfterStep = pilot.step

	if err := driver.Run(ctx); err != nil {
		return err
	}

	lg.Info("session ended", "credits", sim.Credits, "ticks", sim.Ticks, "elapsed", sim.Elapsed)
	if exportPath == "" {
		return nil
	}
	data, err := sim.Export()
	if err != nil {
		return err
	}
	return os.WriteFile(exportPath, data, 0o644)
}

// autopilot flies one mission at a time: it extracts whatever has landed,
// then accepts the next planned job once nothing is in flight.
type autopilot struct {
	logger *slog.Logger
}

func (a *autopilot) step(s *game.Sim) {
	var done []*mission.Mission
	inFlight := false
	for _, m := range s.Missions {
		switch m.Status() {
		case mission.StatusCompleted:
			done = append(done, m)
		case mission.StatusInTransit:
			inFlight = true
		}
	}

	for _, m := range done {
		reward := m.Reward
		if s.ExtractMission(m) {
			a.logger.Info("mission extracted", "mission", m.Description, "reward", reward, "credits", s.Credits)
		}
	}
	if inFlight {
		return
	}

	next := a.nextPlanned(s)
	if next == nil {
		if len(s.GenerateMissions(0)) == 0 {
			return
		}
		next = a.nextPlanned(s)
	}
	if next == nil {
		return
	}
	if err := s.AcceptMission(next); err != nil {
		a.logger.Warn("accept failed", "mission", next.Description, "error", err)
		return
	}
	a.logger.Info("mission accepted", "mission", next.Description, "eta", next.EstimatedDuration())
}

func (a *autopilot) nextPlanned(s *game.Sim) *mission.Mission {
	for _, m := range s.Missions {
		if m.Status() == mission.StatusPlanned {
			return m
		}
	}
	return nil
}
