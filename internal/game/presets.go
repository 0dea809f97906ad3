package game

import (
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/missionsim/assets"
	apperrors "github.com/spacehole-rogue/missionsim/internal/shared/errors"
	"github.com/spacehole-rogue/missionsim/internal/world"
)

const presetDir = "presets"

// PresetNames lists the embedded presets, sorted.
func PresetNames() []string {
	entries, err := fs.ReadDir(assets.Presets, presetDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the world with the named preset. Missions are dropped
// and the mode is left as it is.
func (s *Sim) ApplyPreset(name string) error {
	data, err := assets.Presets.ReadFile(path.Join(presetDir, name+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperrors.NotFoundf("preset %q", name)
		}
		return apperrors.WrapInternal("read preset", err)
	}
	p, err := world.LoadPreset(data)
	if err != nil {
		return err
	}

	s.clearWorld()
	s.PlacingBlackHole = false

	handles := make([]ecs.Entity, len(p.Bodies))
	for i, spec := range p.Bodies {
		b := spec.Body()
		if spec.Parent != nil {
			b.Parent = handles[*spec.Parent]
		}
		handles[i] = s.spawnBody(b)
	}

	title := p.Title
	if title == "" {
		title = p.Name
	}
	s.Log.Addf(MsgInfo, "Loaded preset: %s.", title)
	s.logger.Info("preset applied", "preset", name, "bodies", len(handles))
	return nil
}
