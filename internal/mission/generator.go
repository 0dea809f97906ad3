package mission

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mlange-42/ark/ecs"
)

// Gather amounts and per-unit pay are drawn from [base, base+span).
const (
	amountBase = 10
	amountSpan = 40
	payBase    = 10
	paySpan    = 20
)

// Candidate is a planet a gather mission can be drawn for.
type Candidate struct {
	Planet ecs.Entity
	Parent ecs.Entity // zero when the planet has no live parent
	Name   string

	ResourceKind string
	Amount       int
}

// Generator draws gather missions from a seeded PCG source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed, or with the wall clock
// when seed is zero.
func NewGenerator(seed int64) *Generator {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// Generate draws count gather missions over planets, picking a planet
// uniformly with replacement for each draw. Draws against a depleted planet
// are skipped, so fewer than count missions may come back.
func (g *Generator) Generate(planets []Candidate, count int) []*Mission {
	if len(planets) == 0 || count <= 0 {
		return nil
	}

	out := make([]*Mission, 0, count)
	for i := 0; i < count; i++ {
		p := planets[g.rng.IntN(len(planets))]

		amount := min(p.Amount, amountBase+g.rng.IntN(amountSpan))
		if amount <= 0 {
			continue
		}

		from := p.Parent
		if from.IsZero() {
			from = p.Planet
		}

		desc := fmt.Sprintf("Gather %d %s from %s", amount, p.ResourceKind, p.Name)
		m := New(TypeGather, desc, from, p.Planet)
		m.ResourceKind = p.ResourceKind
		m.ResourceAmount = amount
		m.Reward = amount * (payBase + g.rng.IntN(paySpan))
		out = append(out, m)
	}
	return out
}
