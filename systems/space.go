package systems

import (
	"sort"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Candidate is a broadphase hit refined to an exact centre distance.
type Candidate struct {
	Entity   donburi.Entity
	Position gamemath.Vec2
	Dist     float64
}

// QueryRadius returns live entities carrying the resolv tag whose centres lie strictly
// within radius of center, nearest first with ties broken by entity id.
func QueryRadius(w donburi.World, center gamemath.Vec2, radius float64, tag string) []Candidate {
	space := components.GetSpace(w)

	// Probe the cells covering the circle's bounding square, then filter exactly.
	probe := resolv.NewObject(center.X-radius, center.Y-radius, radius*2, radius*2)
	space.Add(probe)
	check := probe.Check(0, 0, tag)
	space.Remove(probe)
	if check == nil {
		return nil
	}

	seen := make(map[donburi.Entity]struct{}, len(check.Objects))
	var out []Candidate
	for _, obj := range check.Objects {
		entity, ok := obj.Data.(donburi.Entity)
		if !ok || !w.Valid(entity) {
			continue
		}
		if _, dup := seen[entity]; dup {
			continue
		}
		seen[entity] = struct{}{}

		pos := components.ObjectData{Object: obj}.Center()
		if d := pos.Dist(center); d < radius {
			out = append(out, Candidate{Entity: entity, Position: pos, Dist: d})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Dist != out[j].Dist {
			return out[i].Dist < out[j].Dist
		}
		return out[i].Entity < out[j].Entity
	})
	return out
}

// CenterOf returns an entity's object centre, or false for stale handles.
func CenterOf(w donburi.World, entity donburi.Entity) (gamemath.Vec2, bool) {
	if !w.Valid(entity) {
		return gamemath.Vec2{}, false
	}
	entry := w.Entry(entity)
	if !entry.HasComponent(components.Object) {
		return gamemath.Vec2{}, false
	}
	return components.Object.Get(entry).Center(), true
}

// maxEnemyRadius is the largest collision radius in the enemy table.
func maxEnemyRadius() float64 {
	r := 0.0
	for _, t := range cfg.Enemy.Types {
		r = max(r, t.Radius)
	}
	return r
}

// clampToArena keeps a centre point inside the playable area.
func clampToArena(p gamemath.Vec2) gamemath.Vec2 {
	return gamemath.ClampToArena(p, cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.Margin)
}

func arenaCenter() gamemath.Vec2 {
	return gamemath.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2}
}
