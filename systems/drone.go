package systems

import (
	"math"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

// ActiveDroneCount counts orbiting drones.
func ActiveDroneCount(w donburi.World) int {
	n := 0
	tags.Drone.Each(w, func(*donburi.Entry) { n++ })
	return n
}

// SpawnDrone adds an orbiting drone opposite any existing one. Capped at MaxActive.
func SpawnDrone(w donburi.World) bool {
	n := ActiveDroneCount(w)
	if n >= cfg.Drone.MaxActive {
		return false
	}
	angle := float64(n) * 2 * math.Pi / float64(cfg.Drone.MaxActive)
	factory.CreateDrone(w, angle, PlayerCenter(w))
	return true
}

// UpdateDrones advances each drone along its orbit and expires old ones.
func UpdateDrones(w donburi.World) {
	now := components.Now(w)
	player := PlayerCenter(w)

	var expired []donburi.Entity
	tags.Drone.Each(w, func(e *donburi.Entry) {
		d := components.Drone.Get(e)
		if now >= d.Expires {
			expired = append(expired, e.Entity())
			return
		}
		d.Angle = math.Mod(d.Angle+cfg.Drone.AngularStep, 2*math.Pi)
		d.Position = player.Add(gamemath.FromAngle(d.Angle, cfg.Drone.OrbitRadius))
	})
	for _, d := range expired {
		factory.Destroy(w, d)
	}
}

// ResolveDroneKills destroys non-boss enemies touching a drone, with full weapon score.
func ResolveDroneKills(w donburi.World) int {
	var positions []gamemath.Vec2
	tags.Drone.Each(w, func(e *donburi.Entry) {
		positions = append(positions, components.Drone.Get(e).Position)
	})

	kills := 0
	reach := cfg.Drone.KillRadius + maxEnemyRadius()
	for _, pos := range positions {
		for _, c := range QueryRadius(w, pos, reach, tags.ResolvEnemy) {
			if !w.Valid(c.Entity) {
				continue
			}
			entry := w.Entry(c.Entity)
			enemy := components.Enemy.Get(entry)
			if enemy.Dead || enemy.Kind == cfg.EnemyBoss {
				continue
			}
			if c.Dist >= cfg.Drone.KillRadius+enemy.Type().Radius {
				continue
			}
			KillEnemy(w, c.Entity, KillWeapon)
			kills++
		}
	}
	return kills
}
