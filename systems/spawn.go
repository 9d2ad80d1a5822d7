package systems

import (
	"log"
	"math"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/systems/factory"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

// CreateEnemyWave schedules the wave for round. Bosses are counted in the total.
func CreateEnemyWave(w donburi.World, round int) {
	wave := components.GetWave(w)
	regular := gamemath.WaveSize(cfg.Wave, round)
	bosses := gamemath.BossCount(cfg.Difficulty, round)

	wave.CurrentRound = round
	wave.TotalEnemiesForRound = regular + bosses
	wave.EnemiesRemainingToSpawn = wave.TotalEnemiesForRound
	wave.BossesRemaining = bosses
	wave.TimeBetweenSpawns = gamemath.SpawnInterval(cfg.Difficulty, round)
	wave.LastSpawnTime = components.Now(w)
	components.GetSession(w).HUDDirty = true

	log.Printf("Round %d: %d enemies (%d bosses), spawn every %v",
		round, wave.TotalEnemiesForRound, bosses, wave.TimeBetweenSpawns)
}

// UpdateSpawner spawns at most one enemy per tick on the wave's cadence.
// It never advances the round.
func UpdateSpawner(w donburi.World) {
	wave := components.GetWave(w)
	if wave.EnemiesRemainingToSpawn <= 0 {
		return
	}
	now := components.Now(w)
	if now-wave.LastSpawnTime < wave.TimeBetweenSpawns {
		return
	}
	if SpawnSingleEnemy(w) {
		wave.LastSpawnTime = now
	}
}

// SpawnSingleEnemy places one enemy from the wave. The remaining count only drops on
// success; it fails only when every remaining slot is a boss and the concurrent
// boss cap is reached.
func SpawnSingleEnemy(w donburi.World) bool {
	wave := components.GetWave(w)
	if wave.EnemiesRemainingToSpawn <= 0 {
		return false
	}

	kind, ok := chooseEnemyKind(w, wave)
	if !ok {
		return false
	}

	factory.CreateEnemy(w, kind, FindSpawnPosition(w), wave.CurrentRound)
	if kind == cfg.EnemyBoss {
		wave.BossesRemaining--
	}
	wave.EnemiesRemainingToSpawn--
	components.GetSession(w).HUDDirty = true
	return true
}

func chooseEnemyKind(w donburi.World, wave *components.WaveData) (cfg.EnemyKind, bool) {
	rng := components.GetRandom(w)
	regularLeft := wave.EnemiesRemainingToSpawn - wave.BossesRemaining

	bossEligible := wave.BossesRemaining > 0 &&
		wave.CurrentRound >= cfg.Difficulty.BossMinRound &&
		ActiveBossCount(w) < cfg.Difficulty.MaxConcurrentBosses
	if bossEligible {
		// Spread bosses across the wave rather than front-loading them.
		share := float64(wave.BossesRemaining) / float64(wave.EnemiesRemainingToSpawn)
		if regularLeft <= 0 || rng.Float64() < share {
			return cfg.EnemyBoss, true
		}
	}
	if regularLeft <= 0 {
		return cfg.EnemyNormal, false
	}
	return rollRegularKind(w, wave.CurrentRound), true
}

// rollRegularKind checks Shifter, Destroyer and Special in that order, each with its
// own independent probability, and defaults to Normal.
func rollRegularKind(w donburi.World, round int) cfg.EnemyKind {
	rng := components.GetRandom(w)
	switch {
	case rng.Float64() < gamemath.SpecialChance(cfg.Difficulty.Shifter, round):
		return cfg.EnemyShifter
	case rng.Float64() < gamemath.SpecialChance(cfg.Difficulty.Destroyer, round):
		return cfg.EnemyDestroyer
	case rng.Float64() < gamemath.SpecialChance(cfg.Difficulty.Special, round):
		return cfg.EnemySpecial
	}
	return cfg.EnemyNormal
}

// FindSpawnPosition rejection-samples a point in an arc on the far side of the player,
// within the configured distance band, inside the arena and clear of other enemies.
// When the attempt budget runs out it falls back to a fixed point straight across
// from the player, so placement never fails.
func FindSpawnPosition(w donburi.World) gamemath.Vec2 {
	rng := components.GetRandom(w)
	player := PlayerCenter(w)
	center := arenaCenter()

	base := center.Sub(player).Angle()
	if player == center {
		base = rng.Float64() * 2 * math.Pi
	}

	margin := cfg.Arena.Margin + maxEnemyRadius()
	for i := 0; i < cfg.Spawn.MaxAttempts; i++ {
		angle := base + (rng.Float64()-0.5)*cfg.Spawn.ArcWidth
		dist := cfg.Spawn.MinDistance + rng.Float64()*(cfg.Spawn.MaxDistance-cfg.Spawn.MinDistance)
		candidate := player.Add(gamemath.FromAngle(angle, dist))

		if !gamemath.InArena(candidate, cfg.Arena.Width, cfg.Arena.Height, margin) {
			continue
		}
		if len(QueryRadius(w, candidate, cfg.Spawn.MinSpacing, tags.ResolvEnemy)) > 0 {
			continue
		}
		return candidate
	}

	fallback := player.Add(gamemath.FromAngle(base, cfg.Spawn.FallbackDistance))
	return gamemath.ClampToArena(fallback, cfg.Arena.Width, cfg.Arena.Height, margin)
}
