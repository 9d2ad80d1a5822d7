package gamemath

import (
	"math"
	"time"

	"github.com/automoto/glitchfire/config"
)

// HealthMultiplier returns factor^min(round-1, cap).
func HealthMultiplier(d config.DifficultyConfig, round int) float64 {
	steps := min(roundOffset(round), d.HealthScaleCap)
	return math.Pow(d.HealthScaleFactor, float64(steps))
}

// SpeedMultiplier grows linearly with the round.
func SpeedMultiplier(d config.DifficultyConfig, round int) float64 {
	return 1 + d.SpeedIncreasePerRound*float64(roundOffset(round))
}

// SpawnInterval shrinks geometrically with the round, floored at MinSpawnTime.
func SpawnInterval(d config.DifficultyConfig, round int) time.Duration {
	steps := min(roundOffset(round), d.SpawnScaleCap)
	interval := time.Duration(float64(d.BaseSpawnTime) * math.Pow(0.9, 0.1*float64(steps)))
	return max(d.MinSpawnTime, interval)
}

// SpecialChance returns the spawn probability for a subtype, zero before its MinRound.
func SpecialChance(c config.ChanceConfig, round int) float64 {
	if round < c.MinRound {
		return 0
	}
	return math.Min(c.Max, c.Base+c.IncreasePerRound*float64(roundOffset(round)))
}

// ScoreMultiplier returns factor^(round-1).
func ScoreMultiplier(d config.DifficultyConfig, round int) float64 {
	return math.Pow(d.ScoreScaleFactor, float64(roundOffset(round)))
}

// ScaledScore truncates base*ScoreMultiplier to an integer.
func ScaledScore(d config.DifficultyConfig, base, round int) int {
	return int(float64(base) * ScoreMultiplier(d, round))
}

// DamageScale returns min(MaxDamageScale, 1 + perRound*(round-1)).
func DamageScale(d config.DifficultyConfig, round int) float64 {
	return math.Min(d.MaxDamageScale, 1+d.DamageScalePerRound*float64(roundOffset(round)))
}

// ScaledDamage floors base*DamageScale.
func ScaledDamage(d config.DifficultyConfig, base, round int) int {
	return int(math.Floor(float64(base) * DamageScale(d, round)))
}

// WaveSize returns the number of regular enemies scheduled for a round.
func WaveSize(w config.WaveConfig, round int) int {
	interval := max(w.WaveGrowthInterval, 1)
	size := w.BaseRows*w.BaseCols + w.WaveSizeIncrease*(roundOffset(round)/interval)
	return min(w.MaxPerWave, size)
}

// BossCount returns the number of bosses added on top of WaveSize.
func BossCount(d config.DifficultyConfig, round int) int {
	if round < d.BossMinRound {
		return 0
	}
	interval := max(d.BossRoundInterval, 1)
	return min(d.MaxBossesPerWave, (round-d.BossMinRound)/interval+1)
}

func roundOffset(round int) int {
	if round < 1 {
		return 0
	}
	return round - 1
}
