package sim

import (
	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/systems"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

// BotState is the autopilot's current intent
type BotState int

const (
	BotStateIdle BotState = iota
	BotStateAttack
	BotStateRetreat
)

// AutoPilot is an InputSource that plays the arena on its own. It is used for
// headless soak runs. Bind it with Attach once the Sim exists.
type AutoPilot struct {
	tuning cfg.BotDifficultyConfig
	world  donburi.World
	state  BotState
	wait   int
	last   components.InputState
	toggle bool
}

func NewAutoPilot(difficulty cfg.BotDifficulty) *AutoPilot {
	return &AutoPilot{tuning: cfg.Bot.Difficulties[difficulty]}
}

// Attach points the autopilot at the world it plays.
func (a *AutoPilot) Attach(s *Sim) {
	a.world = s.World()
}

func (a *AutoPilot) State() BotState {
	return a.state
}

// Poll implements components.InputSource.
func (a *AutoPilot) Poll() components.InputState {
	if a.world == nil {
		return components.InputState{}
	}
	switch components.GetWave(a.world).Phase {
	case components.PhaseIntermission:
		return a.pulse(cfg.ActionContinue)
	case components.PhaseGameOver:
		return components.InputState{}
	}

	if a.wait > 0 {
		a.wait--
		return a.last
	}
	a.wait = a.tuning.ReactionDelay
	a.last = a.decide()
	return a.last
}

// pulse alternates a single action on and off so edge-triggered actions fire.
func (a *AutoPilot) pulse(action cfg.ActionID) components.InputState {
	a.toggle = !a.toggle
	var in components.InputState
	in.Pressed[action] = a.toggle
	return in
}

func (a *AutoPilot) decide() components.InputState {
	var in components.InputState
	me := systems.PlayerCenter(a.world)
	in.Aim = me

	target, found := a.nearestEnemy(me)
	if !found {
		a.state = BotStateIdle
		return in
	}
	in.Aim = target

	danger := len(systems.QueryRadius(a.world, me, a.tuning.DangerRange, tags.ResolvEnemy))
	engaged := len(systems.QueryRadius(a.world, me, a.tuning.EngageRange, tags.ResolvEnemy))

	a.state = BotStateAttack
	if danger > 0 || a.healthPercent() < a.tuning.RetreatThreshold {
		a.state = BotStateRetreat
	}

	switch a.state {
	case BotStateRetreat:
		away := me.Sub(target).Normalize()
		in.Pressed[cfg.ActionMoveRight] = away.X > 0.3
		in.Pressed[cfg.ActionMoveLeft] = away.X < -0.3
		in.Pressed[cfg.ActionMoveDown] = away.Y > 0.3
		in.Pressed[cfg.ActionMoveUp] = away.Y < -0.3
	case BotStateAttack:
		if target.Dist(me) > a.tuning.EngageRange {
			toward := target.Sub(me).Normalize()
			in.Pressed[cfg.ActionMoveRight] = toward.X > 0.3
			in.Pressed[cfg.ActionMoveLeft] = toward.X < -0.3
			in.Pressed[cfg.ActionMoveDown] = toward.Y > 0.3
			in.Pressed[cfg.ActionMoveUp] = toward.Y < -0.3
		}
	}

	in.Pressed[cfg.ActionFire] = target.Dist(me) <= a.tuning.EngageRange
	in.Pressed[cfg.ActionKnockback] = danger >= a.tuning.KnockbackCrowd
	in.Pressed[cfg.ActionEMP] = engaged >= a.tuning.EMPCrowd
	in.Pressed[cfg.ActionShield] = a.state == BotStateRetreat
	_, bossUp := tags.Boss.First(a.world)
	in.Pressed[cfg.ActionMissile] = bossUp
	return in
}

func (a *AutoPilot) nearestEnemy(from gamemath.Vec2) (gamemath.Vec2, bool) {
	var (
		best  gamemath.Vec2
		bestD float64
		found bool
	)
	tags.Enemy.Each(a.world, func(e *donburi.Entry) {
		pos := components.Object.Get(e).Center()
		if d := pos.Dist(from); !found || d < bestD {
			best, bestD, found = pos, d, true
		}
	})
	return best, found
}

func (a *AutoPilot) healthPercent() float64 {
	entry, ok := systems.PlayerEntry(a.world)
	if !ok {
		return 0
	}
	hp := components.Health.Get(entry)
	if hp.Max == 0 {
		return 0
	}
	return float64(hp.Current) / float64(hp.Max)
}
