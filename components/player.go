package components

import (
	"time"

	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	ShieldUntil time.Duration
	Fire        Cooldown
	Aim         gamemath.Vec2
}

func (p *PlayerData) Shielded(now time.Duration) bool {
	return now < p.ShieldUntil
}

var Player = donburi.NewComponentType[PlayerData]()
