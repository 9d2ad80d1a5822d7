package systems

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/automoto/glitchfire/tags"
	"github.com/yohamta/donburi"
)

// PlayerEntry returns the player entity, if one exists.
func PlayerEntry(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// PlayerCenter returns the player's position, or the arena centre when there is no player.
func PlayerCenter(w donburi.World) gamemath.Vec2 {
	if entry, ok := PlayerEntry(w); ok {
		return components.Object.Get(entry).Center()
	}
	return arenaCenter()
}

// UpdatePlayer moves the player and triggers the abilities bound to input.
func UpdatePlayer(w donburi.World) {
	entry, ok := PlayerEntry(w)
	if !ok {
		return
	}
	input := components.GetInput(w)
	upgrades := components.GetUpgrades(w)
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	now := components.Now(w)

	dir := gamemath.CalculateMoveDirection(
		input.Current[cfg.ActionMoveUp],
		input.Current[cfg.ActionMoveDown],
		input.Current[cfg.ActionMoveLeft],
		input.Current[cfg.ActionMoveRight],
	)
	pos := clampToArena(obj.Center().Add(dir.Scale(upgrades.MoveSpeed)))
	obj.SetCenter(pos)
	player.Aim = input.Aim

	if GetAction(input, cfg.ActionFire).Pressed && player.Fire.Ready(now) {
		if Shoot(w, pos, player.Aim) {
			player.Fire.Trigger(now)
		}
	}
	if GetAction(input, cfg.ActionMissile).JustPressed {
		LaunchMissile(w)
	}
	if GetAction(input, cfg.ActionKnockback).JustPressed {
		TriggerKnockback(w)
	}
	if GetAction(input, cfg.ActionEMP).JustPressed {
		if err := DeployEMP(w); err != nil {
			label := "EMP NOT READY"
			if errors.Is(err, ErrEMPCapacity) {
				label = "MAX EMP FIELDS"
			}
			floatText(w, label, pos, cfg.LightBlue)
		}
	}
	if GetAction(input, cfg.ActionShield).JustPressed {
		ActivateShield(w)
	}
}

// DamagePlayer applies damage unless the shield is up. Reaching zero health ends the run.
func DamagePlayer(w donburi.World, amount int) {
	entry, ok := PlayerEntry(w)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	hp := components.Health.Get(entry)
	pos := components.Object.Get(entry).Center()
	now := components.Now(w)

	if player.Shielded(now) {
		messages.PlayerHitEvent.Publish(w, messages.PlayerHit{Damage: amount, Blocked: true, Health: hp.Current})
		floatText(w, "BLOCKED", pos, cfg.LightBlue)
		return
	}

	hp.Current = max(0, hp.Current-amount)
	components.GetSession(w).HUDDirty = true
	messages.PlayerHitEvent.Publish(w, messages.PlayerHit{Damage: amount, Health: hp.Current})
	messages.FloatingValueEvent.Publish(w, messages.FloatingValue{
		Text:     fmt.Sprintf("-%d", amount),
		Value:    -amount,
		Position: pos,
		Follow:   entry.Entity(),
		Color:    cfg.Red,
	})

	if hp.Current == 0 {
		endRun(w)
	}
}

// HealPlayer restores health up to the maximum and returns the amount healed.
func HealPlayer(w donburi.World, amount int) int {
	entry, ok := PlayerEntry(w)
	if !ok {
		return 0
	}
	hp := components.Health.Get(entry)
	healed := min(amount, hp.Max-hp.Current)
	if healed <= 0 {
		return 0
	}
	hp.Current += healed
	components.GetSession(w).HUDDirty = true
	messages.FloatingValueEvent.Publish(w, messages.FloatingValue{
		Text:     fmt.Sprintf("+%d HP", healed),
		Value:    healed,
		Position: components.Object.Get(entry).Center(),
		Follow:   entry.Entity(),
		Color:    cfg.Green,
	})
	return healed
}

func endRun(w donburi.World) {
	wave := components.GetWave(w)
	if wave.Phase == components.PhaseGameOver {
		return
	}
	wave.Phase = components.PhaseGameOver
	score := components.GetSession(w).Score
	log.Printf("Game over in round %d with score %d", wave.CurrentRound, score)
	messages.GameOverEvent.Publish(w, messages.GameOver{Round: wave.CurrentRound, Score: score})
}

func floatText(w donburi.World, text string, pos gamemath.Vec2, c color.RGBA) {
	messages.FloatingValueEvent.Publish(w, messages.FloatingValue{
		Text:     text,
		Position: pos,
		Follow:   donburi.Null,
		Color:    c,
	})
}
