package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/automoto/glitchfire/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// Draw renders the arena, its entities, effects and the HUD.
func (p *Presenter) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 20, A: 255})
	p.drawArena(screen)

	now := components.Now(p.world)
	for _, v := range p.sortedVisuals() {
		pos, ok := positionOf(p.world, v.entity)
		if !ok {
			continue
		}
		p.drawVisual(screen, v, p.Camera.WorldToScreen(pos), now)
	}

	for _, e := range p.effects {
		s := p.Camera.WorldToScreen(e.pos)
		vector.StrokeCircle(screen, float32(s.X), float32(s.Y), float32(e.radius)*e.scale, 3, fade(e.color, e.alpha), true)
	}
	for _, f := range p.floats {
		s := p.Camera.WorldToScreen(f.pos)
		drawText(screen, f.text, s.X-float64(len(f.text))*3.5, s.Y-24-float64(f.offset), fade(f.color, f.alpha))
	}

	p.drawHUD(screen)
	switch {
	case p.hud.GameOver:
		p.drawGameOver(screen)
	case p.hud.Intermission:
		p.drawStore(screen)
	}
}

func (p *Presenter) drawArena(screen *ebiten.Image) {
	tl := p.Camera.WorldToScreen(gamemath.Vec2{})
	vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), float32(cfg.Arena.Width), float32(cfg.Arena.Height), 2, cfg.DarkGray, false)
}

func (p *Presenter) drawVisual(screen *ebiten.Image, v visual, s gamemath.Vec2, now time.Duration) {
	x, y, r := float32(s.X), float32(s.Y), float32(v.radius)
	switch v.kind {
	case messages.VisualEMPField:
		vector.DrawFilledCircle(screen, x, y, float32(cfg.EMP.Radius), fade(cfg.LightBlue, 0.12), true)
		vector.StrokeCircle(screen, x, y, float32(cfg.EMP.Radius), 1, fade(cfg.LightBlue, 0.5), true)
		vector.DrawFilledCircle(screen, x, y, r, cfg.LightBlue, true)
	case messages.VisualEnemy:
		p.drawEnemy(screen, v, x, y, r, now)
	case messages.VisualPlayer:
		vector.DrawFilledCircle(screen, x, y, r, v.color, true)
		if p.hud.ShieldActive {
			vector.StrokeCircle(screen, x, y, r+6, 2, cfg.Cyan, true)
		}
		if p.showRadii {
			vector.StrokeCircle(screen, x, y, float32(cfg.Player.ContactRadius), 1, cfg.Red, true)
			vector.StrokeCircle(screen, x, y, float32(cfg.Knockback.Radius), 1, cfg.White, true)
		}
	case messages.VisualDrone:
		vector.StrokeCircle(screen, x, y, r, 2, v.color, true)
	default:
		vector.DrawFilledCircle(screen, x, y, r, v.color, true)
		if v.critical {
			vector.StrokeCircle(screen, x, y, r+2, 1, cfg.White, true)
		}
	}
}

func (p *Presenter) drawEnemy(screen *ebiten.Image, v visual, x, y, r float32, now time.Duration) {
	entry := p.world.Entry(v.entity)
	enemy := components.Enemy.Get(entry)
	c := v.color
	switch {
	case enemy.IsFlashing(now):
		c = cfg.White
	case enemy.Frozen:
		c = cfg.LightBlue
	}
	vector.DrawFilledCircle(screen, x, y, r, c, true)
	if enemy.IsStunned(now) {
		vector.StrokeCircle(screen, x, y, r+3, 1, cfg.Yellow, true)
	}
	if p.showRadii && enemy.Kind == cfg.EnemyShifter {
		vector.StrokeCircle(screen, x, y, float32(cfg.Enemy.Shifter.DetectionRadius), 1, fade(cfg.Cyan, 0.4), true)
	}

	hp := components.Health.Get(entry)
	if hp.Current < hp.Max {
		w := r * 2
		ratio := float32(hp.Current) / float32(hp.Max)
		vector.DrawFilledRect(screen, x-r, y-r-6, w, 3, cfg.DarkGray, false)
		vector.DrawFilledRect(screen, x-r, y-r-6, w*ratio, 3, cfg.Green, false)
	}
}

func (p *Presenter) drawHUD(screen *ebiten.Image) {
	m := cfg.HUD.Margin
	hud := p.hud

	// Health bar
	vector.DrawFilledRect(screen, float32(m), float32(m), float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight), cfg.DarkGray, false)
	if hud.MaxHealth > 0 {
		ratio := float32(hud.Health) / float32(hud.MaxHealth)
		vector.DrawFilledRect(screen, float32(m), float32(m), float32(cfg.HUD.BarWidth)*ratio, float32(cfg.HUD.BarHeight), cfg.Green, false)
	}
	drawText(screen, fmt.Sprintf("%d/%d", hud.Health, hud.MaxHealth), m+cfg.HUD.BarWidth+6, m, cfg.White)

	lines := []string{
		fmt.Sprintf("SCORE %d", hud.Score),
		fmt.Sprintf("ROUND %d", hud.Round),
		fmt.Sprintf("ENEMIES %d  INCOMING %d", hud.ActiveEnemies, hud.RemainingToSpawn),
		fmt.Sprintf("MISSILES %d", hud.MissileCount),
	}
	y := m + cfg.HUD.BarHeight + 6
	for _, line := range lines {
		drawText(screen, line, m, y, cfg.White)
		y += cfg.HUD.LineHeight
	}

	cooldowns := []struct {
		label    string
		fraction float64
	}{
		{"KNOCK", hud.Cooldowns.Knockback},
		{"EMP", hud.Cooldowns.EMP},
		{"SHIELD", hud.Cooldowns.Shield},
		{"MISSILE", hud.Cooldowns.Missile},
	}
	barW := cfg.HUD.BarWidth / 2
	for _, cd := range cooldowns {
		drawText(screen, cd.label, m, y, cfg.White)
		vector.DrawFilledRect(screen, float32(m+60), float32(y+2), float32(barW), 8, cfg.DarkGray, false)
		vector.DrawFilledRect(screen, float32(m+60), float32(y+2), float32(barW*(1-cd.fraction)), 8, cfg.Cyan, false)
		y += cfg.HUD.LineHeight
	}
}

func (p *Presenter) drawStore(screen *ebiten.Image) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, cfg.BlackOverlay, false)

	menu := components.GetMenu(p.world)
	upgrades := components.GetUpgrades(p.world)

	x := float64(w)/2 - 160
	y := float64(h)/2 - 120
	drawText(screen, fmt.Sprintf("ROUND %d COMPLETE - STORE   SCORE %d", p.hud.Round, p.hud.Score), x, y, cfg.Yellow)
	y += cfg.HUD.LineHeight * 2

	for i := 0; i < int(cfg.UpgradeCount); i++ {
		id := cfg.UpgradeID(i)
		u := cfg.Store.Upgrades[id]
		level := upgrades.Levels[id]
		price := fmt.Sprintf("%d", systems.UpgradeCost(id, level))
		if level >= u.MaxLevel {
			price = "MAX"
		}
		drawText(screen, fmt.Sprintf("%s %-18s Lv %d/%d  %s", cursor(menu.StoreIndex == i), u.Name, level, u.MaxLevel, price), x, y, cfg.White)
		y += cfg.HUD.LineHeight
	}
	drawText(screen, fmt.Sprintf("%s NEXT ROUND", cursor(menu.StoreIndex == int(cfg.UpgradeCount))), x, y, cfg.Green)
	y += cfg.HUD.LineHeight * 2
	if menu.Message != "" {
		drawText(screen, menu.Message, x, y, cfg.LightBlue)
	}
}

func (p *Presenter) drawGameOver(screen *ebiten.Image) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, cfg.BlackOverlay, false)

	menu := components.GetMenu(p.world)
	x := float64(w)/2 - 80
	y := float64(h)/2 - 40
	drawText(screen, "GAME OVER", x, y, cfg.Red)
	drawText(screen, fmt.Sprintf("ROUND %d  SCORE %d", p.hud.Round, p.hud.Score), x, y+cfg.HUD.LineHeight, cfg.White)
	drawText(screen, cursor(menu.GameOverOption == components.GameOverRetry)+" RETRY", x, y+cfg.HUD.LineHeight*3, cfg.White)
	drawText(screen, cursor(menu.GameOverOption == components.GameOverQuit)+" QUIT", x, y+cfg.HUD.LineHeight*4, cfg.White)
}

func cursor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// fade scales a colour's alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float32) color.RGBA {
	alpha = max(0, min(1, alpha))
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
