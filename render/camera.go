package render

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
)

// Camera follows the player across the arena and shakes on impacts.
type Camera struct {
	Position gamemath.Vec2 // world point at the screen centre
	focus    gamemath.Vec2

	shakeIntensity float64
	shakeFrames    int
	shakeOffset    gamemath.Vec2
	rng            *rand.Rand
}

func NewCamera(start gamemath.Vec2) *Camera {
	return &Camera{Position: start, focus: start, rng: rand.New(rand.NewSource(1))}
}

// Follow eases toward target, keeping the view inside the arena when it is larger than the screen.
func (c *Camera) Follow(target gamemath.Vec2) {
	c.focus = target

	screenW := float64(cfg.C.Width)
	screenH := float64(cfg.C.Height)
	target.X = clampView(target.X, screenW, cfg.Arena.Width)
	target.Y = clampView(target.Y, screenH, cfg.Arena.Height)

	c.Position = c.Position.Lerp(target, cfg.Camera.FollowSmoothing)
	c.updateShake()
}

func clampView(v, screen, arena float64) float64 {
	if arena <= screen {
		return arena / 2
	}
	return math.Max(screen/2, math.Min(arena-screen/2, v))
}

// TriggerShake starts a shake, keeping the stronger of the current and new one.
func (c *Camera) TriggerShake(intensity float64, frames int) {
	if intensity > c.shakeIntensity {
		c.shakeIntensity = intensity
	}
	if frames > c.shakeFrames {
		c.shakeFrames = frames
	}
}

func (c *Camera) updateShake() {
	if c.shakeFrames <= 0 {
		c.shakeOffset = gamemath.Vec2{}
		c.shakeIntensity = 0
		return
	}
	c.shakeFrames--
	c.shakeOffset = gamemath.Vec2{
		X: (c.rng.Float64()*2 - 1) * c.shakeIntensity,
		Y: (c.rng.Float64()*2 - 1) * c.shakeIntensity,
	}
	c.shakeIntensity *= cfg.Camera.ShakeDecay
}

// topLeft is the world point drawn at screen (0, 0).
func (c *Camera) topLeft() gamemath.Vec2 {
	return gamemath.Vec2{
		X: c.Position.X - float64(cfg.C.Width)/2 + c.shakeOffset.X,
		Y: c.Position.Y - float64(cfg.C.Height)/2 + c.shakeOffset.Y,
	}
}

// WorldToScreen converts a world point to screen pixels.
func (c *Camera) WorldToScreen(p gamemath.Vec2) gamemath.Vec2 {
	return p.Sub(c.topLeft())
}

// ScreenToWorld converts screen pixels to a world point.
func (c *Camera) ScreenToWorld(x, y float64) gamemath.Vec2 {
	return c.topLeft().Add(gamemath.Vec2{X: x, Y: y})
}

// Focus is the point the camera is following.
func (c *Camera) Focus() gamemath.Vec2 {
	return c.focus
}
