// Package render draws the arena from the events the simulation publishes.
package render

import (
	"image/color"
	"sort"

	"github.com/automoto/glitchfire/components"
	cfg "github.com/automoto/glitchfire/config"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

type visual struct {
	entity   donburi.Entity
	kind     messages.VisualKind
	radius   float64
	color    color.RGBA
	critical bool
}

// effect is a one-shot ring that grows and fades.
type effect struct {
	kind   cfg.EffectKind
	pos    gamemath.Vec2
	radius float64
	color  color.RGBA
	grow   *gween.Tween
	scale  float32
	alpha  float32
	done   bool
}

type floating struct {
	text   string
	pos    gamemath.Vec2
	follow donburi.Entity
	color  color.RGBA
	rise   *gween.Tween
	offset float32
	alpha  float32
	done   bool
}

// Presenter keeps the presentation state fed by simulation events.
type Presenter struct {
	Camera *Camera

	world     donburi.World
	visuals   map[donburi.Entity]visual
	effects   []*effect
	floats    []*floating
	hud       messages.HUDChanged
	showRadii bool
}

func NewPresenter(showRadii bool) *Presenter {
	return &Presenter{
		Camera:    NewCamera(gamemath.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2}),
		visuals:   make(map[donburi.Entity]visual),
		showRadii: showRadii,
	}
}

// Subscribe registers the presenter's handlers on w. Call it before the simulation
// creates any entities so no VisualAdded event is missed.
func (p *Presenter) Subscribe(w donburi.World) {
	p.world = w
	messages.VisualAddedEvent.Subscribe(w, p.onVisualAdded)
	messages.VisualRemovedEvent.Subscribe(w, p.onVisualRemoved)
	messages.EffectSpawnedEvent.Subscribe(w, p.onEffect)
	messages.FloatingValueEvent.Subscribe(w, p.onFloatingValue)
	messages.HUDChangedEvent.Subscribe(w, p.onHUD)
	messages.PlayerHitEvent.Subscribe(w, p.onPlayerHit)
}

func (p *Presenter) onVisualAdded(_ donburi.World, evt messages.VisualAdded) {
	p.visuals[evt.Entity] = visual{
		entity:   evt.Entity,
		kind:     evt.Kind,
		radius:   evt.Radius,
		color:    evt.Color,
		critical: evt.Critical,
	}
}

func (p *Presenter) onVisualRemoved(_ donburi.World, evt messages.VisualRemoved) {
	delete(p.visuals, evt.Entity)
}

func (p *Presenter) onEffect(_ donburi.World, evt messages.EffectSpawned) {
	length := float32(cfg.HUD.EffectLength.Seconds())
	p.effects = append(p.effects, &effect{
		kind:   evt.Kind,
		pos:    evt.Position,
		radius: evt.Radius,
		color:  evt.Color,
		grow:   gween.New(0.2, 1, length, ease.OutCubic),
		alpha:  1,
	})
	if evt.Kind == cfg.EffectNova {
		p.Camera.TriggerShake(cfg.Camera.ShakeOnNova, cfg.Camera.ShakeFrames*2)
	}
}

func (p *Presenter) onFloatingValue(_ donburi.World, evt messages.FloatingValue) {
	p.floats = append(p.floats, &floating{
		text:   evt.Text,
		pos:    evt.Position,
		follow: evt.Follow,
		color:  evt.Color,
		rise:   gween.New(0, float32(cfg.HUD.FloatingRise), float32(cfg.HUD.FloatingLength.Seconds()), ease.OutQuad),
		alpha:  1,
	})
}

func (p *Presenter) onHUD(_ donburi.World, evt messages.HUDChanged) {
	p.hud = evt
}

func (p *Presenter) onPlayerHit(_ donburi.World, evt messages.PlayerHit) {
	if !evt.Blocked {
		p.Camera.TriggerShake(cfg.Camera.ShakeOnHit, cfg.Camera.ShakeFrames)
	}
}

// Update advances tweens by dt seconds and moves the camera.
func (p *Presenter) Update(dt float32) {
	for _, e := range p.effects {
		var finished bool
		e.scale, finished = e.grow.Update(dt)
		e.alpha = 1 - e.scale
		e.done = finished
	}
	p.effects = compact(p.effects, func(e *effect) bool { return e.done })

	for _, f := range p.floats {
		var finished bool
		f.offset, finished = f.rise.Update(dt)
		f.alpha = 1 - f.offset/float32(cfg.HUD.FloatingRise)
		f.done = finished
		if f.follow != donburi.Null && p.world != nil {
			if pos, ok := positionOf(p.world, f.follow); ok {
				f.pos = pos
			}
		}
	}
	p.floats = compact(p.floats, func(f *floating) bool { return f.done })

	if p.world != nil {
		if entry, ok := components.Player.First(p.world); ok {
			p.Camera.Follow(components.Object.Get(entry).Center())
		}
	}
}

// HUD returns the last reported HUD values.
func (p *Presenter) HUD() messages.HUDChanged {
	return p.hud
}

// sortedVisuals orders draws by layer then entity so frames are stable.
func (p *Presenter) sortedVisuals() []visual {
	out := make([]visual, 0, len(p.visuals))
	for _, v := range p.visuals {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if layer(out[i].kind) != layer(out[j].kind) {
			return layer(out[i].kind) < layer(out[j].kind)
		}
		return out[i].entity < out[j].entity
	})
	return out
}

func layer(k messages.VisualKind) int {
	switch k {
	case messages.VisualEMPField:
		return 0
	case messages.VisualPowerUp:
		return 1
	case messages.VisualEnemy:
		return 2
	case messages.VisualDrone, messages.VisualPlayer:
		return 3
	}
	return 4
}

// positionOf resolves where an entity currently is, whatever its shape.
func positionOf(w donburi.World, e donburi.Entity) (gamemath.Vec2, bool) {
	if !w.Valid(e) {
		return gamemath.Vec2{}, false
	}
	entry := w.Entry(e)
	switch {
	case entry.HasComponent(components.Object):
		return components.Object.Get(entry).Center(), true
	case entry.HasComponent(components.Missile):
		return components.Missile.Get(entry).Position, true
	case entry.HasComponent(components.Drone):
		return components.Drone.Get(entry).Position, true
	case entry.HasComponent(components.EMPField):
		return components.EMPField.Get(entry).Center, true
	}
	return gamemath.Vec2{}, false
}

func compact[T any](items []T, drop func(T) bool) []T {
	kept := items[:0]
	for _, it := range items {
		if !drop(it) {
			kept = append(kept, it)
		}
	}
	return kept
}
