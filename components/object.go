package components

import (
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object that doubles as an entity's position and broadphase shape.
type ObjectData struct {
	*resolv.Object
}

// Center returns the centre of the object's bounding box.
func (o ObjectData) Center() gamemath.Vec2 {
	return gamemath.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the object so its centre sits on p and refreshes its cells.
func (o ObjectData) SetCenter(p gamemath.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[resolv.Space]()
