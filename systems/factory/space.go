package factory

import (
	"github.com/automoto/glitchfire/archetypes"
	"github.com/automoto/glitchfire/components"
	"github.com/automoto/glitchfire/shared/gamemath"
	"github.com/automoto/glitchfire/shared/messages"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject gives the entry a square broadphase object of the given radius centred on pos.
func attachObject(w donburi.World, entry *donburi.Entry, pos gamemath.Vec2, radius float64, tag string) *resolv.Object {
	obj := resolv.NewObject(pos.X-radius, pos.Y-radius, radius*2, radius*2)
	obj.AddTags(tag)
	obj.Data = entry.Entity()
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.GetSpace(w).Add(obj)
	return obj
}

// Destroy removes an entity, its broadphase object and its visual. Stale handles are ignored.
func Destroy(w donburi.World, entity donburi.Entity) {
	if !w.Valid(entity) {
		return
	}
	entry := w.Entry(entity)
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	messages.VisualRemovedEvent.Publish(w, messages.VisualRemoved{Entity: entity})
	w.Remove(entity)
}
