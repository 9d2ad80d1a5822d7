package scenes

import (
	"github.com/automoto/glitchfire/persistence"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerDefault ecs.LayerID = iota
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Services are the host collaborators shared by every scene.
type Services struct {
	Store *persistence.Store
	Seed  int64
}
