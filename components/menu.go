package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverQuit
)

// MenuData stores the intermission store and game over menu state
type MenuData struct {
	StoreIndex     int            // Selected store row; UpgradeCount selects "Next Round"
	GameOverOption GameOverOption // Current game over selection
	Message        string         // Last purchase result
	QuitRequested  bool           // Set when the player picks Quit; the host exits
}

// Menu is the component type for menu state
var Menu = donburi.NewComponentType[MenuData]()
