package tags

import "github.com/yohamta/donburi"

var (
	Game         = donburi.NewTag().SetName("Game")
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Boss         = donburi.NewTag().SetName("Boss")
	Bullet       = donburi.NewTag().SetName("Bullet")
	Missile      = donburi.NewTag().SetName("Missile")
	EnemyMissile = donburi.NewTag().SetName("EnemyMissile")
	EMPField     = donburi.NewTag().SetName("EMPField")
	PowerUp      = donburi.NewTag().SetName("PowerUp")
	Drone        = donburi.NewTag().SetName("Drone")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvBullet       = "Bullet"
	ResolvEnemyMissile = "EnemyMissile"
	ResolvPowerUp      = "PowerUp"
)
