package config

import (
	"image/color"
	"math"
	"time"
)

// ArenaConfig describes the playable rectangle. Entities are clamped into it.
type ArenaConfig struct {
	Width    float64
	Height   float64
	CellSize int // resolv broadphase cell size
	Margin   float64
}

// DifficultyConfig drives the per-round scaling formulas in shared/gamemath.
type DifficultyConfig struct {
	HealthScaleFactor float64
	HealthScaleCap    int

	SpeedIncreasePerRound float64

	BaseSpawnTime time.Duration
	MinSpawnTime  time.Duration
	SpawnScaleCap int

	ScoreScaleFactor float64

	DamageScalePerRound float64
	MaxDamageScale      float64

	Special   ChanceConfig
	Shifter   ChanceConfig
	Destroyer ChanceConfig

	BossMinRound        int
	BossRoundInterval   int // one extra boss every N rounds after BossMinRound
	MaxBossesPerWave    int
	MaxConcurrentBosses int
}

// ChanceConfig is a per-subtype spawn probability ramp.
type ChanceConfig struct {
	Base             float64
	IncreasePerRound float64
	Max              float64
	MinRound         int
}

// WaveConfig sizes each round's wave.
type WaveConfig struct {
	BaseRows           int
	BaseCols           int
	WaveSizeIncrease   int
	WaveGrowthInterval int // rounds per WaveSizeIncrease step
	MaxPerWave         int
}

// SpawnConfig controls rejection-sampled spawn placement.
type SpawnConfig struct {
	MinDistance      float64
	MaxDistance      float64
	ArcWidth         float64 // radians, centred opposite the player
	MinSpacing       float64
	MaxAttempts      int
	FallbackDistance float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health        int
	Speed         float64
	Radius        float64
	ContactRadius float64
	FireInterval  time.Duration
}

// BulletConfig contains bullet and bullet-upgrade tuning.
type BulletConfig struct {
	Speed         float64
	GlitchedSpeed float64
	Radius        float64
	MaxRange      float64
	MaxPoolSize   int
	BaseDamage    int

	CritChancePerLevel float64
	CritMultiplier     float64

	BasePenetration     int
	PenetrationPerLevel int

	GlitchedPerLevel     int
	GlitchedSearchRadius float64
}

// MissileConfig contains homing missile tuning.
type MissileConfig struct {
	Speed         float64
	TurnRate      float64
	HitDistance   float64
	BlastRadius   float64
	BlastDamage   int
	Lifetime      time.Duration
	Cooldown      time.Duration
	StartingCount int
}

// EnemyMissileConfig contains Destroyer missile tuning.
type EnemyMissileConfig struct {
	Speed          float64
	Accuracy       float64 // 1 is a perfect launch aim
	MaxAimOffset   float64 // radians at zero accuracy
	Tracking       float64
	Lifetime       time.Duration
	ProximityRange float64
	Radius         float64
	Damage         int
	ShotDownBonus  int
}

// KnockbackConfig contains the knockback ability tuning.
type KnockbackConfig struct {
	Cooldown time.Duration
	Radius   float64
	Duration time.Duration
	Strength float64
}

// EMPConfig contains the EMP field tuning.
type EMPConfig struct {
	Cooldown       time.Duration
	MaxFields      int
	Lifetime       time.Duration
	PulseInterval  time.Duration
	Radius         float64
	ChainRadius    float64
	ChainChance    float64
	MaxChainDepth  int
	FreezeDuration time.Duration
}

// NovaConfig contains the Super Nova tuning.
type NovaConfig struct {
	ScoreMultiplier float64
}

// ShieldConfig contains the shield ability tuning.
type ShieldConfig struct {
	Cooldown time.Duration
	Duration time.Duration
}

// PowerUpConfig contains drop and pickup tuning.
type PowerUpConfig struct {
	DropChance      float64
	PickupRadius    float64
	Lifetime        time.Duration
	MissilePackSize int
	HealAmount      int
	Weights         [PowerUpKindCount]float64
}

// DroneConfig contains drone companion tuning.
type DroneConfig struct {
	OrbitRadius float64
	AngularStep float64 // radians per tick
	KillRadius  float64
	Lifetime    time.Duration
	MaxActive   int
}

// UpgradeConfig prices one store upgrade.
type UpgradeConfig struct {
	Name     string
	BaseCost int
	CostStep int
	MaxLevel int
}

// StoreConfig contains the intermission store catalogue.
type StoreConfig struct {
	Upgrades        [UpgradeCount]UpgradeConfig
	DamagePerLevel  int
	SpeedPerLevel   float64
	HealthPerLevel  int
	MissilesPerSale int
}

// HUDConfig contains HUD layout values.
type HUDConfig struct {
	Margin         float64
	BarWidth       float64
	BarHeight      float64
	LineHeight     float64
	FloatingRise   float64
	FloatingLength time.Duration
	EffectLength   time.Duration
}

// CameraConfig contains camera follow and shake settings
type CameraConfig struct {
	FollowSmoothing float64
	ShakeDecay      float64
	ShakeOnHit      float64
	ShakeOnNova     float64
	ShakeFrames     int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Seed       int64
	StartRound int
	ShowRadii  bool
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
	AppName  string
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Difficulty DifficultyConfig
var Wave WaveConfig
var Spawn SpawnConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Bullet BulletConfig
var Missile MissileConfig
var EnemyMissile EnemyMissileConfig
var Knockback KnockbackConfig
var EMP EMPConfig
var Nova NovaConfig
var Shield ShieldConfig
var PowerUp PowerUpConfig
var Drone DroneConfig
var Store StoreConfig
var HUD HUDConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:    960,
		Height:   600,
		TickRate: 60,
		AppName:  "glitchfire",
	}

	Arena = ArenaConfig{
		Width:    1600,
		Height:   1000,
		CellSize: 32,
		Margin:   20,
	}

	Difficulty = DifficultyConfig{
		HealthScaleFactor: 1.15,
		HealthScaleCap:    20,

		SpeedIncreasePerRound: 0.05,

		BaseSpawnTime: 2000 * time.Millisecond,
		MinSpawnTime:  500 * time.Millisecond,
		SpawnScaleCap: 30,

		ScoreScaleFactor: 1.1,

		DamageScalePerRound: 0.1,
		MaxDamageScale:      2.0,

		Special:   ChanceConfig{Base: 0.10, IncreasePerRound: 0.02, Max: 0.30, MinRound: 1},
		Shifter:   ChanceConfig{Base: 0.08, IncreasePerRound: 0.02, Max: 0.25, MinRound: 2},
		Destroyer: ChanceConfig{Base: 0.05, IncreasePerRound: 0.015, Max: 0.20, MinRound: 4},

		BossMinRound:        3,
		BossRoundInterval:   3,
		MaxBossesPerWave:    3,
		MaxConcurrentBosses: 2,
	}

	Wave = WaveConfig{
		BaseRows:           2,
		BaseCols:           3,
		WaveSizeIncrease:   2,
		WaveGrowthInterval: 2,
		MaxPerWave:         40,
	}

	Spawn = SpawnConfig{
		MinDistance:      350,
		MaxDistance:      550,
		ArcWidth:         math.Pi,
		MinSpacing:       40,
		MaxAttempts:      12,
		FallbackDistance: 450,
	}

	Player = PlayerConfig{
		Health:        100,
		Speed:         5,
		Radius:        14,
		ContactRadius: 30,
		FireInterval:  120 * time.Millisecond,
	}

	Bullet = BulletConfig{
		Speed:         12,
		GlitchedSpeed: 18,
		Radius:        4,
		MaxRange:      900,
		MaxPoolSize:   60,
		BaseDamage:    10,

		CritChancePerLevel: 0.1,
		CritMultiplier:     2.0,

		BasePenetration:     1,
		PenetrationPerLevel: 1,

		GlitchedPerLevel:     1,
		GlitchedSearchRadius: 400,
	}

	Missile = MissileConfig{
		Speed:         8,
		TurnRate:      0.1,
		HitDistance:   25,
		BlastRadius:   150,
		BlastDamage:   60,
		Lifetime:      5 * time.Second,
		Cooldown:      time.Second,
		StartingCount: 3,
	}

	EnemyMissile = EnemyMissileConfig{
		Speed:          5,
		Accuracy:       0.85,
		MaxAimOffset:   math.Pi / 3,
		Tracking:       0.02,
		Lifetime:       6 * time.Second,
		ProximityRange: 20,
		Radius:         6,
		Damage:         15,
		ShotDownBonus:  25,
	}

	Knockback = KnockbackConfig{
		Cooldown: 5 * time.Second,
		Radius:   250,
		Duration: 400 * time.Millisecond,
		Strength: 15,
	}

	EMP = EMPConfig{
		Cooldown:       8 * time.Second,
		MaxFields:      2,
		Lifetime:       5 * time.Second,
		PulseInterval:  time.Second,
		Radius:         300,
		ChainRadius:    150,
		ChainChance:    0.5,
		MaxChainDepth:  5,
		FreezeDuration: 1500 * time.Millisecond,
	}

	Nova = NovaConfig{
		ScoreMultiplier: 1.5,
	}

	Shield = ShieldConfig{
		Cooldown: 15 * time.Second,
		Duration: 3 * time.Second,
	}

	PowerUp = PowerUpConfig{
		DropChance:      0.08,
		PickupRadius:    40,
		Lifetime:        10 * time.Second,
		MissilePackSize: 3,
		HealAmount:      20,
		Weights: [PowerUpKindCount]float64{
			PowerUpMissilePack: 0.45,
			PowerUpHeal:        0.30,
			PowerUpDrone:       0.18,
			PowerUpNova:        0.07,
		},
	}

	Drone = DroneConfig{
		OrbitRadius: 80,
		AngularStep: 0.05,
		KillRadius:  25,
		Lifetime:    10 * time.Second,
		MaxActive:   2,
	}

	Store = StoreConfig{
		Upgrades: [UpgradeCount]UpgradeConfig{
			UpgradeDamage:      {Name: "Bullet Damage", BaseCost: 500, CostStep: 250, MaxLevel: 10},
			UpgradeSpeed:       {Name: "Move Speed", BaseCost: 400, CostStep: 200, MaxLevel: 5},
			UpgradeHealth:      {Name: "Max Health", BaseCost: 400, CostStep: 200, MaxLevel: 10},
			UpgradePiercing:    {Name: "Piercing", BaseCost: 800, CostStep: 400, MaxLevel: 5},
			UpgradeSuperBullet: {Name: "Super Bullets", BaseCost: 700, CostStep: 350, MaxLevel: 5},
			UpgradeGlitched:    {Name: "Glitched Bullets", BaseCost: 900, CostStep: 450, MaxLevel: 3},
			UpgradeShield:      {Name: "Shield", BaseCost: 1500, CostStep: 0, MaxLevel: 1},
			UpgradeMissiles:    {Name: "Missile Pack", BaseCost: 300, CostStep: 0, MaxLevel: 99},
		},
		DamagePerLevel:  2,
		SpeedPerLevel:   0.5,
		HealthPerLevel:  20,
		MissilesPerSale: 3,
	}

	HUD = HUDConfig{
		Margin:         10,
		BarWidth:       160,
		BarHeight:      12,
		LineHeight:     16,
		FloatingRise:   30,
		FloatingLength: 800 * time.Millisecond,
		EffectLength:   500 * time.Millisecond,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
		ShakeDecay:      0.9,
		ShakeOnHit:      4,
		ShakeOnNova:     10,
		ShakeFrames:     12,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Seed:       0,
		StartRound: 1,
	}
}
