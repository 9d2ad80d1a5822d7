package config

// BotDifficulty affects how aggressively the autopilot uses abilities
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for autopilot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Ticks between decisions
	EngageRange      float64 // Distance to start shooting
	DangerRange      float64 // Enemies closer than this trigger a retreat
	KnockbackCrowd   int     // Enemies within DangerRange before using knockback
	EMPCrowd         int     // Enemies within EngageRange before dropping an EMP
	RetreatThreshold float64 // Health % below which the bot always retreats
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds autopilot configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30, // 0.5 second reaction time
				EngageRange:      350,
				DangerRange:      90,
				KnockbackCrowd:   4,
				EMPCrowd:         8,
				RetreatThreshold: 0.2,
			},
			BotDifficultyNormal: {
				ReactionDelay:    15,
				EngageRange:      450,
				DangerRange:      120,
				KnockbackCrowd:   3,
				EMPCrowd:         6,
				RetreatThreshold: 0.3,
			},
			BotDifficultyHard: {
				ReactionDelay:    5, // Near-instant reaction
				EngageRange:      550,
				DangerRange:      150,
				KnockbackCrowd:   2,
				EMPCrowd:         4,
				RetreatThreshold: 0.15,
			},
		},
	}
}
