package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionMissile
	ActionKnockback
	ActionEMP
	ActionShield
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionContinue
	ActionCount // Must be last - used for array sizing
)
