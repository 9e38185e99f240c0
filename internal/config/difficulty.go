package config

// DifficultyPreset is a named tuning level applied on top of the loaded
// configuration.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values (including "")
// return DifficultyNormal with ok=false so callers can warn.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	}
	return DifficultyNormal, false
}

// ApplyPinballPreset adjusts the physics and scoring knobs for a preset.
// Normal leaves the loaded config untouched. The table layout and the
// cooldown windows are never changed by presets.
func ApplyPinballPreset(cfg *PinballConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Gravity = 0.17
		cfg.Physics.Friction = 0.994
		cfg.Flippers.HitPower = 8.0
		cfg.Scoring.MultiplierStep = 0.3
	case DifficultyHard:
		cfg.Physics.Gravity = 0.26
		cfg.Physics.Friction = 0.989
		cfg.Flippers.HitPower = 6.2
		cfg.Scoring.MultiplierStep = 0.15
	}
}
