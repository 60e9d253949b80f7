package sequencer

// Difficulty is the question difficulty requested from the generator.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// BandingPolicy maps a curriculum position to a difficulty level. The exact
// banding is policy, not core logic, so it stays behind an interface.
type BandingPolicy interface {
	// Difficulty returns the level for the topic at pointer within a
	// curriculum of total topics.
	Difficulty(pointer, total int) Difficulty
}

// ThirdsPolicy bands the curriculum into equal thirds:
// beginner, intermediate, advanced. The default policy.
type ThirdsPolicy struct{}

func (ThirdsPolicy) Difficulty(pointer, total int) Difficulty {
	if total <= 0 {
		return DifficultyBeginner
	}
	if pointer < 0 {
		pointer = 0
	}
	if pointer >= total {
		pointer = total - 1
	}

	switch {
	case pointer*3 < total:
		return DifficultyBeginner
	case pointer*3 < total*2:
		return DifficultyIntermediate
	default:
		return DifficultyAdvanced
	}
}

// FixedPolicy always returns the same difficulty. Used when a config
// override pins the band.
type FixedPolicy struct {
	Level Difficulty
}

func (p FixedPolicy) Difficulty(pointer, total int) Difficulty {
	return p.Level
}
