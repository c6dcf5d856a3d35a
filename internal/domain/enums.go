package domain

import "fmt"

// Difficulty selects how many clues generation leaves on the board.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

var difficultyNames = [...]string{"easy", "medium", "hard", "expert"}

func (d Difficulty) String() string {
	if d < Easy || d > Expert {
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// ParseDifficulty maps a user-supplied name to a Difficulty. The empty
// string means Medium so flags and request fields can omit it.
func ParseDifficulty(s string) (Difficulty, error) {
	if s == "" {
		return Medium, nil
	}
	for i, name := range difficultyNames {
		if s == name {
			return Difficulty(i), nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// StrategyTier caps which solving techniques hints may draw on.
type StrategyTier int

const (
	StrategySingles  StrategyTier = iota // naked and hidden singles
	StrategyPairs                        // naked/hidden pairs
	StrategyAdvanced                     // pointing, claiming, triples
	StrategyXWing                        // fish patterns
)

func (t StrategyTier) String() string {
	switch t {
	case StrategySingles:
		return "singles"
	case StrategyPairs:
		return "pairs"
	case StrategyAdvanced:
		return "advanced"
	case StrategyXWing:
		return "x-wing"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}
