package assessment

// Pre-test score boundaries for post-test difficulty. Both boundaries
// are exclusive: exactly 50 and exactly 80 both land on medium.
const (
	easyBelowScore = 50.0
	hardAboveScore = 80.0
)

// Streak thresholds for in-session difficulty adjustment.
const (
	easyAfterWrong   = 2
	hardAfterCorrect = 3
)

// PostTestDifficulty maps a pre-test score percentage to the difficulty
// every post-test question is pinned to.
func PostTestDifficulty(preScore float64) Difficulty {
	switch {
	case preScore < easyBelowScore:
		return Easy
	case preScore > hardAboveScore:
		return Hard
	default:
		return Medium
	}
}

// AdaptiveDifficulty maps the current answer streak to a difficulty.
// A wrong streak dominates: two consecutive misses drop to easy even
// if a long correct run preceded them.
func AdaptiveDifficulty(correctStreak, wrongStreak int) Difficulty {
	switch {
	case wrongStreak >= easyAfterWrong:
		return Easy
	case correctStreak >= hardAfterCorrect:
		return Hard
	default:
		return Medium
	}
}
