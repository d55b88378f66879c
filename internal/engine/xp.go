package engine

// ExpPerLevel is the width of one level band. Level N spans
// totalExp in [(N-1)*100, N*100-1].
const ExpPerLevel = 100

// Level returns the level for the given total experience. Level 1 starts at
// zero experience; there is no upper bound.
func Level(totalExp int) int {
	if totalExp < 0 {
		totalExp = 0
	}
	return totalExp/ExpPerLevel + 1
}

// CurrentLevelExp returns progress within the current level, in [0, 99].
func CurrentLevelExp(totalExp int) int {
	if totalExp < 0 {
		totalExp = 0
	}
	return totalExp % ExpPerLevel
}

// ExpToNextLevel returns the experience still needed to climb, in [1, 100].
// At an exact level boundary it reports a full 100.
func ExpToNextLevel(totalExp int) int {
	return ExpPerLevel - CurrentLevelExp(totalExp)
}

// ProgressPercent is CurrentLevelExp clamped to [0, 100] for display.
func ProgressPercent(totalExp int) int {
	p := CurrentLevelExp(totalExp)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
