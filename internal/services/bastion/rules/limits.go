package rules

// limitSteps lists the special facility allowance by character level, in
// ascending level order.
var limitSteps = []struct {
	level int
	limit int
}{
	{5, 2},
	{9, 4},
	{13, 5},
	{17, 6},
}

// SpecialFacilityLimit returns how many special facilities a character of
// the given level may hold. Characters below level 5 hold none.
func SpecialFacilityLimit(level int) int {
	limit := 0
	for _, step := range limitSteps {
		if level < step.level {
			break
		}
		limit = step.limit
	}
	return limit
}
