package level

const (
	// Min and Max bound every computed level.
	Min = 1
	Max = 10

	pointsPerLevel = 100
)

// ForPoints maps cumulative points to a level in [Min, Max]. Every full
// hundred points starts a new level, so 0-100 points is level 1 and 101
// points is level 2.
func ForPoints(points int) int {
	lvl := (points + pointsPerLevel - 1) / pointsPerLevel
	if lvl < Min {
		return Min
	}
	if lvl > Max {
		return Max
	}
	return lvl
}
