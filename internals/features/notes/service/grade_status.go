package service

// Grade status bands. Thresholds are inclusive lower bounds; anything
// below the lowest band (including out-of-range input, no clamping)
// falls through to D.
const (
	GradeStatusA = "A" // >= 18
	GradeStatusB = "B" // >= 15
	GradeStatusC = "C" // >= 12
	GradeStatusD = "D" // below 12
)

func DetermineGradeStatus(grade float64) string {
	switch {
	case grade >= 18:
		return GradeStatusA
	case grade >= 15:
		return GradeStatusB
	case grade >= 12:
		return GradeStatusC
	default:
		return GradeStatusD
	}
}
