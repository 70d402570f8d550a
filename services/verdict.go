package services

import "math"

// Verdict classifies the gap between the listed and the predicted rent.
type Verdict string

const (
	VerdictFair        Verdict = "FAIRLY PRICED"
	VerdictOverpriced  Verdict = "OVERPRICED"
	VerdictUnderpriced Verdict = "UNDERPRICED"
)

// FairThreshold is the absolute rent gap (Rs.) below which a listing counts
// as fairly priced. Fixed, not configurable.
const FairThreshold = 2000

// Classify returns the verdict for a predicted/listed rent pair plus the
// gap magnitude. Gaps of exactly FairThreshold are not fair. Pure and total
// over all numeric inputs.
func Classify(predicted, actual float64) (Verdict, float64) {
	diff := actual - predicted
	switch {
	case math.Abs(diff) < FairThreshold:
		return VerdictFair, math.Abs(diff)
	case diff > 0:
		return VerdictOverpriced, diff
	default:
		return VerdictUnderpriced, -diff
	}
}
