package shapesum

// similarityThreshold is the largest symmetric-difference ratio that still
// counts as a match. The boundary is inclusive.
const similarityThreshold = 0.1

// Compare judges whether the additive composition of a and b matches
// target. Both sides are reduced to centered occupancy bitmaps; with
// sumN, tgtN and bothN the on-pixel counts of the sum, the target and
// their intersection, the symmetric difference sumN + tgtN - 2*bothN,
// taken as a fraction of tgtN, must not exceed 0.1.
//
// An empty target matches only an empty sum. (The ratio is undefined at
// tgtN == 0; this policy replaces NaN propagation, which could never
// report a match.)
func Compare(a, b, target *Shape) bool {
	tgt := occupancy(target).centered()
	sum, _ := sumBitmap(a, b)
	sum = sum.centered()

	sumN, tgtN, bothN := 0, 0, 0
	for i, on := range sum.bits {
		if on {
			sumN++
		}
		if tgt.bits[i] {
			tgtN++
			if on {
				bothN++
			}
		}
	}
	if tgtN == 0 {
		return sumN == 0
	}
	diff := sumN + tgtN - 2*bothN
	ratio := float64(diff) / float64(tgtN)
	logger().Debug("similarity judged",
		"sum", sumN, "target", tgtN, "both", bothN, "ratio", ratio)
	return ratio <= similarityThreshold
}
