package tuner

// thresholdPair is one (cratio_threshold, score_threshold) disjunct of
// the Improvement Predicate (§4.2, §9 "encode the HSP/BALANCED
// disjunctions as a table of pairs evaluated in order").
type thresholdPair struct {
	cratioMin float64
	scoreMin  float64
}

var hspThresholds = []thresholdPair{
	{cratioMin: 1, scoreMin: 1},
	{cratioMin: 0.5, scoreMin: 2},
	{cratioMin: 0.67, scoreMin: 1.3},
	{cratioMin: 2, scoreMin: 0.7},
}

var balancedThresholds = []thresholdPair{
	{cratioMin: 1, scoreMin: 1},
	{cratioMin: 1.1, scoreMin: 0.8},
	{cratioMin: 1.3, scoreMin: 0.5},
}

func anyThresholdSatisfied(thresholds []thresholdPair, cratioCoef, scoreCoef float64) bool {
	for _, t := range thresholds {
		if cratioCoef > t.cratioMin && scoreCoef > t.scoreMin {
			return true
		}
	}
	return false
}

// Improved implements the Improvement Predicate of §4.2. bestScore and
// bestCratio are the current best's measurements; newScore/newCratio
// are the trial's. cbytes/overhead/typeSize implement the degenerate-
// chunk special case, which forces improved=false regardless of the
// thresholds and reports special=true so callers can log "S" (§7).
func Improved(mode CompMode, bestScore, bestCratio, newScore, newCratio float64, cbytes, overhead int64, typeSize int) (improved bool, special bool) {
	if cbytes <= overhead+int64(typeSize) {
		return false, true
	}

	scoreCoef := bestScore / newScore
	cratioCoef := newCratio / bestCratio

	switch mode {
	case HCR:
		return cratioCoef > 1, false
	case HSP:
		return anyThresholdSatisfied(hspThresholds, cratioCoef, scoreCoef), false
	default: // CompBalanced
		return anyThresholdSatisfied(balancedThresholds, cratioCoef, scoreCoef), false
	}
}

// ThreadsImproved judges a THREADS-phase trial, bypassing the usual
// predicate in favor of the raw time being tuned (§4.2 "During THREADS
// phase the predicate is bypassed"). forComp selects ctime vs dtime.
// Lower is better; dtime==0 (host does not measure decompression time)
// makes this a no-op, as §9 predicts.
func ThreadsImproved(forComp bool, bestCTime, bestDTime, newCTime, newDTime float64) bool {
	if forComp {
		return newCTime < bestCTime
	}
	return newDTime < bestDTime
}
