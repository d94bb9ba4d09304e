package tuner

// hasEnded reports whether a monotonic parameter has reached the end of
// its range for the given direction (§4.3):
//
//	has_ended(p) = (d=up ∧ p≥hi-step) ∨ (d=down ∧ p≤lo+step)
func hasEnded(value, lo, hi, step int64, increasing bool) bool {
	if increasing {
		return value >= hi-step
	}
	return value <= lo+step
}

// enterDirection pre-flips a phase's direction if it is already at the
// wall, so every phase explores a fresh direction on entry (§4.3, §4.6
// "Entering a new phase").
func enterDirection(value, lo, hi, step int64, increasing bool) bool {
	if hasEnded(value, lo, hi, step, increasing) {
		return !increasing
	}
	return increasing
}

// directionOutcome is the result of judging one trial against the
// first-time-flip / exit-on-failure rule (§4.3):
//
//	On the first trial of a phase (aux_index==1) that does not improve,
//	flip direction and continue; on any non-first failure, exit the
//	phase.
type directionOutcome int

const (
	continuePhase directionOutcome = iota
	exitPhase
)

// judgeDirection decides whether to continue exploring the current
// phase (possibly after flipping direction) or exit it, given whether
// this trial improved and whether it was the phase's first trial.
func judgeDirection(improved bool, isFirstTrial bool) directionOutcome {
	if improved {
		return continuePhase
	}
	if isFirstTrial {
		return continuePhase // caller must also flip direction
	}
	return exitPhase
}
