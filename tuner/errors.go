package tuner

import "errors"

// Sentinel errors for the recoverable error taxonomy (§7). These
// are never returned from the hot path (next_cparams/update); they
// surface only from construction and from the Predictor Adapter, where
// the caller may log and continue with defaults.
var (
	// ErrConfigDefaulted indicates an unrecognized enum value in
	// configuration was replaced with its default. Not fatal.
	ErrConfigDefaulted = errors.New("btune: config value defaulted")

	// ErrPredictorUnavailable indicates the Predictor Adapter could not
	// load metadata or a model (missing env var, missing file, load
	// failure). The tuner proceeds with its default candidate sets.
	ErrPredictorUnavailable = errors.New("btune: predictor unavailable")
)
