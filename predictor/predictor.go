// Package predictor adapts the Entropy Probe's per-block instrumentation
// into a codec/filter category via an external classifier (§4.9,
// §6.5). The classifier itself is modeled as a narrow capability
// interface (§9 design note): BTune never trains or embeds one.
package predictor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// NCodecs is the fixed output width of the classifier (§6.5).
const NCodecs = 15

// ErrUnavailable is returned when metadata or a model cannot be loaded;
// callers fall back to the tuner's default candidate sets (§7).
var ErrUnavailable = errors.New("predictor: unavailable")

// Predictor is a black box: input a two-element normalized feature
// vector, output a score per codec/filter category, argmax wins (§6.5).
type Predictor interface {
	Predict(features [2]float32) [NCodecs]float32
}

// Null is the zero predictor, consulted only as a type-safe placeholder
// — the adapter treats a Null the same as "unavailable" and never calls
// Predict on it.
type Null struct{}

func (Null) Predict(_ [2]float32) [NCodecs]float32 { return [NCodecs]float32{} }

// LinearPredictor is a minimal concrete Predictor: a 2-input linear
// model per category. The real BTune loads a trained classifier through
// an external ML inference runtime (BTUNE_MODEL_* in §6.3); no such
// runtime is grounded in this module's dependency pack (see DESIGN.md),
// so LinearPredictor is the stand-in that satisfies the same contract
// and the same on-disk loading path.
type LinearPredictor struct {
	Weights [NCodecs][2]float32 `json:"weights"`
	Bias    [NCodecs]float32    `json:"bias"`
}

func (p *LinearPredictor) Predict(features [2]float32) [NCodecs]float32 {
	var out [NCodecs]float32
	for i := range out {
		out[i] = p.Bias[i] + p.Weights[i][0]*features[0] + p.Weights[i][1]*features[1]
	}
	return out
}

// Load reads a LinearPredictor from path (the BTUNE_MODEL_HSP /
// BTUNE_MODEL_BALANCED / BTUNE_MODEL_HCR file, selected by comp_mode
// per §6.3). A missing or malformed file returns ErrUnavailable; the
// tuner proceeds with its default candidate sets (§7).
func Load(path string) (Predictor, error) {
	if path == "" {
		return Null{}, fmt.Errorf("%w: no model path configured", ErrUnavailable)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Null{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var p LinearPredictor
	if err := json.Unmarshal(data, &p); err != nil {
		return Null{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &p, nil
}
