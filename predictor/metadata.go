package predictor

import (
	"encoding/json"
	"fmt"
	"os"
)

// Stats holds the externally-supplied per-feature normalization
// statistics of §6.4.
type Stats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Metadata is the §6.4 JSON schema: normalization stats for the two
// probe features plus the category table the classifier's argmax
// output indexes into.
type Metadata struct {
	Cratio     Stats   `json:"cratio"`
	Speed      Stats   `json:"speed"`
	Categories [][2]int `json:"categories"`
}

// LoadMetadata reads and parses the BTUNE_METADATA file (§6.3). A
// missing or malformed file returns ErrUnavailable.
func LoadMetadata(path string) (Metadata, error) {
	if path == "" {
		return Metadata{}, fmt.Errorf("%w: no metadata path configured", ErrUnavailable)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(m.Categories) == 0 {
		return Metadata{}, fmt.Errorf("%w: metadata has no categories", ErrUnavailable)
	}
	return m, nil
}

// normalizeChain applies the two-stage normalization of §4.9 step 2:
// first a z-score, then a min/max rescale of the z-score, both drawn
// from the same externally-supplied Stats block. Guards against
// zero Std/Max (degenerate metadata) by returning 0 rather than
// dividing by zero.
func normalizeChain(v float64, s Stats) float64 {
	x := v
	if s.Std == 0 {
		return 0
	}
	x = (x - s.Mean) / s.Std
	if s.Max == 0 {
		return 0
	}
	x = (x - s.Min) / s.Max
	return x
}
