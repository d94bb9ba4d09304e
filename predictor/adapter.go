package predictor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/blosc/btune/probe"
)

// Category is a (codec, filter) pair the classifier narrowed the tuner
// to, indexing Metadata.Categories (§6.4).
type Category struct {
	Codec  int
	Filter int
}

// Adapt implements the Predictor Adapter of §4.9: it probes every block
// of chunk 0, normalizes the two probe features, tallies the argmax
// vote across blocks, and returns the winning category. Only ever
// invoked for the first chunk (§4.9 "Invoked only when the first chunk
// is being processed").
func Adapt(blocks [][]byte, meta Metadata, p Predictor) (Category, error) {
	if _, isNull := p.(Null); p == nil || isNull {
		return Category{}, fmt.Errorf("%w: nil or Null predictor", ErrUnavailable)
	}
	if len(meta.Categories) == 0 {
		return Category{}, fmt.Errorf("%w: empty category table", ErrUnavailable)
	}

	votes := make([]int, len(meta.Categories))
	for _, block := range blocks {
		r := probe.Probe(block)
		cratio := normalizeChain(r.Cratio, meta.Cratio)
		cspeed := normalizeChain(r.Cspeed, meta.Speed)

		scores := p.Predict([2]float32{float32(cratio), float32(cspeed)})
		s64 := make([]float64, len(scores))
		for i, v := range scores {
			s64[i] = float64(v)
		}
		winner := floats.MaxIdx(s64)
		if winner < len(votes) {
			votes[winner]++
		}
	}

	winner := floats.MaxIdx(intsToFloats(votes))
	return Category{Codec: meta.Categories[winner][0], Filter: meta.Categories[winner][1]}, nil
}

func intsToFloats(in []int) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}
