package predictor

import (
	"bytes"
	"errors"
	"testing"
)

// fakePredictor always votes for a fixed category index, regardless of
// features, so tests can control the adapter's outcome deterministically.
type fakePredictor struct {
	winner int
}

func (f fakePredictor) Predict(_ [2]float32) [NCodecs]float32 {
	var out [NCodecs]float32
	out[f.winner] = 1
	return out
}

func flatStats() Stats { return Stats{Mean: 0, Std: 1, Min: 0, Max: 1} }

func TestAdapt_NilPredictorIsUnavailable(t *testing.T) {
	_, err := Adapt([][]byte{{1, 2, 3, 4}}, Metadata{Categories: [][2]int{{0, 0}}}, nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for a nil predictor, got %v", err)
	}
}

func TestAdapt_EmptyCategoryTableIsUnavailable(t *testing.T) {
	_, err := Adapt([][]byte{{1, 2, 3, 4}}, Metadata{}, fakePredictor{})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for an empty category table, got %v", err)
	}
}

func TestAdapt_MajorityVoteAcrossBlocks(t *testing.T) {
	meta := Metadata{
		Cratio:     flatStats(),
		Speed:      flatStats(),
		Categories: [][2]int{{0, 0}, {4, 2}, {1, 3}},
	}
	blocks := [][]byte{
		bytes.Repeat([]byte{0xAA}, 512),
		bytes.Repeat([]byte{0xBB}, 512),
		bytes.Repeat([]byte{0xCC}, 512),
	}
	cat, err := Adapt(blocks, meta, fakePredictor{winner: 1})
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	if cat.Codec != 4 || cat.Filter != 2 {
		t.Fatalf("expected category {4,2} to win unanimously, got %+v", cat)
	}
}
