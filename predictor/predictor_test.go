package predictor

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingPathIsUnavailable(t *testing.T) {
	_, err := Load("")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for an empty path, got %v", err)
	}
}

func TestLoad_MissingFileIsUnavailable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for a missing file, got %v", err)
	}
}

func TestLoad_ParsesLinearPredictor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")

	var want LinearPredictor
	want.Weights[0] = [2]float32{1, 2}
	want.Bias[0] = 0.5
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	lp, ok := p.(*LinearPredictor)
	if !ok {
		t.Fatalf("expected *LinearPredictor, got %T", p)
	}
	if lp.Weights[0] != [2]float32{1, 2} || lp.Bias[0] != 0.5 {
		t.Fatalf("unexpected parsed predictor: %+v", lp)
	}
}

func TestLinearPredictor_Predict(t *testing.T) {
	var p LinearPredictor
	p.Weights[2] = [2]float32{2, 3}
	p.Bias[2] = 1
	out := p.Predict([2]float32{1, 1})
	if out[2] != 6 {
		t.Fatalf("expected category 2 score 6 (1 + 2*1 + 3*1), got %v", out[2])
	}
}
