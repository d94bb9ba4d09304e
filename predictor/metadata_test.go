package predictor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMetadata_MissingPathIsUnavailable(t *testing.T) {
	_, err := LoadMetadata("")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for an empty path, got %v", err)
	}
}

func TestLoadMetadata_RejectsEmptyCategoryTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.json")
	if err := os.WriteFile(path, []byte(`{"cratio":{"mean":1,"std":1,"min":0,"max":1},"speed":{"mean":1,"std":1,"min":0,"max":1},"categories":[]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadMetadata(path)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for an empty category table, got %v", err)
	}
}

func TestLoadMetadata_ParsesValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.json")
	body := `{
		"cratio": {"mean": 2.0, "std": 0.5, "min": 1.0, "max": 4.0},
		"speed": {"mean": 1e6, "std": 1e5, "min": 1e5, "max": 1e7},
		"categories": [[0, 1], [4, 2]]
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err := LoadMetadata(path)
	if err != nil {
		t.Fatalf("LoadMetadata: %v", err)
	}
	if len(m.Categories) != 2 || m.Categories[1] != [2]int{4, 2} {
		t.Fatalf("unexpected categories: %+v", m.Categories)
	}
	if m.Cratio.Mean != 2.0 {
		t.Fatalf("unexpected cratio mean: %v", m.Cratio.Mean)
	}
}

func TestNormalizeChain_GuardsZeroStdAndMax(t *testing.T) {
	if got := normalizeChain(5, Stats{Std: 0}); got != 0 {
		t.Fatalf("expected 0 when Std==0, got %v", got)
	}
	if got := normalizeChain(5, Stats{Mean: 1, Std: 1, Min: 0, Max: 0}); got != 0 {
		t.Fatalf("expected 0 when Max==0, got %v", got)
	}
}

func TestNormalizeChain_ZScoreThenRescale(t *testing.T) {
	s := Stats{Mean: 2, Std: 2, Min: 0, Max: 2}
	got := normalizeChain(4, s) // z = (4-2)/2 = 1; (1-0)/2 = 0.5
	if got != 0.5 {
		t.Fatalf("normalizeChain = %v, want 0.5", got)
	}
}
