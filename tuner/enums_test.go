package tuner

import (
	"errors"
	"testing"
)

func TestParsePerfMode(t *testing.T) {
	tests := []struct {
		in   string
		want PerfMode
		err  bool
	}{
		{"comp", PerfComp, false},
		{"decomp", PerfDecomp, false},
		{"balanced", PerfBalanced, false},
		{"", PerfBalanced, false},
		{"bogus", PerfBalanced, true},
	}
	for _, tt := range tests {
		got, err := ParsePerfMode(tt.in)
		if got != tt.want {
			t.Errorf("ParsePerfMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if tt.err != (err != nil) {
			t.Errorf("ParsePerfMode(%q) error = %v, wantErr %v", tt.in, err, tt.err)
		}
		if tt.err && !errors.Is(err, ErrConfigDefaulted) {
			t.Errorf("ParsePerfMode(%q) expected ErrConfigDefaulted, got %v", tt.in, err)
		}
	}
}

func TestParseCompMode(t *testing.T) {
	got, err := ParseCompMode("hcr")
	if got != HCR || err != nil {
		t.Fatalf("ParseCompMode(hcr) = %v, %v", got, err)
	}
	got, err = ParseCompMode("nonsense")
	if got != CompBalanced || !errors.Is(err, ErrConfigDefaulted) {
		t.Fatalf("expected default+ErrConfigDefaulted for unknown comp mode, got %v, %v", got, err)
	}
}

func TestParseRepeatMode(t *testing.T) {
	got, err := ParseRepeatMode("repeat_all")
	if got != RepeatAll || err != nil {
		t.Fatalf("ParseRepeatMode(repeat_all) = %v, %v", got, err)
	}
	got, err = ParseRepeatMode("")
	if got != Stop || err != nil {
		t.Fatalf("expected empty string to default to Stop without error, got %v, %v", got, err)
	}
}

func TestPhase_String(t *testing.T) {
	if CodecFilterPhase.String() != "CODEC_FILTER" {
		t.Fatalf("unexpected phase string: %s", CodecFilterPhase.String())
	}
	if StopPhase.String() != "STOP" {
		t.Fatalf("unexpected phase string: %s", StopPhase.String())
	}
}
