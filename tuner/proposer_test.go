package tuner

import (
	"testing"

	"github.com/blosc/btune/host"
)

func newTestTuner() *Tuner {
	cfg := DefaultConfig()
	cfg.MaxThreads = 4
	return New(cfg)
}

func TestCodecFilterCombos_CoversSplitAndNoSplit(t *testing.T) {
	tu := newTestTuner()
	want := len(tu.codecs) * len(tu.filters) * 2
	if got := tu.codecFilterCombos(); got != want {
		t.Fatalf("codecFilterCombos() = %d, want %d", got, want)
	}
}

func TestProposeCodecFilter_EnumeratesEveryCombo(t *testing.T) {
	tu := newTestTuner()
	total := tu.codecFilterCombos()
	seen := make(map[string]bool)
	for i := 0; i < total; i++ {
		tu.auxIndex = i + 1
		tu.aux = tu.best.Clone()
		tu.proposeCodecFilter()
		key := tu.aux.CompCode.String() + "/" + tu.aux.Filter.String() + "/" + tu.aux.SplitMode.String()
		seen[key] = true
	}
	if len(seen) == 0 {
		t.Fatal("expected at least one distinct combination")
	}
}

func TestProposeCodecFilter_BlosclzAlwaysSplits(t *testing.T) {
	tu := newTestTuner()
	total := tu.codecFilterCombos()
	for i := 0; i < total; i++ {
		tu.auxIndex = i + 1
		tu.aux = tu.best.Clone()
		tu.proposeCodecFilter()
		if tu.aux.CompCode == BLOSCLZ && tu.aux.SplitMode != Split {
			t.Fatalf("expected BLOSCLZ trial %d to force split mode", i)
		}
	}
}

func TestProposeShuffleSize_RespectsBounds(t *testing.T) {
	tu := newTestTuner()
	tu.aux.Filter = SHUFFLE
	tu.aux.ShuffleSize = MaxShuffle
	tu.aux.IncreasingShuffle = true
	tu.proposeShuffleSize()
	if tu.aux.ShuffleSize != MaxShuffle {
		t.Fatalf("expected shuffle size to stay capped at %d, got %d", MaxShuffle, tu.aux.ShuffleSize)
	}

	tu.aux.ShuffleSize = MinShuffle
	tu.aux.IncreasingShuffle = false
	tu.proposeShuffleSize()
	if tu.aux.ShuffleSize != MinShuffle {
		t.Fatalf("expected shuffle size to stay floored at %d, got %d", MinShuffle, tu.aux.ShuffleSize)
	}
}

func TestProposeCLevel_ClampedToRange(t *testing.T) {
	tu := newTestTuner()
	tu.stepSize = 2
	tu.aux.CLevel = MaxCLevel
	tu.aux.IncreasingCLevel = true
	tu.proposeCLevel()
	if tu.aux.CLevel != MaxCLevel {
		t.Fatalf("expected clevel clamped at %d, got %d", MaxCLevel, tu.aux.CLevel)
	}

	tu.aux.CLevel = MinCLevel
	tu.aux.IncreasingCLevel = false
	tu.proposeCLevel()
	if tu.aux.CLevel != MinCLevel {
		t.Fatalf("expected clevel clamped at %d, got %d", MinCLevel, tu.aux.CLevel)
	}
}

func TestProposeBlockSize_ShiftsWithinSourceBound(t *testing.T) {
	tu := newTestTuner()
	tu.sourceSize = 1 << 18
	tu.stepSize = 1
	tu.aux.BlockSize = MinBlock
	tu.aux.IncreasingBlock = true
	tu.proposeBlockSize()
	if tu.aux.BlockSize <= MinBlock {
		t.Fatalf("expected blocksize to grow, got %d", tu.aux.BlockSize)
	}
	if tu.aux.BlockSize > tu.sourceSize {
		t.Fatalf("expected blocksize capped at sourcesize, got %d > %d", tu.aux.BlockSize, tu.sourceSize)
	}
}

func TestClampAux_InvokesAutoBlockSizeWhenZero(t *testing.T) {
	tu := newTestTuner()
	tu.sourceSize = 1 << 20
	tu.aux.BlockSize = 0
	tu.aux.CLevel = 5
	tu.clampAux()
	if tu.aux.BlockSize == 0 {
		t.Fatal("expected clampAux to invoke Auto-Blocksize for blocksize==0")
	}
}

func TestWriteContext_BytedeltaOccupiesTwoSlots(t *testing.T) {
	p := DefaultCParams(4, 4)
	p.Filter = BYTEDELTA
	ctx := &host.Context{}
	writeContext(ctx, nil, p, 4)
	if ctx.Filters[host.SlotPrimary] != int(BYTEDELTA) {
		t.Fatalf("expected bytedelta in primary slot, got %d", ctx.Filters[host.SlotPrimary])
	}
	if ctx.Filters[host.SlotSecondary] != int(SHUFFLE) {
		t.Fatalf("expected shuffle in secondary slot, got %d", ctx.Filters[host.SlotSecondary])
	}
	if ctx.FiltersMeta[host.SlotPrimary] != 4 {
		t.Fatalf("expected typesize recorded in primary slot meta, got %d", ctx.FiltersMeta[host.SlotPrimary])
	}
}

func TestWriteContext_PlainFilterOccupiesOneSlot(t *testing.T) {
	p := DefaultCParams(4, 4)
	p.Filter = SHUFFLE
	ctx := &host.Context{}
	writeContext(ctx, nil, p, 4)
	if ctx.Filters[host.SlotPrimary] != int(SHUFFLE) {
		t.Fatalf("expected shuffle in primary slot, got %d", ctx.Filters[host.SlotPrimary])
	}
	if ctx.Filters[host.SlotSecondary] != int(NOFILTER) {
		t.Fatalf("expected secondary slot empty, got %d", ctx.Filters[host.SlotSecondary])
	}
}
