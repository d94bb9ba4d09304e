package tuner

import "testing"

func TestDefaultCParams_ClampsThreadsToMax(t *testing.T) {
	got := DefaultCParams(4, 1)
	if got.NThreadsComp != 1 || got.NThreadsDecomp != 1 {
		t.Fatalf("expected threads clamped to MaxThreads=1, got comp=%d decomp=%d", got.NThreadsComp, got.NThreadsDecomp)
	}
}

func TestCParams_Clone_IsIndependentCopy(t *testing.T) {
	a := DefaultCParams(4, 8)
	b := a.Clone()
	b.CLevel = 9
	if a.CLevel == b.CLevel {
		t.Fatal("expected Clone to produce an independent copy")
	}
}

func TestMinShuffleFor(t *testing.T) {
	if minShuffleFor(BITSHUFFLE) != MinBitShuffle {
		t.Fatalf("expected bitshuffle floor %d", MinBitShuffle)
	}
	if minShuffleFor(SHUFFLE) != MinShuffle {
		t.Fatalf("expected byte shuffle floor %d", MinShuffle)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16} {
		if !isPowerOfTwo(n) {
			t.Errorf("expected %d to be a power of two", n)
		}
	}
	for _, n := range []int{0, 3, 5, 6, -1} {
		if isPowerOfTwo(n) {
			t.Errorf("expected %d not to be a power of two", n)
		}
	}
}

func TestClampCLevel_NeverNineWithZSTD(t *testing.T) {
	got := clampCLevel(9, ZSTD, HSP)
	if got >= MaxCLevel {
		t.Fatalf("expected clevel < %d for ZSTD, got %d", MaxCLevel, got)
	}
}

func TestClampCLevel_HCRCap(t *testing.T) {
	got := clampCLevel(9, BLOSCLZ, HCR)
	if got > HCRMaxCLevel {
		t.Fatalf("expected clevel <= %d under HCR, got %d", HCRMaxCLevel, got)
	}
}

func TestClampCLevel_BalancedZCap(t *testing.T) {
	got := clampCLevel(9, ZLIB, CompBalanced)
	if got > BalancedZCLevel {
		t.Fatalf("expected clevel <= %d for ZLIB under BALANCED, got %d", BalancedZCLevel, got)
	}
}

func TestClampThreads_Bounds(t *testing.T) {
	if clampThreads(0, 8) != MinThreads {
		t.Fatalf("expected floor at MinThreads")
	}
	if clampThreads(100, 8) != 8 {
		t.Fatalf("expected ceiling at maxThreads")
	}
}
