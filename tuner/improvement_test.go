package tuner

import "testing"

func TestImproved_DegenerateChunkIsSpecial(t *testing.T) {
	improved, special := Improved(CompBalanced, 1.0, 1.0, 0.5, 2.0, 10, 16, 4)
	if improved {
		t.Fatal("expected improved=false for a degenerate chunk")
	}
	if !special {
		t.Fatal("expected special=true for a degenerate chunk")
	}
}

func TestImproved_HCR_RequiresBetterCratio(t *testing.T) {
	improved, special := Improved(HCR, 1.0, 2.0, 1.0, 2.5, 1<<20, 16, 4)
	if !improved {
		t.Fatal("expected improvement when cratio strictly increases under HCR")
	}
	if special {
		t.Fatal("expected special=false for a normal-size chunk")
	}

	improved, _ = Improved(HCR, 1.0, 2.0, 1.0, 2.0, 1<<20, 16, 4)
	if improved {
		t.Fatal("expected no improvement when cratio does not increase under HCR")
	}
}

func TestImproved_Balanced_FirstThresholdPair(t *testing.T) {
	// cratioCoef > 1 and scoreCoef > 1 satisfies the first disjunct.
	improved, _ := Improved(CompBalanced, 1.0, 1.0, 0.5, 1.5, 1<<20, 16, 4)
	if !improved {
		t.Fatal("expected improvement: both cratio and score strictly better")
	}
}

func TestImproved_Balanced_NoThresholdSatisfied(t *testing.T) {
	improved, _ := Improved(CompBalanced, 1.0, 1.0, 1.0, 1.0, 1<<20, 16, 4)
	if improved {
		t.Fatal("expected no improvement: identical score and cratio")
	}
}

func TestImproved_HSP_TradesCratioForSpeed(t *testing.T) {
	// cratioCoef 0.65 (worse ratio) but scoreCoef 2.22 (much faster) satisfies
	// the second HSP disjunct {0.5, 2}.
	improved, _ := Improved(HSP, 2.0, 2.0, 0.9, 1.3, 1<<20, 16, 4)
	if !improved {
		t.Fatal("expected HSP to trade ratio for a large speed win")
	}
}

func TestThreadsImproved_SelectsCompOrDecompTime(t *testing.T) {
	if !ThreadsImproved(true, 10.0, 5.0, 9.0, 5.0) {
		t.Fatal("expected comp-side improvement when newCTime < bestCTime")
	}
	if ThreadsImproved(true, 10.0, 5.0, 10.0, 4.0) {
		t.Fatal("comp-side judging must ignore dtime")
	}
	if !ThreadsImproved(false, 10.0, 5.0, 10.0, 4.0) {
		t.Fatal("expected decomp-side improvement when newDTime < bestDTime")
	}
}
