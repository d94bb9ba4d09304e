package tuner

import "github.com/blosc/btune/host"

// propose dispatches to the phase-specific trial generator (§4.4). Each
// phase starts from t.aux, already a clone of t.best (NextCParams), and
// mutates one or more of its fields.
func (t *Tuner) propose() {
	switch t.state {
	case CodecFilterPhase:
		t.proposeCodecFilter()
	case ShuffleSizePhase:
		t.proposeShuffleSize()
	case ThreadsPhase:
		t.proposeThreads()
	case CLevelPhase:
		t.proposeCLevel()
	case BlockSizePhase:
		t.proposeBlockSize()
	case MemcpyPhase:
		t.aux.CLevel = 0
	case WaitingPhase:
		t.nwaitings++
	case StopPhase:
		// no further proposals (§4.4)
	}
}

// codecFilterCombos is the size of the codecs × filters × {split,
// no-split} Cartesian product enumerated by the CODEC_FILTER phase
// (§4.4).
func (t *Tuner) codecFilterCombos() int {
	return len(t.codecs) * len(t.filters) * 2
}

// proposeCodecFilter enumerates the next (codec, filter, split)
// combination indexed by auxIndex (§4.4).
func (t *Tuner) proposeCodecFilter() {
	total := t.codecFilterCombos()
	if total == 0 {
		return
	}
	idx := (t.auxIndex - 1) % total
	perCodec := len(t.filters) * 2
	codecIdx := idx / perCodec
	rem := idx % perCodec
	filterIdx := rem / 2
	splitBit := rem % 2

	t.aux.CompCode = t.codecs[codecIdx]
	t.aux.Filter = t.filters[filterIdx]
	if splitBit == 0 {
		t.aux.SplitMode = Split
	} else {
		t.aux.SplitMode = NoSplit
	}

	// BLOSCLZ overrides splitmode to always-split (§4.4).
	if t.aux.CompCode == BLOSCLZ {
		t.aux.SplitMode = Split
	}

	// ZSTD/ZLIB forced clevel=3 on the very first hard round, for
	// COMP/BALANCED perf modes (§4.4).
	firstHardRound := t.nhards == 0 && !t.isRepeating
	if firstHardRound && (t.aux.CompCode == ZSTD || t.aux.CompCode == ZLIB) &&
		(t.cfg.PerfMode == PerfComp || t.cfg.PerfMode == PerfBalanced) {
		t.aux.CLevel = 3
	}
}

// proposeShuffleSize doubles or halves the shuffle unit within
// [min_shuffle_for(filter), MAX_SHUFFLE] (§4.4).
func (t *Tuner) proposeShuffleSize() {
	lo := minShuffleFor(t.aux.Filter)
	if t.aux.IncreasingShuffle {
		if t.aux.ShuffleSize < MaxShuffle {
			t.aux.ShuffleSize *= 2
		}
	} else if t.aux.ShuffleSize > lo {
		t.aux.ShuffleSize /= 2
	}
}

// proposeThreads increments or decrements the compression- or
// decompression-side thread count, selected by threadsForComp (§4.4).
func (t *Tuner) proposeThreads() {
	delta := 1
	if !t.aux.IncreasingNThreads {
		delta = -1
	}
	if t.threadsForComp {
		t.aux.NThreadsComp = clampThreads(t.aux.NThreadsComp+delta, t.cfg.MaxThreads)
	} else {
		t.aux.NThreadsDecomp = clampThreads(t.aux.NThreadsDecomp+delta, t.cfg.MaxThreads)
	}
}

// proposeCLevel adds or subtracts step_size, bounded by [1, 9] (§4.4);
// mode-specific caps are applied afterward by clampAux.
func (t *Tuner) proposeCLevel() {
	if t.aux.IncreasingCLevel {
		t.aux.CLevel += t.stepSize
	} else {
		t.aux.CLevel -= t.stepSize
	}
	if t.aux.CLevel < MinCLevel {
		t.aux.CLevel = MinCLevel
	}
	if t.aux.CLevel > MaxCLevel {
		t.aux.CLevel = MaxCLevel
	}
}

// proposeBlockSize shifts the block size left or right by step_size
// bits within [MIN_BLOCK, min(MAX_BLOCK, sourcesize)] (§4.4).
func (t *Tuner) proposeBlockSize() {
	lo := int64(MinBlock)
	hi := int64(MaxBlock)
	if t.sourceSize < hi {
		hi = t.sourceSize
	}
	shift := uint(t.stepSize)
	if t.aux.IncreasingBlock {
		nb := t.aux.BlockSize << shift
		if nb > hi {
			nb = hi
		}
		t.aux.BlockSize = nb
	} else {
		nb := t.aux.BlockSize >> shift
		if nb < lo {
			nb = lo
		}
		t.aux.BlockSize = nb
	}
}

// clampAux applies the mode-specific clevel caps and the Auto-Blocksize
// rule after a phase has modified aux (§4.4 "After modification, the
// proposal is clamped to mode-specific caps ... If blocksize == 0,
// invoke the Auto-Blocksize rule").
func (t *Tuner) clampAux() {
	t.aux.CLevel = clampCLevel(t.aux.CLevel, t.aux.CompCode, t.cfg.CompMode)
	if t.aux.BlockSize == 0 {
		hcr := t.cfg.CompMode == HCR
		t.aux.BlockSize = AutoBlockSize(t.sourceSize, t.cfg.TypeSize, t.aux.CLevel, hcr)
	}
}

// writeContext implements the §6.1/§6.2 wire contract: it writes the
// trial parameters into the host's compression (and, if present,
// decompression) context, including the N=6 filter slot protocol.
func writeContext(ctx *host.Context, dctx *host.DContext, p CParams, typeSize int) {
	ctx.CompCode = int(p.CompCode)
	ctx.SplitMode = int(p.SplitMode)
	ctx.CLevel = p.CLevel
	ctx.BlockSize = p.BlockSize
	ctx.TypeSize = typeSize
	ctx.NewNThreadsComp = p.NThreadsComp

	for i := range ctx.Filters {
		ctx.Filters[i] = int(NOFILTER)
		ctx.FiltersMeta[i] = 0
	}
	if p.Filter == BYTEDELTA {
		ctx.Filters[host.SlotSecondary] = int(SHUFFLE)
		ctx.Filters[host.SlotPrimary] = int(BYTEDELTA)
		ctx.FiltersMeta[host.SlotPrimary] = typeSize
	} else {
		ctx.Filters[host.SlotPrimary] = int(p.Filter)
	}

	if dctx != nil {
		dctx.NewNThreadsDecomp = p.NThreadsDecomp
	}
}
