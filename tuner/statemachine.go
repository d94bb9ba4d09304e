package tuner

// phaseChain is the fixed order phases are visited in once CODEC_FILTER
// has handed off control, each entry skipped when disabled (§4.6 "On
// exit, proceed to the next enabled phase in the order SHUFFLE_SIZE →
// THREADS → CLEVEL → BLOCKSIZE → MEMCPY → WAITING").
var phaseChain = []Phase{ShuffleSizePhase, ThreadsPhase, CLevelPhase, BlockSizePhase, MemcpyPhase, WaitingPhase}

// advance runs the state machine one step after a trial has been judged
// (§4.6).
func (t *Tuner) advance(improved bool) {
	switch t.state {
	case CodecFilterPhase:
		t.advanceCodecFilter()
	case ShuffleSizePhase:
		t.advanceMonotonic(improved, ShuffleSizePhase)
	case CLevelPhase:
		t.advanceMonotonic(improved, CLevelPhase)
	case BlockSizePhase:
		t.advanceMonotonic(improved, BlockSizePhase)
	case ThreadsPhase:
		t.advanceThreads(improved)
	case MemcpyPhase:
		t.advanceMemcpy()
	case WaitingPhase:
		t.advanceWaiting()
	case StopPhase:
		// terminal
	}
}

// advanceCodecFilter exits once aux_index has covered every (codec,
// filter, split) combination (§4.6). CODEC_FILTER is enumerative, not
// monotonic, so no direction flip rule applies here.
func (t *Tuner) advanceCodecFilter() {
	total := t.codecFilterCombos()
	if total == 0 {
		t.enterPhase(t.phaseAfterCodecFilter())
		return
	}
	idx := (t.auxIndex - 1) % total
	if idx >= total-1 {
		t.enterPhase(t.phaseAfterCodecFilter())
	}
}

// phaseAfterCodecFilter picks the phase CODEC_FILTER hands off to
// (§4.6): SHUFFLE_SIZE if enabled and the winning filter supports a
// variable shuffle unit, else THREADS (unless max_threads==1), else
// CLEVEL.
func (t *Tuner) phaseAfterCodecFilter() Phase {
	if t.shuffleEnabled() {
		return ShuffleSizePhase
	}
	if t.threadsEnabled() {
		return ThreadsPhase
	}
	return CLevelPhase
}

func (t *Tuner) shuffleEnabled() bool {
	return !t.cfg.Behaviour.DisableShuffleSize && t.best.Filter != NOFILTER && isPowerOfTwo(t.best.ShuffleSize)
}

func (t *Tuner) threadsEnabled() bool {
	return !t.cfg.Behaviour.DisableThreads && t.cfg.MaxThreads > MinThreads
}

func (t *Tuner) phaseEnabled(p Phase) bool {
	switch p {
	case ShuffleSizePhase:
		return t.shuffleEnabled()
	case ThreadsPhase:
		return t.threadsEnabled()
	case CLevelPhase:
		return true
	case BlockSizePhase:
		return !t.cfg.Behaviour.DisableBlockSize
	case MemcpyPhase:
		return !t.cfg.Behaviour.DisableMemcpy
	default:
		return true
	}
}

// nextPhaseInChain returns the next enabled phase strictly after from
// in phaseChain, falling back to WaitingPhase (always enabled).
func (t *Tuner) nextPhaseInChain(from Phase) Phase {
	start := -1
	for i, p := range phaseChain {
		if p == from {
			start = i
			break
		}
	}
	for i := start + 1; i < len(phaseChain); i++ {
		if t.phaseEnabled(phaseChain[i]) {
			return phaseChain[i]
		}
	}
	return WaitingPhase
}

// effectiveCLevelHi returns the CLEVEL phase's upper bound given the
// current compcode/compmode caps (§3), used only for direction-flip
// boundary checks — clampAux enforces the cap on every proposal.
func (t *Tuner) effectiveCLevelHi() int64 {
	hi := int64(MaxCLevel)
	if t.cfg.CompMode == HCR {
		hi = HCRMaxCLevel
	}
	if t.cfg.CompMode == CompBalanced && (t.best.CompCode == ZSTD || t.best.CompCode == ZLIB) {
		hi = BalancedZCLevel
	}
	return hi
}

// advanceMonotonic applies the first-time-flip / exit-on-failure rule
// of §4.3 to a monotonic phase (SHUFFLE_SIZE, CLEVEL, BLOCKSIZE).
func (t *Tuner) advanceMonotonic(improved bool, phase Phase) {
	isFirstTrial := t.auxIndex == 1
	if judgeDirection(improved, isFirstTrial) == continuePhase {
		if !improved && isFirstTrial {
			t.flipDirection(phase)
		}
		return
	}
	t.enterPhase(t.nextPhaseInChain(phase))
}

func (t *Tuner) flipDirection(phase Phase) {
	switch phase {
	case ShuffleSizePhase:
		t.best.IncreasingShuffle = !t.best.IncreasingShuffle
		t.aux.IncreasingShuffle = t.best.IncreasingShuffle
	case CLevelPhase:
		t.best.IncreasingCLevel = !t.best.IncreasingCLevel
		t.aux.IncreasingCLevel = t.best.IncreasingCLevel
	case BlockSizePhase:
		t.best.IncreasingBlock = !t.best.IncreasingBlock
		t.aux.IncreasingBlock = t.best.IncreasingBlock
	case ThreadsPhase:
		t.best.IncreasingNThreads = !t.best.IncreasingNThreads
		t.aux.IncreasingNThreads = t.best.IncreasingNThreads
	}
}

// advanceThreads implements the THREADS phase's two-stage exploration
// (compression-side, then decompression-side under BALANCED) keyed off
// an internal stage position derived from aux_index mod
// MAX_STATE_THREADS (§4.6).
func (t *Tuner) advanceThreads(improved bool) {
	stagePos := ((t.auxIndex - 1) % MaxStateThreads) + 1
	isFirstOfStage := stagePos == 1

	if judgeDirection(improved, isFirstOfStage) == continuePhase {
		if !improved && isFirstOfStage {
			t.flipDirection(ThreadsPhase)
		}
		return
	}

	if t.cfg.PerfMode == PerfBalanced && t.threadsForComp {
		t.threadsForComp = false
		t.auxIndex = 0
		cur := int64(t.best.NThreadsDecomp)
		t.best.IncreasingNThreads = enterDirection(cur, MinThreads, int64(t.cfg.MaxThreads), 1, t.best.IncreasingNThreads)
		t.aux.IncreasingNThreads = t.best.IncreasingNThreads
		return
	}

	t.enterPhase(t.nextPhaseInChain(ThreadsPhase))
}

// advanceMemcpy is always a single trial, then WAITING (§4.6).
func (t *Tuner) advanceMemcpy() {
	t.enterPhase(t.nextPhaseInChain(MemcpyPhase))
}

// advanceWaiting delegates readapt scheduling once a WAITING chunk has
// passed (§4.6, §4.7).
func (t *Tuner) advanceWaiting() {
	t.processWaitingState()
}

// enterPhase transitions into next, pre-flipping its direction if
// already at the wall (§4.3 "Entering a new phase") and, for WAITING,
// immediately running the readapt scheduler (§4.7).
func (t *Tuner) enterPhase(next Phase) {
	t.auxIndex = 0
	t.state = next

	switch next {
	case ShuffleSizePhase:
		lo := int64(minShuffleFor(t.best.Filter))
		t.best.IncreasingShuffle = enterDirection(int64(t.best.ShuffleSize), lo, MaxShuffle, 0, t.best.IncreasingShuffle)
		t.aux.IncreasingShuffle = t.best.IncreasingShuffle
	case ThreadsPhase:
		t.threadsForComp = t.cfg.PerfMode != PerfDecomp
		cur := int64(t.best.NThreadsComp)
		if !t.threadsForComp {
			cur = int64(t.best.NThreadsDecomp)
		}
		t.best.IncreasingNThreads = enterDirection(cur, MinThreads, int64(t.cfg.MaxThreads), 1, t.best.IncreasingNThreads)
		t.aux.IncreasingNThreads = t.best.IncreasingNThreads
	case CLevelPhase:
		hi := t.effectiveCLevelHi()
		t.best.IncreasingCLevel = enterDirection(int64(t.best.CLevel), MinCLevel, hi, int64(t.stepSize), t.best.IncreasingCLevel)
		t.aux.IncreasingCLevel = t.best.IncreasingCLevel
	case BlockSizePhase:
		hi := int64(MaxBlock)
		if t.sourceSize > 0 && t.sourceSize < hi {
			hi = t.sourceSize
		}
		t.best.IncreasingBlock = enterDirection(t.best.BlockSize, MinBlock, hi, 0, t.best.IncreasingBlock)
		t.aux.IncreasingBlock = t.best.IncreasingBlock
	case WaitingPhase:
		t.nwaitings = 0
		t.processWaitingState()
	}
}
