// Package tuner implements BTune, an online auto-tuner for a streaming
// chunked-compression pipeline. It proposes trial compression parameters
// chunk by chunk, observes a scalar score, and steers the search toward
// a user-selected objective.
package tuner

import "fmt"

// Codec identifies a compression codec candidate.
type Codec int

const (
	BLOSCLZ Codec = iota
	LZ4
	LZ4HC
	ZLIB
	ZSTD
)

func (c Codec) String() string {
	switch c {
	case BLOSCLZ:
		return "blosclz"
	case LZ4:
		return "lz4"
	case LZ4HC:
		return "lz4hc"
	case ZLIB:
		return "zlib"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("codec(%d)", int(c))
	}
}

// Filter identifies a pre-compression byte-rearrangement filter.
type Filter int

const (
	NOFILTER Filter = iota
	SHUFFLE
	BITSHUFFLE
	BYTEDELTA
)

func (f Filter) String() string {
	switch f {
	case NOFILTER:
		return "nofilter"
	case SHUFFLE:
		return "shuffle"
	case BITSHUFFLE:
		return "bitshuffle"
	case BYTEDELTA:
		return "bytedelta"
	default:
		return fmt.Sprintf("filter(%d)", int(f))
	}
}

// SplitMode selects whether a chunk's blocks are split into per-typesize
// streams before compression.
type SplitMode int

const (
	NoSplit SplitMode = iota
	Split
)

func (s SplitMode) String() string {
	if s == Split {
		return "split"
	}
	return "no-split"
}

// PerfMode selects which time terms enter the Scoring Function (§4.1).
type PerfMode int

const (
	PerfComp PerfMode = iota
	PerfDecomp
	PerfBalanced
)

func (m PerfMode) String() string {
	switch m {
	case PerfComp:
		return "comp"
	case PerfDecomp:
		return "decomp"
	case PerfBalanced:
		return "balanced"
	default:
		return fmt.Sprintf("perfmode(%d)", int(m))
	}
}

// ParsePerfMode parses an all-lowercase or all-uppercase perf mode name
// (mixed case is not recognized). Unknown names
// default to PerfBalanced and return ErrConfigDefaulted.
func ParsePerfMode(s string) (PerfMode, error) {
	switch s {
	case "comp", "COMP":
		return PerfComp, nil
	case "decomp", "DECOMP":
		return PerfDecomp, nil
	case "balanced", "BALANCED", "":
		return PerfBalanced, nil
	default:
		return PerfBalanced, fmt.Errorf("%w: unknown perf_mode %q, defaulting to balanced", ErrConfigDefaulted, s)
	}
}

// CompMode selects the Improvement Predicate and codec candidate set
// (§4.2).
type CompMode int

const (
	HSP CompMode = iota
	CompBalanced
	HCR
)

func (m CompMode) String() string {
	switch m {
	case HSP:
		return "hsp"
	case CompBalanced:
		return "balanced"
	case HCR:
		return "hcr"
	default:
		return fmt.Sprintf("compmode(%d)", int(m))
	}
}

// ParseCompMode parses an all-lowercase or all-uppercase comp mode name
// (mixed case is not recognized). Unknown names
// default to CompBalanced and return ErrConfigDefaulted.
func ParseCompMode(s string) (CompMode, error) {
	switch s {
	case "hsp", "HSP":
		return HSP, nil
	case "balanced", "BALANCED", "":
		return CompBalanced, nil
	case "hcr", "HCR":
		return HCR, nil
	default:
		return CompBalanced, fmt.Errorf("%w: unknown comp_mode %q, defaulting to balanced", ErrConfigDefaulted, s)
	}
}

// RepeatMode selects what happens once the initial exploration schedule
// completes (§4.7).
type RepeatMode int

const (
	Stop RepeatMode = iota
	RepeatSoft
	RepeatAll
)

func (m RepeatMode) String() string {
	switch m {
	case Stop:
		return "stop"
	case RepeatSoft:
		return "repeat_soft"
	case RepeatAll:
		return "repeat_all"
	default:
		return fmt.Sprintf("repeatmode(%d)", int(m))
	}
}

// ParseRepeatMode parses an all-lowercase or all-uppercase repeat mode
// name (mixed case is not recognized). Unknown names default to Stop
// and return ErrConfigDefaulted.
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch s {
	case "stop", "STOP", "":
		return Stop, nil
	case "repeat_soft", "REPEAT_SOFT":
		return RepeatSoft, nil
	case "repeat_all", "REPEAT_ALL":
		return RepeatAll, nil
	default:
		return Stop, fmt.Errorf("%w: unknown repeat_mode %q, defaulting to stop", ErrConfigDefaulted, s)
	}
}

// Phase is a state in the tuner's exploration state machine (§4.6).
type Phase int

const (
	CodecFilterPhase Phase = iota
	ShuffleSizePhase
	ThreadsPhase
	CLevelPhase
	BlockSizePhase
	MemcpyPhase
	WaitingPhase
	StopPhase
)

func (p Phase) String() string {
	switch p {
	case CodecFilterPhase:
		return "CODEC_FILTER"
	case ShuffleSizePhase:
		return "SHUFFLE_SIZE"
	case ThreadsPhase:
		return "THREADS"
	case CLevelPhase:
		return "CLEVEL"
	case BlockSizePhase:
		return "BLOCKSIZE"
	case MemcpyPhase:
		return "MEMCPY"
	case WaitingPhase:
		return "WAITING"
	case StopPhase:
		return "STOP"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ReadaptFrom records which kind of readapt the tuner is currently
// recovering from, driving the Readapt Scheduler (§4.7).
type ReadaptFrom int

const (
	ReadaptHard ReadaptFrom = iota
	ReadaptSoft
	ReadaptWait
)

func (r ReadaptFrom) String() string {
	switch r {
	case ReadaptHard:
		return "HARD"
	case ReadaptSoft:
		return "SOFT"
	case ReadaptWait:
		return "WAIT"
	default:
		return fmt.Sprintf("readapt(%d)", int(r))
	}
}
