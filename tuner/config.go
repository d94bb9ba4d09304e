package tuner

import "fmt"

// Behaviour groups the readapt/repeat schedule and the disable flags for
// the SHUFFLE_SIZE, BLOCKSIZE, MEMCPY and THREADS phases. The disable
// flags are configuration rather than compile-time constants so a host
// can skip a phase without a custom build, default false.
type Behaviour struct {
	NWaitsBeforeReadapt int        // waits inserted between readapts before the next one fires
	NSoftsBeforeHard    int        // soft readapts completed before a hard readapt
	NHardsBeforeStop    int        // hard readapts completed before repeat/stop kicks in
	RepeatMode          RepeatMode // behavior once the initial schedule completes

	DisableShuffleSize bool
	DisableBlockSize   bool
	DisableMemcpy      bool
	DisableThreads     bool
}

// DefaultBehaviour returns the schedule used when a host does not
// configure one explicitly: one hard readapt, no softs, stop afterward.
func DefaultBehaviour() Behaviour {
	return Behaviour{
		NWaitsBeforeReadapt: 0,
		NSoftsBeforeHard:    0,
		NHardsBeforeStop:    1,
		RepeatMode:          Stop,
	}
}

// Config is the tuner's immutable-after-init configuration (§3).
type Config struct {
	Bandwidth int // kB/s, weights byte volume vs. time in scoring (§4.1)

	PerfMode PerfMode // which time terms enter the score
	CompMode CompMode // improvement predicate + codec candidate set

	Behaviour Behaviour

	// CParamsHint seeds the initial best from hint-provided parameters
	// instead of the package default (§3).
	CParamsHint bool
	Hint        CParams

	MaxThreads int // upper bound for nthreads_{comp,decomp}

	// TypeSize is the element size in bytes used for blocksize
	// alignment (§3, §4.5).
	TypeSize int

	// SamplesPerDecision is the N in the rep_index aggregation loop
	// (§9 open question); default 1 means every chunk is its own
	// decision.
	SamplesPerDecision int

	// Whether SHUFFLE_SIZE runs is computed by Tuner.shuffleEnabled, not
	// set here: it is the negation of Behaviour.DisableShuffleSize and
	// additionally requires the active filter to support a variable
	// shuffle unit.
}

// DefaultConfig returns BTune's out-of-the-box configuration: balanced
// performance and compression objectives, one hard readapt, no cparams
// hint, 100 MB/s assumed bandwidth.
func DefaultConfig() Config {
	return Config{
		Bandwidth:          100 * 1024,
		PerfMode:           PerfBalanced,
		CompMode:           CompBalanced,
		Behaviour:          DefaultBehaviour(),
		MaxThreads:         1,
		TypeSize:           4,
		SamplesPerDecision: 1,
	}
}

// Validate returns an error describing the first invalid field found.
// It never panics; callers decide whether an invalid config is fatal.
func (c Config) Validate() error {
	if c.Bandwidth <= 0 {
		return fmt.Errorf("btune: Bandwidth must be positive, got %d", c.Bandwidth)
	}
	if c.MaxThreads < MinThreads {
		return fmt.Errorf("btune: MaxThreads must be >= %d, got %d", MinThreads, c.MaxThreads)
	}
	if c.TypeSize <= 0 {
		return fmt.Errorf("btune: TypeSize must be positive, got %d", c.TypeSize)
	}
	if c.Behaviour.NWaitsBeforeReadapt < 0 {
		return fmt.Errorf("btune: NWaitsBeforeReadapt must be non-negative, got %d", c.Behaviour.NWaitsBeforeReadapt)
	}
	if c.Behaviour.NSoftsBeforeHard < 0 {
		return fmt.Errorf("btune: NSoftsBeforeHard must be non-negative, got %d", c.Behaviour.NSoftsBeforeHard)
	}
	if c.Behaviour.NHardsBeforeStop < 0 {
		return fmt.Errorf("btune: NHardsBeforeStop must be non-negative, got %d", c.Behaviour.NHardsBeforeStop)
	}
	if c.SamplesPerDecision <= 0 {
		return fmt.Errorf("btune: SamplesPerDecision must be positive, got %d", c.SamplesPerDecision)
	}
	return nil
}

// defaultCodecs returns the candidate codec set for a comp mode (§4.4
// CODEC_FILTER phase).
func defaultCodecs(mode CompMode) []Codec {
	switch mode {
	case HCR:
		return []Codec{ZSTD, ZLIB}
	case HSP:
		return []Codec{BLOSCLZ, LZ4}
	default:
		return []Codec{BLOSCLZ, LZ4, ZSTD}
	}
}

// defaultFilters returns the candidate filter set for the CODEC_FILTER
// phase.
func defaultFilters() []Filter {
	return []Filter{NOFILTER, SHUFFLE, BITSHUFFLE}
}
