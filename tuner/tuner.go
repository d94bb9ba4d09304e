package tuner

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/blosc/btune/host"
	"github.com/blosc/btune/predictor"
)

// defaultOverhead approximates the per-chunk container overhead used by
// the degenerate-chunk special case (§4.2, §7). It is small and fixed:
// real hosts may override via SetOverhead.
const defaultOverhead = 16

// Diagnostics captures the env-var-driven knobs of §6.3, read once at
// construction per §5/§9 ("environment variables ... read once at key
// points").
type Diagnostics struct {
	Log          bool   // BTUNE_LOG
	Debug        bool   // BTUNE_DEBUG
	MetadataPath string // BTUNE_METADATA
	ModelPath    string // BTUNE_MODEL_{HSP,BALANCED,HCR}, selected by CompMode
}

// ReadDiagnostics reads the §6.3 environment variables for the given
// comp mode.
func ReadDiagnostics(mode CompMode) Diagnostics {
	var modelVar string
	switch mode {
	case HSP:
		modelVar = "BTUNE_MODEL_HSP"
	case HCR:
		modelVar = "BTUNE_MODEL_HCR"
	default:
		modelVar = "BTUNE_MODEL_BALANCED"
	}
	_, logSet := os.LookupEnv("BTUNE_LOG")
	_, debugSet := os.LookupEnv("BTUNE_DEBUG")
	return Diagnostics{
		Log:          logSet,
		Debug:        debugSet,
		MetadataPath: os.Getenv("BTUNE_METADATA"),
		ModelPath:    os.Getenv(modelVar),
	}
}

// Tuner is the facade of §4 component 8: it holds configuration, the
// current best and auxiliary trial parameters, and the state-machine
// counters, and exposes init/next_cparams/update/free (§6.1).
//
// A Tuner is not concurrency-safe (§5): it must be driven by a single
// goroutine, one NextCParams then one Update per chunk.
type Tuner struct {
	cfg Config

	best CParams
	aux  CParams

	state       Phase
	readaptFrom ReadaptFrom
	stepSize    int
	auxIndex    int

	// repIndex/sample accumulators implement the rep_index aggregation
	// loop of §3/§9: with SamplesPerDecision==1 (the default) these are
	// inert, every chunk is its own decision.
	repIndex      int
	sampleCTime   float64
	sampleDTime   float64
	sampleCBytes  int64

	nsofts    int
	nhards    int
	nwaitings int

	isRepeating    bool
	threadsForComp bool

	codecs  []Codec
	filters []Filter

	sourceSize int64
	overhead   int64

	diag Diagnostics
	log  []LogRow
	logw *tabwriter.Writer

	chunkIndex int
}

// New constructs a Tuner from cfg. It does not attach to any host
// context yet; call NextCParams/Update per chunk and Free when done.
// Invalid configuration is defaulted with a logged warning rather than
// rejected outright (§7 "Configuration errors ... treat as default,
// continue").
func New(cfg Config) *Tuner {
	if err := cfg.Validate(); err != nil {
		logrus.Warnf("btune: invalid config, using defaults: %v", err)
		hint := cfg.Hint
		hintFlag := cfg.CParamsHint
		cfg = DefaultConfig()
		cfg.Hint = hint
		cfg.CParamsHint = hintFlag
	}

	best := DefaultCParams(cfg.TypeSize, cfg.MaxThreads)
	if cfg.CParamsHint {
		best = cfg.Hint
	}

	t := &Tuner{
		cfg:            cfg,
		best:           best,
		aux:            best,
		state:          CodecFilterPhase,
		readaptFrom:    ReadaptHard,
		stepSize:       2,
		threadsForComp: cfg.PerfMode != PerfDecomp,
		codecs:         defaultCodecs(cfg.CompMode),
		filters:        defaultFilters(),
		overhead:       defaultOverhead,
		diag:           ReadDiagnostics(cfg.CompMode),
	}
	return t
}

// SetOverhead overrides the per-chunk container overhead used by the
// degenerate-chunk special case (§4.2).
func (t *Tuner) SetOverhead(overhead int64) { t.overhead = overhead }

// NarrowCandidates restricts the CODEC_FILTER candidate sets to a
// single (codec, filter) pair, as decided by the Predictor Adapter
// (§4.9 step 5) on chunk 0.
func (t *Tuner) NarrowCandidates(codec Codec, filter Filter) {
	t.codecs = []Codec{codec}
	t.filters = []Filter{filter}
}

// RunPredictorBootstrap runs the Predictor Adapter over chunk 0's
// blocks and narrows the candidate sets on success. It is a no-op
// (returning ErrPredictorUnavailable-wrapped error) once chunkIndex > 0,
// since §4.9 invokes the adapter only for the first chunk.
func (t *Tuner) RunPredictorBootstrap(blocks [][]byte) error {
	if t.chunkIndex != 0 {
		return fmt.Errorf("%w: predictor bootstrap only applies to chunk 0", ErrPredictorUnavailable)
	}
	if t.diag.MetadataPath == "" || t.diag.ModelPath == "" {
		return fmt.Errorf("%w: metadata or model path not configured", ErrPredictorUnavailable)
	}
	meta, err := predictor.LoadMetadata(t.diag.MetadataPath)
	if err != nil {
		logrus.Debugf("btune: predictor metadata unavailable: %v", err)
		return fmt.Errorf("%w: %v", ErrPredictorUnavailable, err)
	}
	model, err := predictor.Load(t.diag.ModelPath)
	if err != nil {
		logrus.Debugf("btune: predictor model unavailable: %v", err)
		return fmt.Errorf("%w: %v", ErrPredictorUnavailable, err)
	}
	cat, err := predictor.Adapt(blocks, meta, model)
	if err != nil {
		logrus.Debugf("btune: predictor adapt failed: %v", err)
		return fmt.Errorf("%w: %v", ErrPredictorUnavailable, err)
	}
	t.NarrowCandidates(Codec(cat.Codec), Filter(cat.Filter))
	if t.diag.Debug {
		logrus.Debugf("btune: predictor narrowed candidates to codec=%s filter=%s", Codec(cat.Codec), Filter(cat.Filter))
	}
	return nil
}

// NextBlockSize implements §6.1 next_blocksize: it may update
// ctx.BlockSize per the Auto-Blocksize rule (§4.5) ahead of a full
// NextCParams call, e.g. for hosts that size buffers before the full
// parameter set is known.
func (t *Tuner) NextBlockSize(ctx *host.Context, sourceSize int64) {
	t.sourceSize = sourceSize
	if t.aux.BlockSize == 0 {
		hcr := t.cfg.CompMode == HCR
		ctx.BlockSize = AutoBlockSize(sourceSize, t.cfg.TypeSize, t.aux.CLevel, hcr)
	} else {
		ctx.BlockSize = t.aux.BlockSize
	}
}

// NextCParams implements §6.1 next_cparams: it proposes the next trial
// parameter set from the current phase and writes it into ctx (and
// dctx, if present). It strictly happens-before the matching Update
// call (§5).
func (t *Tuner) NextCParams(ctx *host.Context, dctx *host.DContext, sourceSize int64) {
	t.sourceSize = sourceSize
	t.aux = t.best.Clone()
	t.auxIndex++

	t.propose()
	t.clampAux()

	writeContext(ctx, dctx, t.aux, t.cfg.TypeSize)
}

// Update implements §6.1 update: it reads the host's resulting byte
// count from ctx, scores the trial, decides whether it improved over
// best, advances the state machine, and logs the trial row. dtime is an
// explicit parameter rather than an implicit context field: hosts that
// do not measure decompression pass 0, which degrades THREADS-phase
// decompression tuning to a no-op.
func (t *Tuner) Update(ctx *host.Context, ctime, dtime float64) {
	t.repIndex++
	t.sampleCTime += ctime
	t.sampleDTime += dtime
	t.sampleCBytes += ctx.DestSize

	if t.repIndex < t.cfg.SamplesPerDecision {
		return // still accumulating samples for this decision (§9 rep_index)
	}

	n := float64(t.repIndex)
	meanCTime := t.sampleCTime / n
	meanDTime := t.sampleDTime / n
	meanCBytes := t.sampleCBytes / int64(t.repIndex)

	t.repIndex = 0
	t.sampleCTime, t.sampleDTime, t.sampleCBytes = 0, 0, 0

	t.aux.CTime = meanCTime
	t.aux.DTime = meanDTime
	t.aux.Score = Score(meanCTime, meanCBytes, meanDTime, t.cfg.Bandwidth, t.cfg.PerfMode)
	if meanCBytes > 0 {
		t.aux.Cratio = float64(ctx.SourceSize) / float64(meanCBytes)
	}

	var improved bool
	if t.state == ThreadsPhase {
		improved = ThreadsImproved(t.threadsForComp, t.best.CTime, t.best.DTime, t.aux.CTime, t.aux.DTime)
	} else {
		var special bool
		improved, special = Improved(t.cfg.CompMode, t.best.Score, t.best.Cratio, t.aux.Score, t.aux.Cratio, meanCBytes, t.overhead, t.cfg.TypeSize)
		t.aux.Special = special
	}

	if improved {
		t.best = t.aux.Clone()
	}

	t.recordLogRow(improved)
	t.advance(improved)
	t.chunkIndex++
}

// Free releases tuner-owned memory (§6.1). Since the Go implementation
// holds no off-heap resources, this only clears references so the log
// and candidate slices can be collected.
func (t *Tuner) Free() {
	t.log = nil
	t.codecs = nil
	t.filters = nil
	t.logw = nil
}

// Best returns a copy of the current best parameter set.
func (t *Tuner) Best() CParams { return t.best }

// State returns the tuner's current phase, for tests and logging.
func (t *Tuner) State() Phase { return t.state }

// IsStopped reports whether the tuner has reached STOP (§4.6, §8).
func (t *Tuner) IsStopped() bool { return t.state == StopPhase }

// Counters returns the readapt counters as the scheduler currently holds
// them (§3). They are not lifetime totals: nsofts restarts after each
// hard sweep, nhards restarts when REPEAT_ALL begins a new cycle, and
// nwaitings restarts on every entry to WAITING.
func (t *Tuner) Counters() (nsofts, nhards, nwaitings int) {
	return t.nsofts, t.nhards, t.nwaitings
}
