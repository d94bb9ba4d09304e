package tuner

// Constants governing parameter ranges (§3 invariants) and the
// exploration schedule (§4).
const (
	MinCLevel = 1
	MaxCLevel = 9
	// HCRMaxCLevel caps clevel in HCR mode (§3).
	HCRMaxCLevel = 6
	// BalancedZCLevel caps clevel for ZSTD/ZLIB in BALANCED mode (§3).
	BalancedZCLevel = 3

	MinBitShuffle = 1
	MinShuffle    = 2
	MaxShuffle    = 16

	MinThreads = 1

	// MinBlock/MaxBlock bound the BLOCKSIZE phase (§4.4).
	MinBlock = 64 << 10   // 64 KiB
	MaxBlock = 8 << 20    // 8 MiB
	L1Cache  = 32 << 10   // 32 KiB, base for Auto-Blocksize (§4.5)

	// MaxStateThreads keys the THREADS phase's internal stage counter
	// (§4.6).
	MaxStateThreads = 50

	// NCodecs is the fixed output width of the external classifier
	// (§6.5), independent of how many Codec values BTune itself defines.
	NCodecs = 15

	// FilterSlots is the number of filter pipeline slots the host
	// exposes (§6.2).
	FilterSlots = 6
)
