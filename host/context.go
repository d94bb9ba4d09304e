// Package host defines the external collaborator contracts of BTune §6.1:
// the shapes a host compression/decompression context must expose for
// the tuner to read and write through, without the tuner retaining
// pointers into host buffers beyond one call (§5).
package host

// FilterSlots is the size of the N=6-slot filter pipeline protocol of §6.2. The
// tuner writes the primary filter to the last slot; BYTEDELTA-family
// filters additionally occupy SlotPrimary-1 with SHUFFLE and record
// typesize in FiltersMeta[SlotPrimary].
const FilterSlots = 6

const (
	SlotPrimary   = FilterSlots - 1
	SlotSecondary = FilterSlots - 2
)

// Context is the host compression context the tuner writes trial
// parameters into via NextCParams/NextBlockSize (§6.1).
type Context struct {
	CompCode  int
	SplitMode int
	CLevel    int
	BlockSize int64
	TypeSize  int

	// Filters and FiltersMeta implement the N=6 slot protocol (§6.2).
	Filters     [FilterSlots]int
	FiltersMeta [FilterSlots]int

	NewNThreadsComp int

	// SourceSize/DestSize are read by Update after the host compresses
	// the chunk (§6.1 "reads cctx.destsize, cctx.sourcesize").
	SourceSize int64
	DestSize   int64
}

// DContext is the optional decompression-side context (§6.1 "dctx
// optional"). When present, the tuner writes the decompression thread
// count into it.
type DContext struct {
	NewNThreadsDecomp int
}
