package tuner

// autoBlockSizeCap is the 64 KiB ceiling/floor used once a clevel-scaled
// estimate is turned into a byte count (§4.5).
const autoBlockSizeCap = 64 << 10

// AutoBlockSize implements the Auto-Blocksize rule of §4.5, invoked by
// the proposer whenever a trial lands on blocksize==0 ("force auto").
func AutoBlockSize(sourceSize int64, typeSize int, clevel int, hcr bool) int64 {
	if sourceSize < int64(typeSize) {
		return 1
	}

	bs := int64(L1Cache)
	if hcr {
		bs *= 2
	}

	switch {
	case clevel <= 0:
		bs /= 4
	case clevel == 1:
		bs /= 2
	case clevel == 2:
		// ×1, unchanged
	case clevel == 3:
		bs *= 2
	case clevel >= 4 && clevel <= 5:
		bs *= 4
	case clevel >= 6 && clevel <= 8:
		bs *= 8
	default: // clevel == 9
		if hcr {
			bs *= 16
		} else {
			bs *= 8
		}
	}

	if clevel > 0 {
		if bs > autoBlockSizeCap {
			bs = autoBlockSizeCap
		}
		bs *= int64(typeSize)
		if bs < autoBlockSizeCap {
			bs = autoBlockSizeCap
		}
	}

	if bs > sourceSize {
		bs = sourceSize
	}
	if bs > int64(typeSize) {
		bs -= bs % int64(typeSize)
	}
	return bs
}
