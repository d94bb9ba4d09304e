package tuner

// Score computes the Scoring Function of §4.1: a scalar, lower-is-better
// figure of merit combining compression time, decompression time and
// the transfer time implied by cbytes at the configured bandwidth.
//
//	transfer = (cbytes/1024) / bandwidth
//	COMP:     ctime + transfer
//	DECOMP:   transfer + dtime
//	BALANCED: ctime + transfer + dtime
//
// Given positive ctime/cbytes/bandwidth, the result is strictly
// positive, independent of dtime (dtime may legitimately be zero when
// the host does not measure decompression).
func Score(ctime float64, cbytes int64, dtime float64, bandwidth int, mode PerfMode) float64 {
	transfer := (float64(cbytes) / 1024.0) / float64(bandwidth)
	switch mode {
	case PerfComp:
		return ctime + transfer
	case PerfDecomp:
		return transfer + dtime
	default: // PerfBalanced
		return ctime + transfer + dtime
	}
}
