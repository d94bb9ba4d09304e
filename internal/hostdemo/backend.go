// Package hostdemo is a minimal host compression backend used by the
// btune CLI to exercise the tuner end to end. It is deliberately not a
// real Blosc host: each tuner.Codec maps to a real third-party codec
// library (never a hand-rolled stand-in), but block splitting,
// filtering and the full C-level wire protocol a production host
// implements are out of scope (§2.1).
package hostdemo

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/blosc/btune/tuner"
)

// Backend compresses and decompresses chunks through one of the demo
// codecs, timing both passes the way a real host would for Tuner.Update
// (§6.1).
type Backend struct{}

// Result carries the measurements the tuner consumes: compressed byte
// count and wall-clock compression/decompression time.
type Result struct {
	CBytes int64
	CTime  float64
	DTime  float64
}

// Run compresses data with the codec named by p.CompCode at p.CLevel,
// then immediately decompresses the result to measure dtime. BLOSCLZ
// and LZ4HC have no standalone library in this module's dependency
// pack and fall back to LZ4 framing (noted in DESIGN.md); ZSTD and
// ZLIB map directly to klauspost/compress (zstd and flate), LZ4 to
// pierrec/lz4/v4.
func (Backend) Run(data []byte, p tuner.CParams) (Result, error) {
	start := time.Now()
	compressed, err := compress(p.CompCode, p.CLevel, data)
	if err != nil {
		return Result{}, fmt.Errorf("hostdemo: compress: %w", err)
	}
	ctime := time.Since(start).Seconds()

	start = time.Now()
	if _, err := decompress(p.CompCode, compressed); err != nil {
		return Result{}, fmt.Errorf("hostdemo: decompress: %w", err)
	}
	dtime := time.Since(start).Seconds()

	return Result{CBytes: int64(len(compressed)), CTime: ctime, DTime: dtime}, nil
}

func compress(codec tuner.Codec, clevel int, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	switch codec {
	case tuner.ZSTD:
		w, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstdLevel(clevel)))
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			w.Close()
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	case tuner.ZLIB:
		w, err := flate.NewWriter(&buf, flateLevel(clevel))
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			w.Close()
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	default: // BLOSCLZ, LZ4, LZ4HC all demoed through LZ4 framing
		w := lz4.NewWriter(&buf)
		if err := w.Apply(lz4.CompressionLevelOption(lz4Level(clevel))); err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			w.Close()
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func decompress(codec tuner.Codec, data []byte) ([]byte, error) {
	switch codec {
	case tuner.ZSTD:
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case tuner.ZLIB:
		r := flate.NewReader(bytes.NewReader(data))
		defer r.Close()
		return io.ReadAll(r)
	default:
		r := lz4.NewReader(bytes.NewReader(data))
		return io.ReadAll(r)
	}
}

// flateLevel maps BTune's 1-9 clevel onto flate's -2..9 scale.
func flateLevel(clevel int) int {
	if clevel < 1 {
		return flate.DefaultCompression
	}
	if clevel > flate.BestCompression {
		return flate.BestCompression
	}
	return clevel
}

// zstdLevel maps BTune's 1-9 clevel onto klauspost/compress/zstd's four
// speed/ratio tiers.
func zstdLevel(clevel int) zstd.EncoderLevel {
	switch {
	case clevel <= 2:
		return zstd.SpeedFastest
	case clevel <= 5:
		return zstd.SpeedDefault
	case clevel <= 7:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

// lz4Level maps BTune's 1-9 clevel onto lz4's coarser level constants.
func lz4Level(clevel int) lz4.CompressionLevel {
	switch {
	case clevel <= 3:
		return lz4.Fast
	case clevel <= 6:
		return lz4.Level6
	default:
		return lz4.Level9
	}
}
