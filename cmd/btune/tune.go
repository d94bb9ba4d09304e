package btune

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blosc/btune/host"
	"github.com/blosc/btune/internal/hostdemo"
	"github.com/blosc/btune/tuner"
)

var (
	numChunks      int
	chunkBytes     int
	typeSizeBytes  int
	redundancy     float64
	runSeed        int64
	maxThreadsFlag int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive the tuner over a sequence of synthetic chunks",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		cfg := tuner.DefaultConfig()
		if configPath != "" {
			fc, err := loadFileConfig(configPath)
			if err != nil {
				logrus.Fatalf("loading config %s: %v", configPath, err)
			}
			cfg = fc.toTunerConfig()
		}
		if maxThreadsFlag > 0 {
			cfg.MaxThreads = maxThreadsFlag
		}
		cfg.TypeSize = typeSizeBytes

		tu := tuner.New(cfg)
		defer tu.Free()

		gen := hostdemo.NewSeededGenerator(hostdemo.RunKey(runSeed))
		var backend hostdemo.Backend

		logrus.Infof("btune run: %d chunks of %d bytes, redundancy=%.2f, perf_mode=%s comp_mode=%s",
			numChunks, chunkBytes, redundancy, cfg.PerfMode, cfg.CompMode)

		for i := 0; i < numChunks && !tu.IsStopped(); i++ {
			data := gen.Chunk(fmt.Sprintf("chunk-%d", i), chunkBytes, redundancy)

			if i == 0 {
				if err := tu.RunPredictorBootstrap(splitIntoBlocks(data, 4096)); err != nil {
					logrus.Debugf("predictor bootstrap skipped: %v", err)
				}
			}

			ctx := &host.Context{SourceSize: int64(len(data))}
			dctx := &host.DContext{}
			tu.NextCParams(ctx, dctx, int64(len(data)))

			trial := tuner.CParams{CompCode: tuner.Codec(ctx.CompCode), CLevel: ctx.CLevel}
			res, err := backend.Run(data, trial)
			if err != nil {
				logrus.Fatalf("chunk %d: %v", i, err)
			}
			ctx.DestSize = res.CBytes
			tu.Update(ctx, res.CTime, res.DTime)
		}

		best := tu.Best()
		nsofts, nhards, nwaitings := tu.Counters()
		logrus.Infof("final: codec=%s filter=%s clevel=%d blocksize=%d state=%s (softs=%d hards=%d waits=%d)",
			best.CompCode, best.Filter, best.CLevel, best.BlockSize, tu.State(), nsofts, nhards, nwaitings)
	},
}

func splitIntoBlocks(data []byte, blockSize int) [][]byte {
	var blocks [][]byte
	for off := 0; off < len(data); off += blockSize {
		end := off + blockSize
		if end > len(data) {
			end = len(data)
		}
		blocks = append(blocks, data[off:end])
	}
	return blocks
}

func init() {
	runCmd.Flags().IntVar(&numChunks, "chunks", 100, "Number of synthetic chunks to feed the tuner")
	runCmd.Flags().IntVar(&chunkBytes, "chunk-size", 1<<20, "Size in bytes of each synthetic chunk")
	runCmd.Flags().IntVar(&typeSizeBytes, "typesize", 4, "Element size in bytes for blocksize/shuffle alignment")
	runCmd.Flags().Float64Var(&redundancy, "redundancy", 0.7, "Synthetic data redundancy in [0,1], higher compresses better")
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "Seed for the synthetic data generator")
	runCmd.Flags().IntVar(&maxThreadsFlag, "max-threads", 0, "Override max_threads from the config file (0: use config)")
}
