package tuner

import (
	"fmt"
	"os"
	"text/tabwriter"
)

// LogRow is one trial's record, the §6.3 BTUNE_LOG columns.
type LogRow struct {
	Chunk       int
	Codec       Codec
	Filter      Filter
	Split       SplitMode
	CLevel      int
	BlockSize   int64
	ShuffleSize int
	NThreadsComp int
	NThreadsDecomp int
	Score       float64
	Cratio      float64
	State       Phase
	Readapt     ReadaptFrom
	Winner      bool
}

// recordLogRow appends the just-judged trial to t.log and, when
// BTUNE_LOG is set, writes it to stdout as a tab-aligned table row
// (§6.3).
func (t *Tuner) recordLogRow(improved bool) {
	row := LogRow{
		Chunk:          t.chunkIndex,
		Codec:          t.aux.CompCode,
		Filter:         t.aux.Filter,
		Split:          t.aux.SplitMode,
		CLevel:         t.aux.CLevel,
		BlockSize:      t.aux.BlockSize,
		ShuffleSize:    t.aux.ShuffleSize,
		NThreadsComp:   t.aux.NThreadsComp,
		NThreadsDecomp: t.aux.NThreadsDecomp,
		Score:          t.aux.Score,
		Cratio:         t.aux.Cratio,
		State:          t.state,
		Readapt:        t.readaptFrom,
		Winner:         improved,
	}
	t.log = append(t.log, row)

	if !t.diag.Log {
		return
	}
	if t.logw == nil {
		t.logw = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(t.logw, "Codec\tFilter\tSplit\tC.Level\tBlocksize\tShufflesize\tC.Threads\tD.Threads\tScore\tC.Ratio\tState\tReadapt\tWinner")
	}
	fmt.Fprintf(t.logw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%.4f\t%.4f\t%s\t%s\t%v\n",
		row.Codec, row.Filter, row.Split, row.CLevel, row.BlockSize, row.ShuffleSize,
		row.NThreadsComp, row.NThreadsDecomp, row.Score, row.Cratio, row.State, row.Readapt, row.Winner)
	t.logw.Flush()
}

// Log returns the full in-memory trial history (§6.3, §8).
func (t *Tuner) Log() []LogRow { return t.log }
