package btune

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blosc/btune/tuner"
)

// FileConfig is the on-disk YAML shape for --config, mirroring
// tuner.Config/tuner.Behaviour one field at a time so a typo'd key is
// rejected rather than silently ignored.
type FileConfig struct {
	Bandwidth          int    `yaml:"bandwidth"`
	PerfMode           string `yaml:"perf_mode"`
	CompMode           string `yaml:"comp_mode"`
	MaxThreads         int    `yaml:"max_threads"`
	TypeSize           int    `yaml:"typesize"`
	SamplesPerDecision int    `yaml:"samples_per_decision"`

	Behaviour struct {
		NWaitsBeforeReadapt int    `yaml:"nwaits_before_readapt"`
		NSoftsBeforeHard    int    `yaml:"nsofts_before_hard"`
		NHardsBeforeStop    int    `yaml:"nhards_before_stop"`
		RepeatMode          string `yaml:"repeat_mode"`
		DisableShuffleSize  bool   `yaml:"disable_shuffle_size"`
		DisableBlockSize    bool   `yaml:"disable_blocksize"`
		DisableMemcpy       bool   `yaml:"disable_memcpy"`
		DisableThreads      bool   `yaml:"disable_threads"`
	} `yaml:"behaviour"`
}

// loadFileConfig parses path with strict field checking: an unknown
// key is a configuration mistake, not a silently-ignored typo.
func loadFileConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, err
	}
	var fc FileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fc); err != nil {
		return FileConfig{}, err
	}
	return fc, nil
}

// toTunerConfig converts the parsed file into a tuner.Config, starting
// from tuner.DefaultConfig() so omitted sections behave exactly as the
// zero-config default (§3).
func (fc FileConfig) toTunerConfig() tuner.Config {
	cfg := tuner.DefaultConfig()

	if fc.Bandwidth > 0 {
		cfg.Bandwidth = fc.Bandwidth
	}
	if fc.PerfMode != "" {
		cfg.PerfMode, _ = tuner.ParsePerfMode(fc.PerfMode)
	}
	if fc.CompMode != "" {
		cfg.CompMode, _ = tuner.ParseCompMode(fc.CompMode)
	}
	if fc.MaxThreads > 0 {
		cfg.MaxThreads = fc.MaxThreads
	}
	if fc.TypeSize > 0 {
		cfg.TypeSize = fc.TypeSize
	}
	if fc.SamplesPerDecision > 0 {
		cfg.SamplesPerDecision = fc.SamplesPerDecision
	}

	cfg.Behaviour.NWaitsBeforeReadapt = fc.Behaviour.NWaitsBeforeReadapt
	cfg.Behaviour.NSoftsBeforeHard = fc.Behaviour.NSoftsBeforeHard
	if fc.Behaviour.NHardsBeforeStop > 0 {
		cfg.Behaviour.NHardsBeforeStop = fc.Behaviour.NHardsBeforeStop
	}
	if fc.Behaviour.RepeatMode != "" {
		cfg.Behaviour.RepeatMode, _ = tuner.ParseRepeatMode(fc.Behaviour.RepeatMode)
	}
	cfg.Behaviour.DisableShuffleSize = fc.Behaviour.DisableShuffleSize
	cfg.Behaviour.DisableBlockSize = fc.Behaviour.DisableBlockSize
	cfg.Behaviour.DisableMemcpy = fc.Behaviour.DisableMemcpy
	cfg.Behaviour.DisableThreads = fc.Behaviour.DisableThreads

	return cfg
}
