package btune

import "testing"

func TestRunCmd_FlagsRegistered(t *testing.T) {
	for _, name := range []string{"chunks", "chunk-size", "typesize", "redundancy", "seed", "max-threads"} {
		if flag := runCmd.Flags().Lookup(name); flag == nil {
			t.Errorf("expected run command to register flag %q", name)
		}
	}
}

func TestRunCmd_DefaultChunkSize(t *testing.T) {
	flag := runCmd.Flags().Lookup("chunk-size")
	if flag == nil {
		t.Fatal("chunk-size flag must be registered")
	}
	if flag.DefValue != "1048576" {
		t.Fatalf("expected default chunk-size 1048576, got %s", flag.DefValue)
	}
}

func TestRootCmd_HasConfigAndLogFlags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("expected persistent --config flag")
	}
	if rootCmd.PersistentFlags().Lookup("log") == nil {
		t.Error("expected persistent --log flag")
	}
}
