// Idiomatic entrypoint for Cobra CLI that delegates handling to the Cobra root command in cmd/btune/root.go

package main

import (
	btune "github.com/blosc/btune/cmd/btune"
)

func main() {
	btune.Execute()
}
