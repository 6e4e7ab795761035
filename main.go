// Entrypoint for the Cobra CLI that delegates to the root command in cmd/root.go.

package main

import (
	"github.com/flipflopcrf/ffcrf/cmd"
)

func main() {
	cmd.Execute()
}
