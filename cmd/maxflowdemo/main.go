// File: main.go
// Role: Entry point for the maxflowdemo CLI — reads a YAML topology,
// runs the requested algorithm, prints the result. No algorithmic logic
// lives here; everything is delegated to flow.FlowNetwork.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mfacore/maxflow/cmd/maxflowdemo/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("maxflowdemo: failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
