package main

import (
	"fmt"
	"os"
	"strings"

	"toolbox/internal/cli"
	"toolbox/internal/entrypoint"
)

// entrypointSuffix selects entrypoint mode by invocation name. The launcher
// bind-mounts this binary into the container as /toolbox.entrypoint, so the
// runtime invokes it under that name.
const entrypointSuffix = ".entrypoint"

func main() {
	// This argv[0] check is the single source of truth for which role the
	// process is playing; the explicit `entrypoint` subcommand is only a
	// manual override.
	if strings.HasSuffix(os.Args[0], entrypointSuffix) {
		if err := entrypoint.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cli.Execute()
}
