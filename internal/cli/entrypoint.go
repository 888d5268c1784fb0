package cli

import (
	"github.com/spf13/cobra"

	"toolbox/internal/entrypoint"
)

// entrypointCmd forces entrypoint mode regardless of invocation name.
// It exists for the container runtime; do not run it on the host.
var entrypointCmd = &cobra.Command{
	Use:   "entrypoint",
	Short: "Run the in-container entrypoint. Do not call it outside a container",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return entrypoint.Run()
	},
}
