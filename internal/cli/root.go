package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"toolbox/internal/config"
	"toolbox/internal/launcher"
)

// Version of the toolbox binary.
var Version = "0.1.0"

var imageRef string

var rootCmd = &cobra.Command{
	Use:   "toolbox",
	Short: "Launch a host-integrated toolbox container",
	Long: `Toolbox launches an interactive, privileged container whose shell runs
as your host user, with host state re-exposed under /host inside the
container. The launcher replaces itself with the container runtime, so on
success this command never returns to the calling shell until the
in-container session ends.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		img := config.Image(imageRef, cmd.Flags().Changed("image"))
		return launcher.Run(img)
	},
}

// Execute runs the root command. Any error in either phase is terminal:
// one diagnostic line to stderr, non-zero exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(entrypointCmd)

	rootCmd.Flags().StringVarP(&imageRef, "image", "I", config.DefaultImage,
		"container image to launch")
}
