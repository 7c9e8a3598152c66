package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the atelier version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("atelier %s\n", version)
	},
}
