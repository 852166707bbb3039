package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foamtab/foamtab/internal/version"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of foamtab`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("foamtab %s\n", version.String())
	},
}
