package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set via ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for showinfm`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("showinfm version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}
