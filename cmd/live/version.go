package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/live"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of live",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "live version %s\n", strings.TrimSpace(live.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
