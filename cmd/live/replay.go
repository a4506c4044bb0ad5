package main

import (
	"github.com/aretw0/live/internal/cli"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file|->",
	Short: "Render a recorded event stream",
	Long: `Reads NDJSON or multi-document YAML events from a file, or from stdin when
the argument is "-", and renders them in order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}

		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		format, _ := cmd.Flags().GetString("format")
		strict, _ := cmd.Flags().GetBool("strict")

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		_, err = cli.RunReplay(sc, rt, cli.ReplayOptions{
			Path:   path,
			Format: format,
			Strict: strict,
			Stdin:  cmd.InOrStdin(),
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().String("format", cli.FormatAuto, "Stream format: auto, json or yaml")
	replayCmd.Flags().Bool("strict", false, "Stop at the first malformed event")
}
