package main

import (
	"fmt"
	"os"

	"github.com/aretw0/live/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "live",
	Short: "Render orchestration progress events as console text",
	Long: `live turns play, task and host result events into readable console output.
Events come from a recorded stream, a Redis list or HTTP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./live.yaml when present)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase verbosity (-v, -vv, -vvv)")
	rootCmd.PersistentFlags().String("failure-policy", "", "How failed results are rendered: detailed or brief")
	rootCmd.PersistentFlags().String("color", "", "Color output: auto, always or never")
	rootCmd.PersistentFlags().String("log-level", "", "Operational log level on stderr: debug, info, warn or error")
}

// setup builds the rendering pipeline from the persistent flags.
func setup(cmd *cobra.Command) (*cli.Runtime, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	verbosity, _ := flags.GetCount("verbose")
	policy, _ := flags.GetString("failure-policy")
	color, _ := flags.GetString("color")
	logLevel, _ := flags.GetString("log-level")

	return cli.Setup(cli.Options{
		ConfigPath:    configPath,
		Verbosity:     verbosity,
		FailurePolicy: policy,
		Color:         color,
		LogLevel:      logLevel,
		Stdout:        cmd.OutOrStdout(),
		Stderr:        cmd.ErrOrStderr(),
	})
}
