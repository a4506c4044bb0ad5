package main

import (
	"fmt"
	"net"

	"github.com/aretw0/live"
	"github.com/aretw0/live/internal/cli"
	"github.com/aretw0/live/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Accept events over HTTP and render them",
	Long:  `Starts an HTTP server exposing POST /events, GET /healthz and GET /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}

		port := rt.Config.Serve.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetString("port")
		}

		ln, err := net.Listen("tcp", ":"+port)
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}

		tui.PrintBanner(cmd.ErrOrStderr(), rt.Console.Profile(), "serve", live.Version, "listening on "+ln.Addr().String())

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		return cli.RunServe(sc, rt, ln)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
