package main

import (
	"fmt"

	"github.com/aretw0/live"
	"github.com/aretw0/live/internal/cli"
	"github.com/aretw0/live/internal/presentation/tui"
	"github.com/aretw0/live/pkg/adapters/redis"
	"github.com/spf13/cobra"
)

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Render events popped from a Redis list",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}

		addr := rt.Config.Redis.Addr
		if cmd.Flags().Changed("redis-addr") {
			addr, _ = cmd.Flags().GetString("redis-addr")
		}
		key := rt.Config.Redis.Key
		if cmd.Flags().Changed("key") || key == "" {
			key, _ = cmd.Flags().GetString("key")
		}

		source := redis.New(addr, rt.Config.Redis.Password, rt.Config.Redis.DB, redis.WithKey(key))
		defer source.Close()

		tui.PrintBanner(cmd.ErrOrStderr(), rt.Console.Profile(), "tail", live.Version, fmt.Sprintf("%s %s", addr, key))

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		_, err = cli.RunTail(sc, rt, source)
		return err
	},
}

func init() {
	rootCmd.AddCommand(tailCmd)
	tailCmd.Flags().String("redis-addr", "localhost:6379", "Redis address")
	tailCmd.Flags().String("key", redis.DefaultKey, "List key to pop events from")
}
