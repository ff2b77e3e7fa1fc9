package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/DrSleep16/comics-vk/internal/app"
	"github.com/DrSleep16/comics-vk/internal/publisher"
	"github.com/DrSleep16/comics-vk/pkg/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		envFile  string
		comicNum int
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:          "comics-vk",
		Short:        "Post a random xkcd comic to a VK group wall",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(envFile)
			if err != nil {
				return err
			}
			if !dryRun {
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			_, err = app.Run(ctx, cfg, publisher.Options{
				ComicNum: comicNum,
				DryRun:   dryRun,
			})
			return err
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file read before the environment")
	cmd.Flags().IntVar(&comicNum, "comic", 0, "publish this comic number instead of a random one")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "download the comic and log the post without calling VK")

	return cmd
}
