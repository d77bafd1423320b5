package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elhombrefiero/pic-org/internal/app"
	"github.com/elhombrefiero/pic-org/internal/config"
	"github.com/elhombrefiero/pic-org/internal/domain"
	appErrors "github.com/elhombrefiero/pic-org/internal/errors"
	"github.com/elhombrefiero/pic-org/internal/infra/exif"
	"github.com/elhombrefiero/pic-org/internal/infra/fs"
	"github.com/elhombrefiero/pic-org/internal/logging"
	"github.com/elhombrefiero/pic-org/internal/presentation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "pic-org <starting_directory> <storage_directory>",
		Short: "Organizes images into year/month folders by their earliest date",
		Long: "pic-org scans a directory tree for images, derives the earliest known " +
			"date of each one from its metadata and filesystem timestamps, and copies " +
			"it into <storage_directory>/<year>/<month-name>/.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.StartDir = args[0]
			cfg.StorageDir = args[1]
			cfg.ApplyEnv()
			if err := cfg.Validate(); err != nil {
				return fail(appErrors.Wrap(appErrors.InvalidConfig, "config", "", err))
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.Flags().StringVarP(&cfg.Filetype, "filetype", "f", "", `extension to search for (default "jpg")`)
	cmd.Flags().BoolVarP(&cfg.DryRun, "dryrun", "d", false, "only print where files would be copied to")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "per-file trace output")

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	filesystem := fs.OSFS{}
	metadata := exif.Reader{}
	logger := logging.New(os.Stdout, cfg.Verbose)
	printer := presentation.Printer{Writer: os.Stdout}

	if _, err := filesystem.Stat(cfg.StartDir); err != nil {
		return fail(appErrors.Wrap(appErrors.NotFound, "stat", cfg.StartDir, err))
	}

	printer.PrintScan(cfg.StartDir, cfg.Filetype)

	locator := app.Locator{FS: filesystem, Logger: logger}
	found, err := locator.Find(cfg.StartDir, cfg.Filetype)
	if err != nil {
		return fail(appErrors.Wrap(appErrors.Internal, "scan", cfg.StartDir, err))
	}

	printer.PrintFound(len(found))

	placer := app.Placer{
		FS:       filesystem,
		Metadata: metadata,
		Logger:   logger,
	}

	// Per-file errors are logged and the pass continues; the tally is a fold
	// over the outcomes.
	copied := 0
	for _, path := range found {
		outcome, placeErr := placer.Place(ctx, path, cfg.StorageDir, cfg.DryRun)
		if placeErr != nil {
			logger.Infof(appErrors.UserMessage(placeErr))
		}
		if outcome == domain.Moved {
			copied++
		}
	}

	printer.PrintSummary(copied, len(found), cfg.StorageDir)
	return nil
}

func fail(err error) error {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	return err
}
