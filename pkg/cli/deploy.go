package cli

import (
	"context"

	"github.com/secmon-lab/fsindex/pkg/cli/config"
	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
	"github.com/secmon-lab/fsindex/pkg/usecase"
	"github.com/secmon-lab/fsindex/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdDeploy() *cli.Command {
	var (
		fsCfg    config.Firestore
		specPath string
		dryRun   bool
	)

	return &cli.Command{
		Name:    "deploy",
		Aliases: []string{"d"},
		Usage:   "Create missing indexes and field overrides from a specification file",
		Flags: append(fsCfg.Flags(),
			&cli.StringFlag{
				Name:        "indexes",
				Aliases:     []string{"i"},
				Usage:       "Path to the index specification file (JSON or YAML)",
				Value:       "firestore.indexes.json",
				Sources:     cli.EnvVars("FSINDEX_SPEC_FILE"),
				Destination: &specPath,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Show what would be created without applying",
				Destination: &dryRun,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)
			logger.Info("Starting index deploy",
				"firestore", fsCfg,
				"spec", specPath,
				"dry_run", dryRun,
			)

			doc, err := index.Load(specPath)
			if err != nil {
				return err
			}

			client, err := fsCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			uc := usecase.New(client, usecase.WithDryRun(dryRun))
			if err := uc.Deploy(ctx, doc); err != nil {
				return err
			}

			logger.Info("Deploy completed")
			return nil
		},
	}
}
