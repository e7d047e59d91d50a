package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/fsindex/pkg/domain/model/errs"
	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
	"github.com/secmon-lab/fsindex/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var specPath string

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Check a specification file without touching the remote database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "indexes",
				Aliases:     []string{"i"},
				Usage:       "Path to the index specification file (JSON or YAML)",
				Value:       "firestore.indexes.json",
				Sources:     cli.EnvVars("FSINDEX_SPEC_FILE"),
				Destination: &specPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			doc, err := index.Load(specPath)
			if err != nil {
				return err
			}

			if !doc.Normalize(ctx) {
				return goerr.New("specification has no indexes key",
					goerr.V("path", specPath),
					goerr.T(errs.TagValidation),
				)
			}
			if err := doc.Validate(); err != nil {
				return err
			}

			logging.From(ctx).Info("Specification is valid",
				"path", specPath,
				"indexes", len(doc.Indexes),
				"field_overrides", len(doc.FieldOverrides),
			)
			return nil
		},
	}
}
