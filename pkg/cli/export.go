package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/fsindex/pkg/cli/config"
	"github.com/secmon-lab/fsindex/pkg/usecase"
	"github.com/secmon-lab/fsindex/pkg/utils/logging"
	"github.com/secmon-lab/fsindex/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var (
		fsCfg  config.Firestore
		output string
	)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Write the live index configuration back as a specification file",
		Flags: append(fsCfg.Flags(),
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"w"},
				Usage:       "Output path ('-' for stdout; .yaml/.yml selects YAML)",
				Value:       "-",
				Destination: &output,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := fsCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			doc, err := usecase.New(client).Export(ctx)
			if err != nil {
				return err
			}

			raw, err := doc.Encode(output)
			if err != nil {
				return err
			}

			if output == "-" {
				safe.Write(ctx, os.Stdout, raw)
				return nil
			}

			if err := os.WriteFile(output, raw, 0600); err != nil {
				return goerr.Wrap(err, "failed to write specification file", goerr.V("path", output))
			}
			logging.From(ctx).Info("Exported live configuration",
				"path", output,
				"indexes", len(doc.Indexes),
				"field_overrides", len(doc.FieldOverrides),
			)
			return nil
		},
	}
}
