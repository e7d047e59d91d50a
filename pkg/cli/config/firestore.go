package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/fsindex/pkg/adapter/firestore"
	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID string
}

func (c *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project-id",
			Aliases:     []string{"p"},
			Usage:       "Google Cloud project ID",
			Destination: &c.projectID,
			Category:    "Firestore",
			Sources:     cli.EnvVars("FSINDEX_PROJECT_ID", "GOOGLE_CLOUD_PROJECT"),
		},
	}
}

func (c Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", c.projectID),
		slog.String("database_id", index.DatabaseID),
	)
}

func (c *Firestore) ProjectID() string {
	return c.projectID
}

func (c *Firestore) Configure(ctx context.Context) (*firestore.Client, error) {
	if c.projectID == "" {
		return nil, goerr.New("project-id is required")
	}
	return firestore.New(ctx, c.projectID)
}
