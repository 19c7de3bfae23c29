package client

import (
	"context"
	"errors"
	"os"

	"cloud.google.com/go/compute/metadata"
	"github.com/rs/zerolog/log"
)

// ErrProjectNotFound is returned when no project is configured and none can
// be discovered from the environment.
var ErrProjectNotFound = errors.New("project could not be determined")

var projectEnvVars = []string{"GCLOUD_PROJECT", "GOOGLE_CLOUD_PROJECT"}

// swapped in tests
var (
	onGCE             = metadata.OnGCE
	metadataProjectID = metadata.ProjectIDWithContext
)

// ResolveProject returns explicit if set. Otherwise it checks
// $GCLOUD_PROJECT and $GOOGLE_CLOUD_PROJECT, then asks the Compute Engine
// metadata server.
func ResolveProject(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	for _, env := range projectEnvVars {
		if project := os.Getenv(env); project != "" {
			return project, nil
		}
	}

	if !onGCE() {
		return "", ErrProjectNotFound
	}

	project, err := metadataProjectID(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("metadata server did not return a project")
		return "", errors.Join(ErrProjectNotFound, err)
	}
	if project == "" {
		return "", ErrProjectNotFound
	}
	return project, nil
}
