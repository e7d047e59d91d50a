package interfaces

import (
	"context"

	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
)

// AdminClient is the Firestore Admin API surface the reconciler
// consumes. Listings return point-in-time snapshots with synthetic
// entries already excluded: the document-identity field is stripped
// from every index, and the ancestor-default field record is dropped
// from override listings.
type AdminClient interface {
	ListIndexes(ctx context.Context) ([]*index.LiveIndex, error)
	ListFieldOverrides(ctx context.Context) ([]*index.LiveFieldOverride, error)

	// CreateIndex issues a fire-and-confirm creation; it does not wait
	// for the index build to finish.
	CreateIndex(ctx context.Context, collectionGroup string, scope index.QueryScope, fields []*index.Field) error

	// UpdateFieldOverride replaces the whole index configuration of
	// one field, fixed to collection scope.
	UpdateFieldOverride(ctx context.Context, collectionGroup, fieldPath string, indexes []*index.OverrideIndex) error
}
