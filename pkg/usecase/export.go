package usecase

import (
	"context"

	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
)

// Export fetches the live configuration and turns it into a
// declarative specification document. Deploying the result against the
// same database issues no calls.
func (uc *UseCases) Export(ctx context.Context) (*index.SpecDocument, error) {
	liveIndexes, liveOverrides, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return index.MakeSpecFromLive(ctx, liveIndexes, liveOverrides)
}
