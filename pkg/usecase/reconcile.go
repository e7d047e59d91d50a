package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/fsindex/pkg/domain/model/errs"
	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
	"github.com/secmon-lab/fsindex/pkg/utils/logging"
)

// Deploy reconciles a declarative specification against the live
// configuration. It is additive only: desired entries with no live
// equivalent are created or patched, everything already deployed is
// left untouched, and nothing is ever deleted. A pass over an
// unchanged specification issues zero mutating calls.
//
// Normalization and validation failures abort the pass before any
// remote call. Remote failures are collected per entry and returned
// together after every issued call has completed; a failed create does
// not block its siblings.
func (uc *UseCases) Deploy(ctx context.Context, doc *index.SpecDocument) error {
	logger := logging.From(ctx)

	if !doc.Normalize(ctx) {
		return goerr.New("specification has no indexes to deploy", goerr.T(errs.TagValidation))
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	liveIndexes, liveOverrides, err := uc.snapshot(ctx)
	if err != nil {
		return err
	}

	toCreate, err := missingIndexes(ctx, doc.Indexes, liveIndexes)
	if err != nil {
		return err
	}
	toPatch, err := missingOverrides(ctx, doc.FieldOverrides, liveOverrides)
	if err != nil {
		return err
	}

	if uc.dryRun {
		for _, want := range toCreate {
			logger.Info("dry-run: would create index",
				"collection_group", want.CollectionGroup,
				"query_scope", want.QueryScope,
				"fields", len(want.Fields),
			)
		}
		for _, want := range toPatch {
			logger.Info("dry-run: would replace field override",
				"collection_group", want.CollectionGroup,
				"field_path", want.FieldPath,
			)
		}
		return nil
	}

	// Each call targets a disjoint entry, so they run concurrently
	// with no ordering between them. The pass joins on all of them
	// before reporting, and per-call failures are aggregated instead
	// of masking each other.
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []error
	)
	fail := func(err error) {
		mu.Lock()
		failures = append(failures, err)
		mu.Unlock()
	}

	for _, want := range toCreate {
		wg.Add(1)
		go func(want *index.Index) {
			defer wg.Done()
			if err := uc.client.CreateIndex(ctx, want.CollectionGroup, want.QueryScope, want.Fields); err != nil {
				fail(goerr.Wrap(err, "create failed",
					goerr.V("collection_group", want.CollectionGroup),
				))
				return
			}
			logger.Info("created index",
				"collection_group", want.CollectionGroup,
				"query_scope", want.QueryScope,
				"fields", len(want.Fields),
			)
		}(want)
	}

	for _, want := range toPatch {
		wg.Add(1)
		go func(want *index.FieldOverride) {
			defer wg.Done()
			if err := uc.client.UpdateFieldOverride(ctx, want.CollectionGroup, want.FieldPath, want.Indexes); err != nil {
				fail(goerr.Wrap(err, "field override replace failed",
					goerr.V("collection_group", want.CollectionGroup),
					goerr.V("field_path", want.FieldPath),
				))
				return
			}
			logger.Info("replaced field override",
				"collection_group", want.CollectionGroup,
				"field_path", want.FieldPath,
			)
		}(want)
	}

	wg.Wait()
	return errors.Join(failures...)
}

// snapshot fetches both live listings concurrently. Both must complete
// before any matching starts; the snapshot is used for exactly one
// pass and never cached.
func (uc *UseCases) snapshot(ctx context.Context) ([]*index.LiveIndex, []*index.LiveFieldOverride, error) {
	var (
		wg            sync.WaitGroup
		liveIndexes   []*index.LiveIndex
		liveOverrides []*index.LiveFieldOverride
		idxErr        error
		fldErr        error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		liveIndexes, idxErr = uc.client.ListIndexes(ctx)
	}()
	go func() {
		defer wg.Done()
		liveOverrides, fldErr = uc.client.ListFieldOverrides(ctx)
	}()
	wg.Wait()

	if idxErr != nil {
		return nil, nil, goerr.Wrap(idxErr, "failed to fetch live index snapshot")
	}
	if fldErr != nil {
		return nil, nil, goerr.Wrap(fldErr, "failed to fetch live field override snapshot")
	}

	return liveIndexes, liveOverrides, nil
}

func missingIndexes(ctx context.Context, want []*index.Index, live []*index.LiveIndex) ([]*index.Index, error) {
	var missing []*index.Index

	for _, spec := range want {
		var matched *index.LiveIndex
		for _, deployed := range live {
			ok, err := spec.Matches(deployed)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = deployed
				break
			}
		}

		if matched == nil {
			missing = append(missing, spec)
			continue
		}
		logging.From(ctx).Info("index already deployed, skipping",
			"collection_group", spec.CollectionGroup,
			"state", matched.State,
		)
	}

	return missing, nil
}

func missingOverrides(ctx context.Context, want []*index.FieldOverride, live []*index.LiveFieldOverride) ([]*index.FieldOverride, error) {
	var missing []*index.FieldOverride

	for _, spec := range want {
		matched := false
		for _, deployed := range live {
			ok, err := spec.Matches(deployed)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = true
				break
			}
		}

		if !matched {
			missing = append(missing, spec)
			continue
		}
		logging.From(ctx).Info("field override already deployed, skipping",
			"collection_group", spec.CollectionGroup,
			"field_path", spec.FieldPath,
		)
	}

	return missing, nil
}
