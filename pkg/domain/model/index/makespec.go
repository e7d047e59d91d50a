package index

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/fsindex/pkg/utils/logging"
)

// MakeSpecFromLive builds a declarative specification document from a
// live snapshot, suitable for writing back as configuration. The
// result validates cleanly and matches every entry of the snapshot it
// was built from, so deploying it issues no calls.
//
// A nil override list is not an error; it yields a document without
// fieldOverrides.
func MakeSpecFromLive(ctx context.Context, indexes []*LiveIndex, overrides []*LiveFieldOverride) (*SpecDocument, error) {
	if overrides == nil {
		logging.From(ctx).Info("no field overrides in live snapshot")
	}

	doc := &SpecDocument{
		Indexes: make([]*Index, 0, len(indexes)),
	}

	for _, live := range indexes {
		name, err := ParseIndexName(live.Name)
		if err != nil {
			return nil, goerr.Wrap(err, "cannot derive spec entry from live index")
		}

		fields := make([]*Field, 0, len(live.Fields))
		for _, f := range live.Fields {
			fields = append(fields, &Field{
				FieldPath:   f.FieldPath,
				Order:       f.Order,
				ArrayConfig: f.ArrayConfig,
			})
		}

		doc.Indexes = append(doc.Indexes, &Index{
			CollectionGroup: name.CollectionGroupID,
			QueryScope:      live.QueryScope,
			Fields:          fields,
		})
	}

	for _, live := range overrides {
		name, err := ParseFieldName(live.Name)
		if err != nil {
			return nil, goerr.Wrap(err, "cannot derive spec entry from live field override")
		}

		indexes := make([]*OverrideIndex, 0, len(live.Indexes))
		for _, oi := range live.Indexes {
			indexes = append(indexes, &OverrideIndex{
				QueryScope:  oi.QueryScope,
				Order:       oi.Order,
				ArrayConfig: oi.ArrayConfig,
			})
		}

		doc.FieldOverrides = append(doc.FieldOverrides, &FieldOverride{
			CollectionGroup: name.CollectionGroupID,
			FieldPath:       name.FieldPath,
			Indexes:         indexes,
		})
	}

	return doc, nil
}
