package index

import (
	"context"

	"github.com/secmon-lab/fsindex/pkg/utils/logging"
)

// Normalize upgrades a specification written in the legacy format into
// the current shape, in place: collectionId becomes collectionGroup,
// an absent queryScope becomes DefaultQueryScope, and a legacy per
// field mode is translated into order or arrayConfig. Field overrides
// never had a legacy format and pass through untouched.
//
// Normalize is best-effort and does not validate; malformed values are
// carried over as-is for Validate to reject. It returns false when the
// document has no indexes key at all, so the caller can distinguish
// "nothing to normalize" from an empty but present index list.
func (x *SpecDocument) Normalize(ctx context.Context) bool {
	if x.Indexes == nil {
		return false
	}

	for _, idx := range x.Indexes {
		if idx.CollectionGroup == "" {
			idx.CollectionGroup = idx.CollectionID
			idx.CollectionID = ""
		}
		if idx.QueryScope == "" {
			idx.QueryScope = DefaultQueryScope
		}

		for _, field := range idx.Fields {
			if field.Mode == "" {
				continue
			}

			logging.From(ctx).Warn("field uses deprecated mode discriminator, write order or arrayConfig instead",
				"collectionGroup", idx.CollectionGroup,
				"fieldPath", field.FieldPath,
				"mode", field.Mode,
			)

			if field.Mode == ModeArrayContains {
				field.ArrayConfig = ArrayContains
			} else {
				field.Order = Order(field.Mode)
			}
			field.Mode = ""
		}
	}

	return true
}
