package index

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/fsindex/pkg/domain/model/errs"
)

// Validate checks the document against the specification shape. It is
// exhaustive across entries: every invalid index and override is
// reported, joined into one error. Within a single entry it stops at
// the first missing required key, since later checks assume the key.
func (x *SpecDocument) Validate() error {
	if x.Indexes == nil {
		return goerr.New("specification must have indexes", goerr.T(errs.TagValidation))
	}

	var found []error
	for i, idx := range x.Indexes {
		if err := idx.Validate(); err != nil {
			found = append(found, goerr.Wrap(err, "invalid index entry", goerr.V("position", i)))
		}
	}
	for i, override := range x.FieldOverrides {
		if err := override.Validate(); err != nil {
			found = append(found, goerr.Wrap(err, "invalid fieldOverride entry", goerr.V("position", i)))
		}
	}

	return errors.Join(found...)
}

func (x *Index) Validate() error {
	if x.CollectionGroup == "" && x.CollectionID == "" {
		return goerr.New("index must have collectionGroup or collectionId", goerr.T(errs.TagValidation))
	}
	if x.CollectionGroup != "" {
		if x.QueryScope == "" {
			return goerr.New("index with collectionGroup must have queryScope",
				goerr.V("collectionGroup", x.CollectionGroup),
				goerr.T(errs.TagValidation),
			)
		}
		if err := x.QueryScope.Validate(); err != nil {
			return goerr.Wrap(err, "invalid index", goerr.V("collectionGroup", x.CollectionGroup))
		}
	}

	if len(x.Fields) == 0 {
		return goerr.New("index must have a non-empty fields array",
			goerr.V("collectionGroup", x.CollectionGroup),
			goerr.T(errs.TagValidation),
		)
	}
	for _, field := range x.Fields {
		if err := field.Validate(); err != nil {
			return goerr.Wrap(err, "invalid index field", goerr.V("collectionGroup", x.CollectionGroup))
		}
	}

	return nil
}

func (x *Field) Validate() error {
	if x.FieldPath == "" {
		return goerr.New("field must have fieldPath", goerr.T(errs.TagValidation))
	}
	if x.Order == "" && x.ArrayConfig == "" && x.Mode == "" {
		return goerr.New("field must have order, arrayConfig or mode",
			goerr.V("fieldPath", x.FieldPath),
			goerr.T(errs.TagValidation),
		)
	}

	if x.Mode != "" {
		if err := x.Mode.Validate(); err != nil {
			return goerr.Wrap(err, "invalid field", goerr.V("fieldPath", x.FieldPath))
		}
	}
	if x.Order != "" {
		if err := x.Order.Validate(); err != nil {
			return goerr.Wrap(err, "invalid field", goerr.V("fieldPath", x.FieldPath))
		}
	}
	if x.ArrayConfig != "" {
		if err := x.ArrayConfig.Validate(); err != nil {
			return goerr.Wrap(err, "invalid field", goerr.V("fieldPath", x.FieldPath))
		}
	}

	return nil
}

func (x *FieldOverride) Validate() error {
	if x.CollectionGroup == "" {
		return goerr.New("fieldOverride must have collectionGroup", goerr.T(errs.TagValidation))
	}
	if x.FieldPath == "" {
		return goerr.New("fieldOverride must have fieldPath",
			goerr.V("collectionGroup", x.CollectionGroup),
			goerr.T(errs.TagValidation),
		)
	}
	if len(x.Indexes) == 0 {
		return goerr.New("fieldOverride must have a non-empty indexes array",
			goerr.V("collectionGroup", x.CollectionGroup),
			goerr.V("fieldPath", x.FieldPath),
			goerr.T(errs.TagValidation),
		)
	}

	for _, idx := range x.Indexes {
		if err := idx.Validate(); err != nil {
			return goerr.Wrap(err, "invalid fieldOverride index",
				goerr.V("collectionGroup", x.CollectionGroup),
				goerr.V("fieldPath", x.FieldPath),
			)
		}
	}

	return nil
}

func (x *OverrideIndex) Validate() error {
	if x.Order == "" && x.ArrayConfig == "" {
		return goerr.New("fieldOverride index must have order or arrayConfig", goerr.T(errs.TagValidation))
	}
	if x.Order != "" {
		if err := x.Order.Validate(); err != nil {
			return err
		}
	}
	if x.ArrayConfig != "" {
		if err := x.ArrayConfig.Validate(); err != nil {
			return err
		}
	}
	if x.QueryScope != "" {
		if err := x.QueryScope.Validate(); err != nil {
			return err
		}
	}

	return nil
}
