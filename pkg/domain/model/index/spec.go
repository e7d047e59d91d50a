package index

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/fsindex/pkg/domain/model/errs"
)

// QueryScope selects whether an index applies within a single
// collection or across a whole collection group.
type QueryScope string

const (
	ScopeCollection      QueryScope = "COLLECTION"
	ScopeCollectionGroup QueryScope = "COLLECTION_GROUP"
)

// DefaultQueryScope is filled in by Normalize when a specification
// entry omits queryScope.
const DefaultQueryScope = ScopeCollection

func (x QueryScope) Validate() error {
	switch x {
	case ScopeCollection, ScopeCollectionGroup:
		return nil
	}
	return goerr.New("unknown queryScope", goerr.V("queryScope", x), goerr.T(errs.TagValidation))
}

// Order is the sort direction of an indexed field.
type Order string

const (
	OrderAscending  Order = "ASCENDING"
	OrderDescending Order = "DESCENDING"
)

func (x Order) Validate() error {
	switch x {
	case OrderAscending, OrderDescending:
		return nil
	}
	return goerr.New("unknown order", goerr.V("order", x), goerr.T(errs.TagValidation))
}

// ArrayConfig enables "contains"-style queries over array valued
// fields. Mutually exclusive with Order on a single field.
type ArrayConfig string

const ArrayContains ArrayConfig = "CONTAINS"

func (x ArrayConfig) Validate() error {
	if x == ArrayContains {
		return nil
	}
	return goerr.New("unknown arrayConfig", goerr.V("arrayConfig", x), goerr.T(errs.TagValidation))
}

// Mode is the single discriminator used by the legacy specification
// format. Normalize translates it into Order / ArrayConfig.
//
// Deprecated: write order or arrayConfig instead.
type Mode string

const (
	ModeAscending     Mode = "ASCENDING"
	ModeDescending    Mode = "DESCENDING"
	ModeArrayContains Mode = "ARRAY_CONTAINS"
)

func (x Mode) Validate() error {
	switch x {
	case ModeAscending, ModeDescending, ModeArrayContains:
		return nil
	}
	return goerr.New("unknown mode", goerr.V("mode", x), goerr.T(errs.TagValidation))
}

// SpecDocument is the on-disk specification: top-level "indexes" plus
// optional "fieldOverrides". A nil Indexes slice means the indexes key
// was absent from the document, which is distinct from an empty array.
type SpecDocument struct {
	Indexes        []*Index         `json:"indexes" yaml:"indexes"`
	FieldOverrides []*FieldOverride `json:"fieldOverrides,omitempty" yaml:"fieldOverrides,omitempty"`
}

// Index is one desired composite index. CollectionID is the legacy
// spelling of CollectionGroup and is consumed by Normalize.
type Index struct {
	CollectionGroup string     `json:"collectionGroup,omitempty" yaml:"collectionGroup,omitempty"`
	CollectionID    string     `json:"collectionId,omitempty" yaml:"collectionId,omitempty"`
	QueryScope      QueryScope `json:"queryScope,omitempty" yaml:"queryScope,omitempty"`
	Fields          []*Field   `json:"fields" yaml:"fields"`
}

// Field is one indexed field. The position within Index.Fields defines
// the index column order and is significant. Exactly one of Order and
// ArrayConfig is set once the document is normalized.
type Field struct {
	FieldPath   string      `json:"fieldPath" yaml:"fieldPath"`
	Order       Order       `json:"order,omitempty" yaml:"order,omitempty"`
	ArrayConfig ArrayConfig `json:"arrayConfig,omitempty" yaml:"arrayConfig,omitempty"`
	Mode        Mode        `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// FieldOverride replaces the automatic single-field indexing behavior
// of one field. Order within Indexes carries no meaning.
type FieldOverride struct {
	CollectionGroup string           `json:"collectionGroup" yaml:"collectionGroup"`
	FieldPath       string           `json:"fieldPath" yaml:"fieldPath"`
	Indexes         []*OverrideIndex `json:"indexes" yaml:"indexes"`
}

// OverrideIndex enables one index mode on the overridden field.
type OverrideIndex struct {
	QueryScope  QueryScope  `json:"queryScope,omitempty" yaml:"queryScope,omitempty"`
	Order       Order       `json:"order,omitempty" yaml:"order,omitempty"`
	ArrayConfig ArrayConfig `json:"arrayConfig,omitempty" yaml:"arrayConfig,omitempty"`
}

// Discriminator returns the single value that identifies which index
// mode this entry enables: the order if present, otherwise the array
// config.
func (x *OverrideIndex) Discriminator() string {
	if x.Order != "" {
		return string(x.Order)
	}
	return string(x.ArrayConfig)
}
