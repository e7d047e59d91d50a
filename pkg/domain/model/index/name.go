package index

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/fsindex/pkg/domain/model/errs"
)

// DatabaseID is the only database whose resource names the parsers
// recognize. Index administration always targets the default database.
const DatabaseID = "(default)"

var (
	indexNamePtn = regexp.MustCompile(`^projects/([^/]+)/databases/\(default\)/collectionGroups/([^/]+)/indexes/([^/]+)$`)
	fieldNamePtn = regexp.MustCompile(`^projects/([^/]+)/databases/\(default\)/collectionGroups/([^/]+)/fields/([^/]+)$`)
)

// IndexName is the decomposed resource name of a composite index.
type IndexName struct {
	ProjectID         string
	CollectionGroupID string
	IndexID           string
}

// FieldName is the decomposed resource name of a field override.
type FieldName struct {
	ProjectID         string
	CollectionGroupID string
	FieldPath         string
}

// ParseIndexName decomposes an index resource name of the form
// projects/{p}/databases/(default)/collectionGroups/{cg}/indexes/{id}.
// A failed parse is always an error, never a partial result.
func ParseIndexName(name string) (*IndexName, error) {
	if name == "" {
		return nil, goerr.New("index name is empty", goerr.T(errs.TagParse))
	}

	m := indexNamePtn.FindStringSubmatch(name)
	if len(m) < 4 {
		return nil, goerr.New("failed to parse index name",
			goerr.V("name", name),
			goerr.T(errs.TagParse),
		)
	}

	return &IndexName{
		ProjectID:         m[1],
		CollectionGroupID: m[2],
		IndexID:           m[3],
	}, nil
}

// ParseFieldName decomposes a field override resource name of the form
// projects/{p}/databases/(default)/collectionGroups/{cg}/fields/{path}.
func ParseFieldName(name string) (*FieldName, error) {
	if name == "" {
		return nil, goerr.New("field name is empty", goerr.T(errs.TagParse))
	}

	m := fieldNamePtn.FindStringSubmatch(name)
	if len(m) < 4 {
		return nil, goerr.New("failed to parse field name",
			goerr.V("name", name),
			goerr.T(errs.TagParse),
		)
	}

	return &FieldName{
		ProjectID:         m[1],
		CollectionGroupID: m[2],
		FieldPath:         m[3],
	}, nil
}
