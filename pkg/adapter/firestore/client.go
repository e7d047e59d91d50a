package firestore

import (
	"context"
	"strings"

	firestoreadmin "cloud.google.com/go/firestore/apiv1/admin"
	adminpb "cloud.google.com/go/firestore/apiv1/admin/adminpb"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/fsindex/pkg/domain/interfaces"
	"github.com/secmon-lab/fsindex/pkg/domain/model/errs"
	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
	"github.com/secmon-lab/fsindex/pkg/utils/logging"
	"github.com/secmon-lab/fsindex/pkg/utils/safe"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// documentIDField is implicit in every composite index and must not
// leak into snapshots handed to matching or display.
const documentIDField = "__name__"

// ancestorConfigFilter limits field listings to overrides that replace
// the database default instead of inheriting it.
const ancestorConfigFilter = "indexConfig.usesAncestorConfig:false"

type Client struct {
	admin     *firestoreadmin.FirestoreAdminClient
	projectID string
}

var _ interfaces.AdminClient = &Client{}

func New(ctx context.Context, projectID string) (*Client, error) {
	admin, err := firestoreadmin.NewFirestoreAdminClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore admin client",
			goerr.V("project_id", projectID),
		)
	}

	return &Client{
		admin:     admin,
		projectID: projectID,
	}, nil
}

func (x *Client) Close(ctx context.Context) {
	safe.Close(ctx, x.admin)
}

func (x *Client) databasePath() string {
	return "projects/" + x.projectID + "/databases/" + index.DatabaseID
}

func (x *Client) collectionGroupPath(collectionGroup string) string {
	return x.databasePath() + "/collectionGroups/" + collectionGroup
}

// ListIndexes fetches every composite index of the database with a
// collection group wildcard, stripping the synthetic document-identity
// field from each record.
func (x *Client) ListIndexes(ctx context.Context) ([]*index.LiveIndex, error) {
	var results []*index.LiveIndex

	it := x.admin.ListIndexes(ctx, &adminpb.ListIndexesRequest{
		Parent: x.collectionGroupPath("-"),
	})
	for {
		idx, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list indexes",
				goerr.V("project_id", x.projectID),
				goerr.T(errs.TagRemote),
			)
		}

		results = append(results, toLiveIndex(idx))
	}

	return results, nil
}

// ListFieldOverrides fetches every field whose index configuration no
// longer inherits the ancestor default. The synthetic default field
// record (path "*") only conveys other fields' ancestor configuration
// and is excluded.
func (x *Client) ListFieldOverrides(ctx context.Context) ([]*index.LiveFieldOverride, error) {
	var results []*index.LiveFieldOverride

	it := x.admin.ListFields(ctx, &adminpb.ListFieldsRequest{
		Parent: x.collectionGroupPath("-"),
		Filter: ancestorConfigFilter,
	})
	for {
		field, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list field overrides",
				goerr.V("project_id", x.projectID),
				goerr.T(errs.TagRemote),
			)
		}

		if strings.HasSuffix(field.GetName(), "/fields/*") {
			continue
		}

		results = append(results, toLiveFieldOverride(field))
	}

	return results, nil
}

// CreateIndex requests creation of one composite index and returns
// once the operation is accepted; it does not wait for the build. A
// concurrent creation of an identical index is treated as success.
func (x *Client) CreateIndex(ctx context.Context, collectionGroup string, scope index.QueryScope, fields []*index.Field) error {
	req := &adminpb.CreateIndexRequest{
		Parent: x.collectionGroupPath(collectionGroup),
		Index: &adminpb.Index{
			QueryScope: toPbQueryScope(scope),
			Fields:     toPbFields(fields),
		},
	}

	op, err := x.admin.CreateIndex(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			logging.From(ctx).Info("index already exists, created by another actor",
				"collection_group", collectionGroup,
			)
			return nil
		}
		return goerr.Wrap(err, "failed to create index",
			goerr.V("collection_group", collectionGroup),
			goerr.V("query_scope", scope),
			goerr.T(errs.TagRemote),
		)
	}

	logging.From(ctx).Debug("index creation accepted",
		"collection_group", collectionGroup,
		"operation", op.Name(),
	)
	return nil
}

// UpdateFieldOverride replaces the entire index configuration of one
// field. Replacement indexes are fixed to collection scope.
func (x *Client) UpdateFieldOverride(ctx context.Context, collectionGroup, fieldPath string, indexes []*index.OverrideIndex) error {
	pbIndexes := make([]*adminpb.Index, 0, len(indexes))
	for _, oi := range indexes {
		pbIndexes = append(pbIndexes, &adminpb.Index{
			QueryScope: adminpb.Index_COLLECTION,
			Fields: toPbFields([]*index.Field{{
				FieldPath:   fieldPath,
				Order:       oi.Order,
				ArrayConfig: oi.ArrayConfig,
			}}),
		})
	}

	req := &adminpb.UpdateFieldRequest{
		Field: &adminpb.Field{
			Name: x.collectionGroupPath(collectionGroup) + "/fields/" + fieldPath,
			IndexConfig: &adminpb.Field_IndexConfig{
				Indexes: pbIndexes,
			},
		},
		UpdateMask: &fieldmaskpb.FieldMask{
			Paths: []string{"index_config"},
		},
	}

	op, err := x.admin.UpdateField(ctx, req)
	if err != nil {
		return goerr.Wrap(err, "failed to update field override",
			goerr.V("collection_group", collectionGroup),
			goerr.V("field_path", fieldPath),
			goerr.T(errs.TagRemote),
		)
	}

	logging.From(ctx).Debug("field override update accepted",
		"collection_group", collectionGroup,
		"field_path", fieldPath,
		"operation", op.Name(),
	)
	return nil
}

func toLiveIndex(idx *adminpb.Index) *index.LiveIndex {
	var fields []*index.Field
	for _, f := range idx.GetFields() {
		if f.GetFieldPath() == documentIDField {
			continue
		}
		fields = append(fields, &index.Field{
			FieldPath:   f.GetFieldPath(),
			Order:       fromPbOrder(f.GetOrder()),
			ArrayConfig: fromPbArrayConfig(f.GetArrayConfig()),
		})
	}

	return &index.LiveIndex{
		Name:       idx.GetName(),
		State:      idx.GetState().String(),
		QueryScope: fromPbQueryScope(idx.GetQueryScope()),
		Fields:     fields,
	}
}

func toLiveFieldOverride(field *adminpb.Field) *index.LiveFieldOverride {
	var indexes []*index.OverrideIndex
	for _, idx := range field.GetIndexConfig().GetIndexes() {
		oi := &index.OverrideIndex{
			QueryScope: fromPbQueryScope(idx.GetQueryScope()),
		}
		// The discriminator lives on the index's first field descriptor.
		if fs := idx.GetFields(); len(fs) > 0 {
			oi.Order = fromPbOrder(fs[0].GetOrder())
			oi.ArrayConfig = fromPbArrayConfig(fs[0].GetArrayConfig())
		}
		indexes = append(indexes, oi)
	}

	return &index.LiveFieldOverride{
		Name:    field.GetName(),
		Indexes: indexes,
	}
}

func toPbFields(fields []*index.Field) []*adminpb.Index_IndexField {
	pbFields := make([]*adminpb.Index_IndexField, 0, len(fields))
	for _, f := range fields {
		pbField := &adminpb.Index_IndexField{
			FieldPath: f.FieldPath,
		}
		if f.ArrayConfig != "" {
			pbField.ValueMode = &adminpb.Index_IndexField_ArrayConfig_{
				ArrayConfig: adminpb.Index_IndexField_CONTAINS,
			}
		} else {
			pbField.ValueMode = &adminpb.Index_IndexField_Order_{
				Order: toPbOrder(f.Order),
			}
		}
		pbFields = append(pbFields, pbField)
	}
	return pbFields
}

func toPbQueryScope(scope index.QueryScope) adminpb.Index_QueryScope {
	if scope == index.ScopeCollectionGroup {
		return adminpb.Index_COLLECTION_GROUP
	}
	return adminpb.Index_COLLECTION
}

func fromPbQueryScope(scope adminpb.Index_QueryScope) index.QueryScope {
	if scope == adminpb.Index_COLLECTION_GROUP {
		return index.ScopeCollectionGroup
	}
	return index.ScopeCollection
}

func toPbOrder(order index.Order) adminpb.Index_IndexField_Order {
	if order == index.OrderDescending {
		return adminpb.Index_IndexField_DESCENDING
	}
	return adminpb.Index_IndexField_ASCENDING
}

func fromPbOrder(order adminpb.Index_IndexField_Order) index.Order {
	switch order {
	case adminpb.Index_IndexField_ASCENDING:
		return index.OrderAscending
	case adminpb.Index_IndexField_DESCENDING:
		return index.OrderDescending
	}
	return ""
}

func fromPbArrayConfig(cfg adminpb.Index_IndexField_ArrayConfig) index.ArrayConfig {
	if cfg == adminpb.Index_IndexField_CONTAINS {
		return index.ArrayContains
	}
	return ""
}
