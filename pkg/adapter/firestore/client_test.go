package firestore_test

import (
	"testing"

	adminpb "cloud.google.com/go/firestore/apiv1/admin/adminpb"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/fsindex/pkg/adapter/firestore"
	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
)

func TestToLiveIndex(t *testing.T) {
	pbIndex := &adminpb.Index{
		Name:       "projects/p1/databases/(default)/collectionGroups/posts/indexes/idx1",
		State:      adminpb.Index_READY,
		QueryScope: adminpb.Index_COLLECTION,
		Fields: []*adminpb.Index_IndexField{
			{
				FieldPath: "author",
				ValueMode: &adminpb.Index_IndexField_Order_{Order: adminpb.Index_IndexField_ASCENDING},
			},
			{
				FieldPath: "tags",
				ValueMode: &adminpb.Index_IndexField_ArrayConfig_{ArrayConfig: adminpb.Index_IndexField_CONTAINS},
			},
			{
				FieldPath: "__name__",
				ValueMode: &adminpb.Index_IndexField_Order_{Order: adminpb.Index_IndexField_ASCENDING},
			},
		},
	}

	live := firestore.ToLiveIndex(pbIndex)
	gt.Equal(t, live.State, "READY")
	gt.Equal(t, live.QueryScope, index.ScopeCollection)

	// The document-identity field never reaches the snapshot.
	gt.A(t, live.Fields).Length(2)
	gt.Equal(t, live.Fields[0].FieldPath, "author")
	gt.Equal(t, live.Fields[0].Order, index.OrderAscending)
	gt.Equal(t, live.Fields[1].FieldPath, "tags")
	gt.Equal(t, live.Fields[1].ArrayConfig, index.ArrayContains)
	gt.Equal(t, live.Fields[1].Order, index.Order(""))
}

func TestToLiveFieldOverride(t *testing.T) {
	pbField := &adminpb.Field{
		Name: "projects/p1/databases/(default)/collectionGroups/posts/fields/tags",
		IndexConfig: &adminpb.Field_IndexConfig{
			Indexes: []*adminpb.Index{
				{
					QueryScope: adminpb.Index_COLLECTION,
					Fields: []*adminpb.Index_IndexField{
						{
							FieldPath: "tags",
							ValueMode: &adminpb.Index_IndexField_Order_{Order: adminpb.Index_IndexField_DESCENDING},
						},
					},
				},
				{
					QueryScope: adminpb.Index_COLLECTION,
					Fields: []*adminpb.Index_IndexField{
						{
							FieldPath: "tags",
							ValueMode: &adminpb.Index_IndexField_ArrayConfig_{ArrayConfig: adminpb.Index_IndexField_CONTAINS},
						},
					},
				},
			},
		},
	}

	live := firestore.ToLiveFieldOverride(pbField)
	gt.A(t, live.Indexes).Length(2)
	gt.Equal(t, live.Indexes[0].Order, index.OrderDescending)
	gt.Equal(t, live.Indexes[0].Discriminator(), "DESCENDING")
	gt.Equal(t, live.Indexes[1].ArrayConfig, index.ArrayContains)
	gt.Equal(t, live.Indexes[1].Discriminator(), "CONTAINS")
}

func TestToPbFields(t *testing.T) {
	fields := []*index.Field{
		{FieldPath: "author", Order: index.OrderDescending},
		{FieldPath: "tags", ArrayConfig: index.ArrayContains},
	}

	pbFields := firestore.ToPbFields(fields)
	gt.A(t, pbFields).Length(2)
	gt.Equal(t, pbFields[0].GetFieldPath(), "author")
	gt.Equal(t, pbFields[0].GetOrder(), adminpb.Index_IndexField_DESCENDING)
	gt.Equal(t, pbFields[1].GetFieldPath(), "tags")
	gt.Equal(t, pbFields[1].GetArrayConfig(), adminpb.Index_IndexField_CONTAINS)
}
