package firestore

import (
	adminpb "cloud.google.com/go/firestore/apiv1/admin/adminpb"
	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
)

// ToLiveIndex exposes toLiveIndex for testing
func ToLiveIndex(idx *adminpb.Index) *index.LiveIndex {
	return toLiveIndex(idx)
}

// ToLiveFieldOverride exposes toLiveFieldOverride for testing
func ToLiveFieldOverride(field *adminpb.Field) *index.LiveFieldOverride {
	return toLiveFieldOverride(field)
}

// ToPbFields exposes toPbFields for testing
func ToPbFields(fields []*index.Field) []*adminpb.Index_IndexField {
	return toPbFields(fields)
}
