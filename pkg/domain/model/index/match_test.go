package index_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
)

func liveIndexName(cg, id string) string {
	return "projects/p1/databases/(default)/collectionGroups/" + cg + "/indexes/" + id
}

func liveFieldName(cg, path string) string {
	return "projects/p1/databases/(default)/collectionGroups/" + cg + "/fields/" + path
}

func TestIndexMatches(t *testing.T) {
	spec := &index.Index{
		CollectionGroup: "posts",
		QueryScope:      index.ScopeCollection,
		Fields: []*index.Field{
			{FieldPath: "author", Order: index.OrderAscending},
			{FieldPath: "published", Order: index.OrderDescending},
		},
	}

	live := func() *index.LiveIndex {
		return &index.LiveIndex{
			Name:       liveIndexName("posts", "idx1"),
			State:      "READY",
			QueryScope: index.ScopeCollection,
			Fields: []*index.Field{
				{FieldPath: "author", Order: index.OrderAscending},
				{FieldPath: "published", Order: index.OrderDescending},
			},
		}
	}

	t.Run("identical index matches", func(t *testing.T) {
		ok, err := spec.Matches(live())
		gt.NoError(t, err)
		gt.True(t, ok)
	})

	t.Run("creating index still matches", func(t *testing.T) {
		deployed := live()
		deployed.State = "CREATING"
		ok, err := spec.Matches(deployed)
		gt.NoError(t, err)
		gt.True(t, ok)
	})

	t.Run("different collection group", func(t *testing.T) {
		deployed := live()
		deployed.Name = liveIndexName("comments", "idx1")
		ok, err := spec.Matches(deployed)
		gt.NoError(t, err)
		gt.False(t, ok)
	})

	t.Run("different query scope", func(t *testing.T) {
		deployed := live()
		deployed.QueryScope = index.ScopeCollectionGroup
		ok, err := spec.Matches(deployed)
		gt.NoError(t, err)
		gt.False(t, ok)
	})

	t.Run("field order is significant", func(t *testing.T) {
		deployed := live()
		deployed.Fields = []*index.Field{
			{FieldPath: "published", Order: index.OrderDescending},
			{FieldPath: "author", Order: index.OrderAscending},
		}
		ok, err := spec.Matches(deployed)
		gt.NoError(t, err)
		gt.False(t, ok)
	})

	t.Run("different field count", func(t *testing.T) {
		deployed := live()
		deployed.Fields = deployed.Fields[:1]
		ok, err := spec.Matches(deployed)
		gt.NoError(t, err)
		gt.False(t, ok)
	})

	t.Run("order vs arrayConfig on same path", func(t *testing.T) {
		deployed := live()
		deployed.Fields[0] = &index.Field{FieldPath: "author", ArrayConfig: index.ArrayContains}
		ok, err := spec.Matches(deployed)
		gt.NoError(t, err)
		gt.False(t, ok)
	})

	t.Run("unparsable live name is an error", func(t *testing.T) {
		deployed := live()
		deployed.Name = "garbage"
		_, err := spec.Matches(deployed)
		gt.Error(t, err)
	})
}

func TestFieldOverrideMatches(t *testing.T) {
	spec := &index.FieldOverride{
		CollectionGroup: "posts",
		FieldPath:       "tags",
		Indexes: []*index.OverrideIndex{
			{Order: index.OrderAscending},
			{ArrayConfig: index.ArrayContains},
		},
	}

	live := func() *index.LiveFieldOverride {
		return &index.LiveFieldOverride{
			Name: liveFieldName("posts", "tags"),
			Indexes: []*index.OverrideIndex{
				{Order: index.OrderAscending, QueryScope: index.ScopeCollection},
				{ArrayConfig: index.ArrayContains, QueryScope: index.ScopeCollection},
			},
		}
	}

	t.Run("identical override matches", func(t *testing.T) {
		ok, err := spec.Matches(live())
		gt.NoError(t, err)
		gt.True(t, ok)
	})

	t.Run("order within indexes carries no meaning", func(t *testing.T) {
		deployed := live()
		deployed.Indexes[0], deployed.Indexes[1] = deployed.Indexes[1], deployed.Indexes[0]
		ok, err := spec.Matches(deployed)
		gt.NoError(t, err)
		gt.True(t, ok)

		reordered := &index.FieldOverride{
			CollectionGroup: "posts",
			FieldPath:       "tags",
			Indexes: []*index.OverrideIndex{
				{ArrayConfig: index.ArrayContains},
				{Order: index.OrderAscending},
			},
		}
		ok, err = reordered.Matches(live())
		gt.NoError(t, err)
		gt.True(t, ok)
	})

	t.Run("different field path", func(t *testing.T) {
		deployed := live()
		deployed.Name = liveFieldName("posts", "labels")
		ok, err := spec.Matches(deployed)
		gt.NoError(t, err)
		gt.False(t, ok)
	})

	t.Run("different index count", func(t *testing.T) {
		deployed := live()
		deployed.Indexes = deployed.Indexes[:1]
		ok, err := spec.Matches(deployed)
		gt.NoError(t, err)
		gt.False(t, ok)
	})

	t.Run("live discriminator outside spec set", func(t *testing.T) {
		deployed := live()
		deployed.Indexes[0] = &index.OverrideIndex{Order: index.OrderDescending}
		ok, err := spec.Matches(deployed)
		gt.NoError(t, err)
		gt.False(t, ok)
	})

	t.Run("unparsable live name is an error", func(t *testing.T) {
		deployed := live()
		deployed.Name = "garbage"
		_, err := spec.Matches(deployed)
		gt.Error(t, err)
	})
}
