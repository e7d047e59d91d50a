package index_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("JSON document", func(t *testing.T) {
		path := writeTemp(t, "firestore.indexes.json", `{
			"indexes": [
				{
					"collectionGroup": "posts",
					"queryScope": "COLLECTION",
					"fields": [
						{"fieldPath": "author", "order": "ASCENDING"}
					]
				}
			],
			"fieldOverrides": [
				{
					"collectionGroup": "posts",
					"fieldPath": "tags",
					"indexes": [{"arrayConfig": "CONTAINS"}]
				}
			]
		}`)

		doc, err := index.Load(path)
		gt.NoError(t, err)
		gt.A(t, doc.Indexes).Length(1)
		gt.Equal(t, doc.Indexes[0].CollectionGroup, "posts")
		gt.A(t, doc.FieldOverrides).Length(1)
		gt.Equal(t, doc.FieldOverrides[0].Indexes[0].ArrayConfig, index.ArrayContains)
	})

	t.Run("YAML document by extension", func(t *testing.T) {
		path := writeTemp(t, "indexes.yaml", `
indexes:
  - collectionId: posts
    fields:
      - fieldPath: author
        mode: ASCENDING
`)

		doc, err := index.Load(path)
		gt.NoError(t, err)
		gt.A(t, doc.Indexes).Length(1)
		gt.Equal(t, doc.Indexes[0].CollectionID, "posts")
		gt.Equal(t, doc.Indexes[0].Fields[0].Mode, index.ModeAscending)
	})

	t.Run("absent indexes key stays nil", func(t *testing.T) {
		path := writeTemp(t, "empty.json", `{"fieldOverrides": []}`)
		doc, err := index.Load(path)
		gt.NoError(t, err)
		gt.Value(t, doc.Indexes).Nil()
	})

	t.Run("present empty indexes stays non-nil", func(t *testing.T) {
		path := writeTemp(t, "present.json", `{"indexes": []}`)
		doc, err := index.Load(path)
		gt.NoError(t, err)
		gt.Value(t, doc.Indexes).NotNil()
		gt.A(t, doc.Indexes).Length(0)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := index.Load(filepath.Join(t.TempDir(), "nope.json"))
		gt.Error(t, err)
	})

	t.Run("broken JSON", func(t *testing.T) {
		path := writeTemp(t, "broken.json", `{"indexes": [`)
		_, err := index.Load(path)
		gt.Error(t, err)
	})
}

func TestEncode(t *testing.T) {
	doc := &index.SpecDocument{
		Indexes: []*index.Index{
			{
				CollectionGroup: "posts",
				QueryScope:      index.ScopeCollection,
				Fields:          []*index.Field{{FieldPath: "author", Order: index.OrderAscending}},
			},
		},
	}

	t.Run("JSON round-trip via file", func(t *testing.T) {
		raw, err := doc.Encode("out.json")
		gt.NoError(t, err)

		path := writeTemp(t, "out.json", string(raw))
		loaded, err := index.Load(path)
		gt.NoError(t, err)
		gt.Equal(t, loaded.Indexes[0].CollectionGroup, "posts")
	})

	t.Run("YAML round-trip via file", func(t *testing.T) {
		raw, err := doc.Encode("out.yml")
		gt.NoError(t, err)

		path := writeTemp(t, "out.yml", string(raw))
		loaded, err := index.Load(path)
		gt.NoError(t, err)
		gt.Equal(t, loaded.Indexes[0].Fields[0].Order, index.OrderAscending)
	})
}
