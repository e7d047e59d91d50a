package firestore

import (
	"context"
	"sync"

	"github.com/secmon-lab/fsindex/pkg/domain/interfaces"
	"github.com/secmon-lab/fsindex/pkg/domain/model/index"
)

// CreatedIndex records one CreateIndex call issued against a Mock.
type CreatedIndex struct {
	CollectionGroup string
	QueryScope      index.QueryScope
	Fields          []*index.Field
}

// UpdatedOverride records one UpdateFieldOverride call issued against
// a Mock.
type UpdatedOverride struct {
	CollectionGroup string
	FieldPath       string
	Indexes         []*index.OverrideIndex
}

// Mock is an in-memory AdminClient for tests. Listings return the
// seeded snapshot; mutating calls are recorded and may be forced to
// fail per collection group.
type Mock struct {
	mu sync.Mutex

	LiveIndexes   []*index.LiveIndex
	LiveOverrides []*index.LiveFieldOverride

	Created []CreatedIndex
	Updated []UpdatedOverride

	CreateErrs map[string]error
	UpdateErrs map[string]error
}

var _ interfaces.AdminClient = &Mock{}

func NewMock() *Mock {
	return &Mock{
		CreateErrs: make(map[string]error),
		UpdateErrs: make(map[string]error),
	}
}

func (m *Mock) ListIndexes(ctx context.Context) ([]*index.LiveIndex, error) {
	return m.LiveIndexes, nil
}

func (m *Mock) ListFieldOverrides(ctx context.Context) ([]*index.LiveFieldOverride, error) {
	return m.LiveOverrides, nil
}

func (m *Mock) CreateIndex(ctx context.Context, collectionGroup string, scope index.QueryScope, fields []*index.Field) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.CreateErrs[collectionGroup]; err != nil {
		return err
	}

	m.Created = append(m.Created, CreatedIndex{
		CollectionGroup: collectionGroup,
		QueryScope:      scope,
		Fields:          fields,
	})
	return nil
}

func (m *Mock) UpdateFieldOverride(ctx context.Context, collectionGroup, fieldPath string, indexes []*index.OverrideIndex) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.UpdateErrs[collectionGroup]; err != nil {
		return err
	}

	m.Updated = append(m.Updated, UpdatedOverride{
		CollectionGroup: collectionGroup,
		FieldPath:       fieldPath,
		Indexes:         indexes,
	})
	return nil
}
