package index

// LiveIndex is one composite index fetched from the Admin API. Fields
// never contain the synthetic document-identity entry; the adapter
// strips it before the snapshot is handed to matching or display.
type LiveIndex struct {
	Name       string
	State      string
	QueryScope QueryScope
	Fields     []*Field
}

// LiveFieldOverride is one single-field override fetched from the
// Admin API. Each inner entry carries the discriminator extracted from
// that index's first field descriptor.
type LiveFieldOverride struct {
	Name    string
	Indexes []*OverrideIndex
}
