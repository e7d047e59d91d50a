package index

// Matches reports whether a deployed index is functionally identical
// to this specification entry: same collection group, same query
// scope, and the same fields in the same order. Field order determines
// which queries the index can serve, so it is compared exactly.
//
// An error means the live resource name could not be parsed, which is
// fatal to the comparison rather than a mismatch.
func (x *Index) Matches(live *LiveIndex) (bool, error) {
	name, err := ParseIndexName(live.Name)
	if err != nil {
		return false, err
	}

	if name.CollectionGroupID != x.CollectionGroup {
		return false, nil
	}
	if live.QueryScope != x.QueryScope {
		return false, nil
	}
	if len(live.Fields) != len(x.Fields) {
		return false, nil
	}

	for i, want := range x.Fields {
		got := live.Fields[i]
		if got.FieldPath != want.FieldPath {
			return false, nil
		}
		if got.Order != want.Order {
			return false, nil
		}
		if got.ArrayConfig != want.ArrayConfig {
			return false, nil
		}
	}

	return true, nil
}

// Matches reports whether a deployed field override is functionally
// identical to this specification entry. Each inner index enables one
// independent mode, so the comparison is a set check over the
// discriminator values, not an ordered one: the index counts must be
// equal and every deployed discriminator must appear among the desired
// entry's discriminators.
func (x *FieldOverride) Matches(live *LiveFieldOverride) (bool, error) {
	name, err := ParseFieldName(live.Name)
	if err != nil {
		return false, err
	}

	if name.CollectionGroupID != x.CollectionGroup {
		return false, nil
	}
	if name.FieldPath != x.FieldPath {
		return false, nil
	}
	if len(live.Indexes) != len(x.Indexes) {
		return false, nil
	}

	want := make(map[string]bool, len(x.Indexes))
	for _, idx := range x.Indexes {
		want[idx.Discriminator()] = true
	}
	for _, idx := range live.Indexes {
		if !want[idx.Discriminator()] {
			return false, nil
		}
	}

	return true, nil
}
