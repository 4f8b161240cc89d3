package pla

// Entry is one "[id] description" block with the sub-records that follow it.
// Children is nil when no sub-record attached; the parser never produces an
// empty non-nil slice.
type Entry struct {
	ID          uint32
	Description string
	Children    []SubRecord
}

// HasChildren reports whether any sub-record is attached.
func (e Entry) HasChildren() bool {
	return e.Children != nil
}

// Equal compares id and description only; children are ignored.
func (e Entry) Equal(other Entry) bool {
	return e.ID == other.ID && e.Description == other.Description
}

// Clone returns a deep copy. Sub-record variants are plain values, so
// copying the slice is enough.
func (e Entry) Clone() Entry {
	out := Entry{ID: e.ID, Description: e.Description}
	if e.Children != nil {
		out.Children = make([]SubRecord, len(e.Children))
		copy(out.Children, e.Children)
	}
	return out
}

// Start returns the first start sub-record, if any.
func (e Entry) Start() (Start, bool) {
	for _, c := range e.Children {
		if s, ok := c.(Start); ok {
			return s, true
		}
	}
	return Start{}, false
}

// Duration returns the first duration sub-record, if any.
func (e Entry) Duration() (Duration, bool) {
	for _, c := range e.Children {
		if d, ok := c.(Duration); ok {
			return d, true
		}
	}
	return Duration{}, false
}

// DependencyIDs lists the ids named by dep sub-records, in source order.
func (e Entry) DependencyIDs() []uint32 {
	var ids []uint32
	for _, c := range e.Children {
		if d, ok := c.(Dependency); ok {
			ids = append(ids, d.DependencyID)
		}
	}
	return ids
}

// ChildIDs lists the ids named by child sub-records, in source order.
func (e Entry) ChildIDs() []uint32 {
	var ids []uint32
	for _, c := range e.Children {
		if ch, ok := c.(Child); ok {
			ids = append(ids, ch.ChildID)
		}
	}
	return ids
}

// Resources lists resource names, in source order.
func (e Entry) Resources() []string {
	var names []string
	for _, c := range e.Children {
		if r, ok := c.(Resource); ok {
			names = append(names, r.Name)
		}
	}
	return names
}
