package model

// WorkingSet is the insertion-ordered list of records for one run. Records
// are never removed; a new run starts from a new set.
type WorkingSet[T Record] struct {
	items []T
}

// NewWorkingSet returns a set holding a copy of items.
func NewWorkingSet[T Record](items ...T) *WorkingSet[T] {
	ws := &WorkingSet[T]{}
	ws.Append(items...)
	return ws
}

// Add appends a single record.
func (ws *WorkingSet[T]) Add(item T) {
	ws.items = append(ws.items, item)
}

// Append appends records in order, as done by a bulk import.
func (ws *WorkingSet[T]) Append(items ...T) {
	ws.items = append(ws.items, items...)
}

// Len returns the number of records.
func (ws *WorkingSet[T]) Len() int {
	return len(ws.items)
}

// Items returns a copy of the records in insertion order.
func (ws *WorkingSet[T]) Items() []T {
	cp := make([]T, len(ws.items))
	copy(cp, ws.items)
	return cp
}
