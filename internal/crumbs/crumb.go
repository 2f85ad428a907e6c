// Package crumbs holds the breadcrumb model and the size-fitting cell used to
// measure and draw a single crumb.
package crumbs

// Crumb is one breadcrumb entry: the title of a screen below the current top
// and whether a separator is drawn after it.
type Crumb struct {
	Title         string
	ShowSeparator bool
}

// Trail is the ordered crumb list. Only the last crumb hides its separator.
type Trail struct {
	items []Crumb
}

// NewTrail creates an empty trail.
func NewTrail() *Trail {
	return &Trail{
		items: make([]Crumb, 0),
	}
}

// Append adds a crumb as the new last entry. The previous last entry starts
// showing its separator.
func (t *Trail) Append(title string) {
	if n := len(t.items); n > 0 {
		t.items[n-1].ShowSeparator = true
	}
	t.items = append(t.items, Crumb{Title: title, ShowSeparator: false})
}

// RemoveLast drops the last crumb and hides the separator of the new last one.
// Returns false when the trail was already empty.
func (t *Trail) RemoveLast() (Crumb, bool) {
	if len(t.items) == 0 {
		return Crumb{}, false
	}

	last := t.items[len(t.items)-1]
	t.items = t.items[:len(t.items)-1]

	if n := len(t.items); n > 0 {
		t.items[n-1].ShowSeparator = false
	}

	return last, true
}

// At returns the crumb at index.
func (t *Trail) At(index int) (Crumb, bool) {
	if index < 0 || index >= len(t.items) {
		return Crumb{}, false
	}
	return t.items[index], true
}

// Len returns the number of crumbs.
func (t *Trail) Len() int {
	return len(t.items)
}

// Snapshot returns a copy of the crumbs.
func (t *Trail) Snapshot() []Crumb {
	snapshot := make([]Crumb, len(t.items))
	copy(snapshot, t.items)
	return snapshot
}

// Titles returns the crumb titles in order.
func (t *Trail) Titles() []string {
	titles := make([]string, len(t.items))
	for i, c := range t.items {
		titles[i] = c.Title
	}
	return titles
}

// Clear removes every crumb.
func (t *Trail) Clear() {
	t.items = make([]Crumb, 0)
}
