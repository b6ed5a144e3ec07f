// Package viewer models the gallery viewer: a grid of photos and a lightbox
// focused on one of them.
package viewer

// Key is a keyboard key name as reported by browsers.
type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// State is the viewer state. The zero value is the grid.
type State struct {
	selected int
	open     bool
}

// Grid returns the state with no photo selected.
func Grid() State {
	return State{}
}

// Lightbox returns the state focused on photo i. Callers validate i against
// the catalog; the transition methods do so themselves.
func Lightbox(i int) State {
	return State{selected: i, open: true}
}

// Selected returns the focused photo index when the lightbox is open.
func (s State) Selected() (int, bool) {
	return s.selected, s.open
}

// IsGrid reports whether no photo is selected.
func (s State) IsGrid() bool {
	return !s.open
}

// ScrollLocked reports whether the page behind the viewer must not scroll.
func (s State) ScrollLocked() bool {
	return s.open
}

// KeyboardActive reports whether keyboard navigation is listened for.
func (s State) KeyboardActive() bool {
	return s.open
}

// HasPrevious reports whether a previous photo exists in a catalog of n.
func (s State) HasPrevious(n int) bool {
	return s.open && s.selected > 0 && s.selected < n
}

// HasNext reports whether a next photo exists in a catalog of n.
func (s State) HasNext(n int) bool {
	return s.open && s.selected >= 0 && s.selected < n-1
}

// Select opens photo i from the grid. Out of range indexes are rejected.
func (s State) Select(i, n int) (State, bool) {
	if i < 0 || i >= n {
		return s, false
	}
	next := Lightbox(i)
	return next, next != s
}

// SelectThumbnail jumps to photo j from the lightbox preview strip.
func (s State) SelectThumbnail(j, n int) (State, bool) {
	if !s.open {
		return s, false
	}
	return s.Select(j, n)
}

// Next advances to the following photo. It is a no-op on the last photo.
func (s State) Next(n int) (State, bool) {
	if !s.HasNext(n) {
		return s, false
	}
	return Lightbox(s.selected + 1), true
}

// Previous steps back to the preceding photo. It is a no-op on the first.
func (s State) Previous(n int) (State, bool) {
	if !s.HasPrevious(n) {
		return s, false
	}
	return Lightbox(s.selected - 1), true
}

// Close returns to the grid.
func (s State) Close() (State, bool) {
	return Grid(), s.open
}

// HandleKey applies a keyboard key. Keys are ignored while on the grid.
func (s State) HandleKey(key Key, n int) (State, bool) {
	if !s.KeyboardActive() {
		return s, false
	}
	switch key {
	case KeyEscape:
		return s.Close()
	case KeyArrowLeft:
		return s.Previous(n)
	case KeyArrowRight:
		return s.Next(n)
	default:
		return s, false
	}
}
