package view

// SelectionListener is notified synchronously after every selection change.
// The active flag reports whether a well-formed (positive-area) selection
// currently exists; listeners typically toggle UI affordances with it.
type SelectionListener func(active bool)

// Selection tracks the rectangle a user is dragging out on the display and
// notifies interested parties as it changes. It is a display-space concept;
// callers convert to image space via Fit.ToImageSpace when they need pixel
// coordinates.
//
// Selection is not safe for concurrent use; the UI layer serializes access.
type Selection struct {
	anchor    Point
	rect      Rect
	dragging  bool
	active    bool
	listeners []SelectionListener
}

// AddListener registers a listener. Listeners are invoked in registration
// order on every subsequent change.
func (s *Selection) AddListener(fn SelectionListener) {
	s.listeners = append(s.listeners, fn)
}

// Begin anchors a new drag at p and clears any previous selection.
func (s *Selection) Begin(p Point) {
	s.anchor = p
	s.rect = Rect{}
	s.dragging = true
	s.setActive(false)
}

// Update extends the current drag to p, rebuilding the selection rectangle
// from the anchor. Calls before Begin are ignored.
func (s *Selection) Update(p Point) {
	if !s.dragging {
		return
	}
	s.rect = BuildRectangle(s.anchor, p)
	s.setActive(!s.rect.Empty())
}

// End finishes the current drag, keeping the selection in place.
func (s *Selection) End() {
	s.dragging = false
	s.notify()
}

// Clear removes the selection entirely.
func (s *Selection) Clear() {
	s.rect = Rect{}
	s.dragging = false
	s.setActive(false)
}

// Rect returns the current display-space rectangle and whether it is
// well-formed.
func (s *Selection) Rect() (Rect, bool) {
	return s.rect, s.active
}

// Active reports whether a well-formed selection exists.
func (s *Selection) Active() bool { return s.active }

func (s *Selection) setActive(active bool) {
	s.active = active
	s.notify()
}

func (s *Selection) notify() {
	for _, fn := range s.listeners {
		fn(s.active)
	}
}
