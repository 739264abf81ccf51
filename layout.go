package floah

// Layout owns a tree of elements and records structural changes so its
// owner knows when placement must be recomputed. Computing placement is not
// its job; it only hands out its identity and a change counter.
type Layout struct {
	root       Element
	generation uint64
}

// NewLayout creates a layout with no root element.
func NewLayout() *Layout {
	return &Layout{}
}

// SetRoot installs the root element and points the whole tree at this
// layout. A previous root, if any, is detached from the layout first.
func (l *Layout) SetRoot(e Element) {
	if l.root != nil {
		l.root.SetLayout(nil)
	}
	l.root = e
	if e != nil {
		e.SetLayout(l)
	}
	l.Invalidate()
}

// Root returns the root element, or nil.
func (l *Layout) Root() Element {
	return l.root
}

// Invalidate records a structural change. Containers call this after every
// shape or slot edit.
func (l *Layout) Invalidate() {
	l.generation++
}

// Generation returns the number of structural changes recorded so far.
func (l *Layout) Generation() uint64 {
	return l.generation
}
