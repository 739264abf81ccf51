package floah

// Element is the interface implemented by every node in a layout tree.
// Concrete elements embed Base, which carries the parent and layout
// back-references; container elements additionally override SetLayout so
// their descendants always resolve to the same layout they do.
type Element interface {
	// Parent returns the containing element, or nil if the element is
	// detached or the root of its tree.
	Parent() Element

	// SetParent re-points the parent back-reference. Containers call this
	// on a child whenever it is inserted, extracted, or cloned; callers
	// normally never need to.
	SetParent(Element)

	// Layout returns the layout that owns this element's tree, or nil for
	// a detached subtree.
	Layout() *Layout

	// SetLayout re-points the layout back-reference. Containers propagate
	// the call to every child.
	SetLayout(*Layout)

	// Clone produces a fully independent deep copy wired to the given
	// layout and parent. The receiver is left untouched.
	Clone(layout *Layout, parent Element) Element
}

// Base carries the back-reference bookkeeping shared by all elements.
// Embed it in concrete element structs. The references are associations
// only; Base never manages the lifetime of what they point at.
type Base struct {
	parent Element
	layout *Layout
}

// Parent returns the containing element, or nil.
func (b *Base) Parent() Element {
	return b.parent
}

// SetParent re-points the parent back-reference.
func (b *Base) SetParent(p Element) {
	b.parent = p
}

// Layout returns the owning layout, or nil.
func (b *Base) Layout() *Layout {
	return b.layout
}

// SetLayout sets the owning layout for this element only. Containers
// override it to also reach their children.
func (b *Base) SetLayout(l *Layout) {
	b.layout = l
}

// markChanged tells the owning layout the tree changed under this element.
// No-op while detached.
func (b *Base) markChanged() {
	if b.layout != nil {
		b.layout.Invalidate()
	}
}

// detach clears an element's back-references before ownership leaves its
// container. Safe to call on an empty slot.
func detach(e Element) {
	if e == nil {
		return
	}
	e.SetParent(nil)
	e.SetLayout(nil)
}

// noCopy triggers vet's copylocks check on types that must not be copied
// by value. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
