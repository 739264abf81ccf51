package floah

import (
	"fmt"
	"slices"
)

// Grid is a container element that arranges children in rows and columns.
// A slot is addressed as (column x, row y) and holds at most one child,
// which the grid owns until it is removed or extracted. Slots are stored
// row-major in a single flat slice of length RowCount*ColumnCount.
//
// Index arguments outside the current shape are caller bugs and panic;
// bounds are checked before any mutation, so a panicking call never leaves
// the grid in a half-edited state.
//
// A Grid must not be copied by value (go vet flags it). Clone is the only
// way to duplicate one, Extract the only way to move children out.
type Grid struct {
	Base
	noCopy noCopy

	horAlign HorizontalAlignment
	verAlign VerticalAlignment

	rows, cols int
	children   []Element // row-major, nil where a slot is empty
}

var _ Element = (*Grid)(nil)

// NewGrid creates an empty grid with zero rows and columns.
func NewGrid() *Grid {
	return &Grid{}
}

// slot converts grid coordinates to an index into the row-major store.
func (g *Grid) slot(x, y int) int {
	return y*g.cols + x
}

func (g *Grid) checkCell(x, y int) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		panic(fmt.Sprintf("floah: cell (%d, %d) out of range for %dx%d grid", x, y, g.cols, g.rows))
	}
}

func (g *Grid) checkRow(y int) {
	if y < 0 || y >= g.rows {
		panic(fmt.Sprintf("floah: row %d out of range for %d rows", y, g.rows))
	}
}

func (g *Grid) checkColumn(x int) {
	if x < 0 || x >= g.cols {
		panic(fmt.Sprintf("floah: column %d out of range for %d columns", x, g.cols))
	}
}

// RowCount returns the number of rows.
func (g *Grid) RowCount() int {
	return g.rows
}

// ColumnCount returns the number of columns.
func (g *Grid) ColumnCount() int {
	return g.cols
}

// HorizontalAlignment returns the horizontal alignment for child elements.
func (g *Grid) HorizontalAlignment() HorizontalAlignment {
	return g.horAlign
}

// SetHorizontalAlignment sets the horizontal alignment for child elements.
func (g *Grid) SetHorizontalAlignment(a HorizontalAlignment) {
	g.horAlign = a
}

// VerticalAlignment returns the vertical alignment for child elements.
func (g *Grid) VerticalAlignment() VerticalAlignment {
	return g.verAlign
}

// SetVerticalAlignment sets the vertical alignment for child elements.
func (g *Grid) SetVerticalAlignment(a VerticalAlignment) {
	g.verAlign = a
}

// SetLayout sets the owning layout for the grid and every child.
func (g *Grid) SetLayout(l *Layout) {
	g.Base.SetLayout(l)
	for _, c := range g.children {
		if c != nil {
			c.SetLayout(l)
		}
	}
}

// AppendRow adds an empty row at the bottom. Existing elements keep their
// coordinates.
func (g *Grid) AppendRow() {
	g.InsertRow(g.rows)
}

// AppendColumn adds an empty column at the right. Existing elements keep
// their coordinates.
func (g *Grid) AppendColumn() {
	g.InsertColumn(g.cols)
}

// PrependRow adds an empty row at the top. All elements shift down one row.
func (g *Grid) PrependRow() {
	g.InsertRow(0)
}

// PrependColumn adds an empty column at the left. All elements shift right
// one column.
func (g *Grid) PrependColumn() {
	g.InsertColumn(0)
}

// InsertRow inserts an empty row at y. Elements in rows >= y shift down one
// row. y may equal RowCount, which appends.
func (g *Grid) InsertRow(y int) {
	if y < 0 || y > g.rows {
		panic(fmt.Sprintf("floah: cannot insert row at %d in grid with %d rows", y, g.rows))
	}
	g.children = slices.Insert(g.children, y*g.cols, make([]Element, g.cols)...)
	g.rows++
	g.markChanged()
}

// InsertColumn inserts an empty column at x. Elements in columns >= x shift
// right one column. x may equal ColumnCount, which appends.
func (g *Grid) InsertColumn(x int) {
	if x < 0 || x > g.cols {
		panic(fmt.Sprintf("floah: cannot insert column at %d in grid with %d columns", x, g.cols))
	}
	next := make([]Element, g.rows*(g.cols+1))
	for y := 0; y < g.rows; y++ {
		row := g.children[y*g.cols : (y+1)*g.cols]
		copy(next[y*(g.cols+1):], row[:x])
		copy(next[y*(g.cols+1)+x+1:], row[x:])
	}
	g.children = next
	g.cols++
	g.markChanged()
}

// RemoveRow removes row y and discards the elements in it. Elements in rows
// > y shift up one row.
func (g *Grid) RemoveRow(y int) {
	g.checkRow(y)
	for x := 0; x < g.cols; x++ {
		detach(g.children[g.slot(x, y)])
	}
	g.children = slices.Delete(g.children, y*g.cols, (y+1)*g.cols)
	g.rows--
	g.markChanged()
}

// RemoveColumn removes column x and discards the elements in it. Elements
// in columns > x shift left one column.
func (g *Grid) RemoveColumn(x int) {
	g.checkColumn(x)
	next := make([]Element, g.rows*(g.cols-1))
	for y := 0; y < g.rows; y++ {
		detach(g.children[g.slot(x, y)])
		row := g.children[y*g.cols : (y+1)*g.cols]
		copy(next[y*(g.cols-1):], row[:x])
		copy(next[y*(g.cols-1)+x:], row[x+1:])
	}
	g.children = next
	g.cols--
	g.markChanged()
}

// ExtractRow removes row y and returns its elements in ascending column
// order, with a nil entry for every slot that was empty. The caller takes
// ownership; returned elements have no parent or layout. Elements in rows
// > y shift up one row.
func (g *Grid) ExtractRow(y int) []Element {
	g.checkRow(y)
	out := make([]Element, g.cols)
	copy(out, g.children[y*g.cols:(y+1)*g.cols])
	for _, e := range out {
		detach(e)
	}
	g.children = slices.Delete(g.children, y*g.cols, (y+1)*g.cols)
	g.rows--
	g.markChanged()
	return out
}

// ExtractColumn removes column x and returns its elements in ascending row
// order, with a nil entry for every slot that was empty. The caller takes
// ownership; returned elements have no parent or layout. Elements in
// columns > x shift left one column.
func (g *Grid) ExtractColumn(x int) []Element {
	g.checkColumn(x)
	out := make([]Element, g.rows)
	next := make([]Element, g.rows*(g.cols-1))
	for y := 0; y < g.rows; y++ {
		out[y] = g.children[g.slot(x, y)]
		detach(out[y])
		row := g.children[y*g.cols : (y+1)*g.cols]
		copy(next[y*(g.cols-1):], row[:x])
		copy(next[y*(g.cols-1)+x:], row[x+1:])
	}
	g.children = next
	g.cols--
	g.markChanged()
	return out
}

// RemoveAllRowsAndColumns discards every element and resets the grid to
// zero rows and columns.
func (g *Grid) RemoveAllRowsAndColumns() {
	for _, e := range g.children {
		detach(e)
	}
	g.children = nil
	g.rows, g.cols = 0, 0
	g.markChanged()
}

// Get returns the element at (x, y), or nil if the slot is empty. The grid
// keeps ownership.
func (g *Grid) Get(x, y int) Element {
	g.checkCell(x, y)
	return g.children[g.slot(x, y)]
}

// Insert places elem at (x, y), discarding any element already there. The
// grid takes ownership: elem's parent becomes the grid and its layout the
// grid's layout. Returns elem so the caller can keep using it. elem must
// not be nil.
func (g *Grid) Insert(elem Element, x, y int) Element {
	if elem == nil {
		panic("floah: Insert requires a non-nil element")
	}
	g.checkCell(x, y)
	i := g.slot(x, y)
	detach(g.children[i])
	g.children[i] = elem
	elem.SetParent(g)
	elem.SetLayout(g.layout)
	g.markChanged()
	return elem
}

// Remove discards the element at (x, y). No-op if the slot is empty.
func (g *Grid) Remove(x, y int) {
	g.checkCell(x, y)
	i := g.slot(x, y)
	if g.children[i] == nil {
		return
	}
	detach(g.children[i])
	g.children[i] = nil
	g.markChanged()
}

// Extract removes and returns the element at (x, y), or nil if the slot is
// empty. The caller takes ownership; the returned element has no parent or
// layout.
func (g *Grid) Extract(x, y int) Element {
	g.checkCell(x, y)
	i := g.slot(x, y)
	e := g.children[i]
	if e == nil {
		return nil
	}
	detach(e)
	g.children[i] = nil
	g.markChanged()
	return e
}

// Clone returns an independent deep copy: same shape and alignment, every
// occupied slot holding a clone of its element wired to the new grid as
// parent and to the given layout.
func (g *Grid) Clone(layout *Layout, parent Element) Element {
	clone := &Grid{
		horAlign: g.horAlign,
		verAlign: g.verAlign,
		rows:     g.rows,
		cols:     g.cols,
		children: make([]Element, len(g.children)),
	}
	clone.Base.SetParent(parent)
	clone.Base.SetLayout(layout)
	for i, c := range g.children {
		if c != nil {
			clone.children[i] = c.Clone(layout, clone)
		}
	}
	return clone
}
