package floah

import "github.com/mattn/go-runewidth"

// Label is a leaf element holding a single line of text. It keeps the
// display width of its text measured in terminal cells so containers can
// size its slot.
type Label struct {
	Base
	text  string
	width int
}

var _ Element = (*Label)(nil)

// NewLabel creates a label with the given text.
func NewLabel(text string) *Label {
	return &Label{text: text, width: runewidth.StringWidth(text)}
}

// Text returns the label's text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label's text and remeasures it.
func (l *Label) SetText(text string) {
	l.text = text
	l.width = runewidth.StringWidth(text)
	l.markChanged()
}

// PreferredWidth returns the number of terminal cells the text occupies.
func (l *Label) PreferredWidth() int {
	return l.width
}

// Clone returns an independent copy wired to the given layout and parent.
func (l *Label) Clone(layout *Layout, parent Element) Element {
	c := NewLabel(l.text)
	c.SetParent(parent)
	c.SetLayout(layout)
	return c
}
