package floah

import "testing"

func TestLabelWidth(t *testing.T) {
	cases := []struct {
		text  string
		width int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},
		{"日本語", 6}, // wide runes take two cells
	}
	for _, c := range cases {
		l := NewLabel(c.text)
		if l.PreferredWidth() != c.width {
			t.Errorf("width of %q should be %d, got %d", c.text, c.width, l.PreferredWidth())
		}
	}
}

func TestLabelSetTextRemeasures(t *testing.T) {
	l := NewLabel("ab")
	l.SetText("abcd")
	if l.Text() != "abcd" {
		t.Errorf("Text should be %q, got %q", "abcd", l.Text())
	}
	if l.PreferredWidth() != 4 {
		t.Errorf("width should be 4 after SetText, got %d", l.PreferredWidth())
	}
}

func TestLabelClone(t *testing.T) {
	g := NewGrid()
	lay := NewLayout()
	orig := NewLabel("text")

	clone, ok := orig.Clone(lay, g).(*Label)
	if !ok {
		t.Fatalf("Clone should return a *Label")
	}
	if clone == orig {
		t.Fatalf("Clone should return a new label")
	}
	if clone.Text() != "text" {
		t.Errorf("clone should keep the text, got %q", clone.Text())
	}
	if clone.Parent() != g || clone.Layout() != lay {
		t.Errorf("clone should be wired to the given parent and layout")
	}
	if orig.Parent() != nil {
		t.Errorf("cloning should not touch the original")
	}
}
