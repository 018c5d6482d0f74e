package widgets

import (
	"testing"

	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/theme"
)

func TestStack_IsPureCompositionNode(t *testing.T) {
	tpl := Stack{}.Create()
	if tpl.ParentType() != core.ParentMulti {
		t.Error("Stack must accept many children")
	}

	c := core.Instantiate(tpl)
	if c.State() != nil {
		t.Error("Stack must not carry state")
	}
	if c.LayoutObject().LayoutName() != "stretch" {
		t.Errorf("layout = %q", c.LayoutObject().LayoutName())
	}
}

func TestCatalog_Selectors(t *testing.T) {
	cases := []struct {
		widget core.Widget
		want   string
	}{
		{Container{}, "container"},
		{Cursor{}, "cursor"},
		{TextBlock{}, "textblock"},
		{WaterMarkTextBlock{}, "watermarktextblock"},
	}
	for _, tc := range cases {
		c := core.Instantiate(tc.widget.Create())
		selector, err := core.Property[theme.Selector](c)
		if err != nil {
			t.Fatalf("%s: %v", c.DebugName(), err)
		}
		if selector.Element() != tc.want {
			t.Errorf("%s selector = %q, want %q", c.DebugName(), selector.Element(), tc.want)
		}
	}
}

func TestScrollViewer_DeclaresOffset(t *testing.T) {
	c := core.Instantiate(ScrollViewer{}.Create())
	offset, err := core.Property[Offset](c)
	if err != nil {
		t.Fatal(err)
	}
	if offset != 0 {
		t.Errorf("initial offset = %v", offset)
	}
	if err := core.SetProperty(c, Offset(4)); err != nil {
		t.Fatal(err)
	}
}

func TestTextBlock_InitialText(t *testing.T) {
	c := core.Instantiate(TextBlock{Text: "hello"}.Create())
	label, err := core.Property[Label](c)
	if err != nil {
		t.Fatal(err)
	}
	if label != "hello" {
		t.Errorf("label = %q", label)
	}
}
