package dom

import "testing"

func sampleRow() *Node {
	return Tr(
		Th(Class("sortable"), "Name"),
		NewText("\n  "),
		Th(Class("sortable"), "Value"),
		Th("Actions"),
	)
}

func TestTextContent(t *testing.T) {
	n := Div(
		Span("Hello"),
		NewText(" "),
		Strong("world"),
	)
	if got := n.TextContent(); got != "Hello world" {
		t.Fatalf("TextContent = %q, want %q", got, "Hello world")
	}
}

func TestElementChildrenSkipsText(t *testing.T) {
	row := sampleRow()
	cells := row.ElementChildren()
	if len(cells) != 3 {
		t.Fatalf("Expected 3 element children, got %d", len(cells))
	}
	for i, c := range cells {
		if c.Tag != "th" {
			t.Errorf("child %d tag = %q, want th", i, c.Tag)
		}
	}
}

func TestElementIndexIgnoresTextSiblings(t *testing.T) {
	row := sampleRow()
	cells := row.ElementChildren()
	if got := cells[1].ElementIndex(); got != 1 {
		t.Errorf("ElementIndex = %d, want 1", got)
	}
	if got := cells[2].ElementIndex(); got != 2 {
		t.Errorf("ElementIndex = %d, want 2", got)
	}
}

func TestNextPrevElement(t *testing.T) {
	row := sampleRow()
	cells := row.ElementChildren()

	if got := cells[0].NextElement(); got != cells[1] {
		t.Errorf("NextElement skipped to %v, want second th", got)
	}
	if got := cells[1].PrevElement(); got != cells[0] {
		t.Errorf("PrevElement = %v, want first th", got)
	}
	if got := cells[2].NextElement(); got != nil {
		t.Errorf("NextElement at end = %v, want nil", got)
	}
	if got := cells[0].PrevElement(); got != nil {
		t.Errorf("PrevElement at start = %v, want nil", got)
	}
}

func TestContains(t *testing.T) {
	inner := Span("deep")
	root := Div(Div(inner))
	if !root.Contains(inner) {
		t.Error("Expected root to contain inner")
	}
	if !root.Contains(root) {
		t.Error("Expected root to contain itself")
	}
	other := Div()
	if root.Contains(other) {
		t.Error("Expected root not to contain detached node")
	}
}

func TestClassList(t *testing.T) {
	n := Div(Class("alert", "alert-info"))
	list := n.ClassList()
	if len(list) != 2 {
		t.Fatalf("Expected 2 classes, got %d", len(list))
	}
	if !n.HasClass("alert-info") {
		t.Error("Expected HasClass(alert-info) = true")
	}
	if n.HasClass("alert-in") {
		t.Error("Expected no partial class match")
	}
}

func TestIntAttr(t *testing.T) {
	n := Div(Data("auto-hide", "4000"))
	if got := n.IntAttr("data-auto-hide", 5000); got != 4000 {
		t.Errorf("IntAttr = %d, want 4000", got)
	}
	if got := n.IntAttr("data-missing", 5000); got != 5000 {
		t.Errorf("IntAttr default = %d, want 5000", got)
	}
	n.SetAttrQuiet("data-auto-hide", "soon")
	if got := n.IntAttr("data-auto-hide", 5000); got != 5000 {
		t.Errorf("IntAttr on junk = %d, want fallback 5000", got)
	}
}

func TestChildIndex(t *testing.T) {
	a, b := Span("a"), Span("b")
	parent := Div(a, b)
	if got := parent.ChildIndex(b); got != 1 {
		t.Errorf("ChildIndex = %d, want 1", got)
	}
	if got := parent.ChildIndex(Span("c")); got != -1 {
		t.Errorf("ChildIndex of stranger = %d, want -1", got)
	}
}
