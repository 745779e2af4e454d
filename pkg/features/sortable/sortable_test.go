package sortable

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/schedule"
)

func leadsTable(values []string) (*dom.Node, *dom.Node, *dom.Node) {
	nameTh := dom.Th(dom.Class("sortable"), "Name")
	valueTh := dom.Th(dom.Class("sortable"), "Value")
	tbody := dom.TBody()
	for i, v := range values {
		tbody.AppendChild(dom.Tr(
			dom.Td("Lead "+string(rune('A'+i))),
			dom.Td(v),
		))
	}
	table := dom.Table(dom.THead(dom.Tr(nameTh, valueTh)), tbody)
	return table, nameTh, valueTh
}

func mountSorter(t *testing.T, root *dom.Node, opts ...Option) *page.Page {
	t.Helper()
	p, err := page.New(dom.NewDocument(root), []page.Binding{
		{Selector: "th.sortable", New: func() page.Mounter { return New(opts...) }},
	}, &page.Config{Scheduler: schedule.NewManual()})
	if err != nil {
		t.Fatalf("page.New: %v", err)
	}
	return p
}

func column(table *dom.Node, col int) []string {
	var out []string
	for _, tr := range table.Find("tbody").FindAll("tr") {
		cells := tr.ElementChildren()
		out = append(out, strings.TrimSpace(cells[col].TextContent()))
	}
	return out
}

func assertColumn(t *testing.T, table *dom.Node, col int, want ...string) {
	t.Helper()
	got := column(table, col)
	if len(got) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d = %v, want %v", col, got, want)
		}
	}
}

func TestFirstClickSortsDescending(t *testing.T) {
	table, _, valueTh := leadsTable([]string{"2", "10", "1"})
	p := mountSorter(t, dom.Body(table))

	p.Dispatch(&page.Event{Type: page.Click, Target: valueTh})
	assertColumn(t, table, 1, "10", "2", "1")
	if got := valueTh.Attr(OrderAttr); got != OrderDesc {
		t.Errorf("order attr = %q, want desc", got)
	}
	if !valueTh.HasClass(ClassSortDesc) {
		t.Error("Expected sorted-desc class on the header")
	}
}

func TestNumericAwareAscending(t *testing.T) {
	table, _, valueTh := leadsTable([]string{"2", "10", "1"})
	p := mountSorter(t, dom.Body(table))

	p.Dispatch(&page.Event{Type: page.Click, Target: valueTh})
	p.Dispatch(&page.Event{Type: page.Click, Target: valueTh})
	// Numeric-aware: ascending is 1,2,10, not lexicographic 1,10,2.
	assertColumn(t, table, 1, "1", "2", "10")
	if got := valueTh.Attr(OrderAttr); got != OrderAsc {
		t.Errorf("order attr = %q, want asc", got)
	}
}

func TestDoubleClickReversesExactly(t *testing.T) {
	table, nameTh, _ := leadsTable([]string{"5", "3", "9", "1"})
	p := mountSorter(t, dom.Body(table))

	original := column(table, 0)
	p.Dispatch(&page.Event{Type: page.Click, Target: nameTh})
	first := column(table, 0)
	p.Dispatch(&page.Event{Type: page.Click, Target: nameTh})
	second := column(table, 0)

	for i := range first {
		if first[i] != second[len(second)-1-i] {
			t.Fatalf("second sort %v is not the exact reverse of first %v", second, first)
		}
	}
	// Names were generated in ascending order, so two clicks restore them.
	for i := range original {
		if second[i] != original[i] {
			t.Fatalf("after two clicks column = %v, want original %v", second, original)
		}
	}
}

func TestIndicatorMovesBetweenHeaders(t *testing.T) {
	table, nameTh, valueTh := leadsTable([]string{"2", "1"})
	p := mountSorter(t, dom.Body(table))

	p.Dispatch(&page.Event{Type: page.Click, Target: nameTh})
	p.Dispatch(&page.Event{Type: page.Click, Target: valueTh})

	if nameTh.HasClass(ClassSortAsc) || nameTh.HasClass(ClassSortDesc) {
		t.Error("Expected previous header's indicator cleared")
	}
	if !valueTh.HasClass(ClassSortDesc) {
		t.Error("Expected activated header marked")
	}

	active := 0
	for _, th := range table.FindAll("th") {
		if th.HasClass(ClassSortAsc) || th.HasClass(ClassSortDesc) {
			active++
		}
	}
	if active != 1 {
		t.Errorf("Expected exactly 1 active indicator, got %d", active)
	}
}

func TestSortByTextColumn(t *testing.T) {
	table, nameTh, _ := leadsTable(nil)
	tbody := table.Find("tbody")
	for _, name := range []string{"mango", "Apple", "cherry"} {
		tbody.AppendChild(dom.Tr(dom.Td(name), dom.Td("0")))
	}
	p := mountSorter(t, dom.Body(table))

	p.Dispatch(&page.Event{Type: page.Click, Target: nameTh})
	p.Dispatch(&page.Event{Type: page.Click, Target: nameTh})
	// Collation orders by letter; case only breaks ties.
	assertColumn(t, table, 0, "Apple", "cherry", "mango")
}

func TestTrimsCellWhitespace(t *testing.T) {
	table, _, valueTh := leadsTable([]string{"  30 ", " 4", "200  "})
	p := mountSorter(t, dom.Body(table))

	p.Dispatch(&page.Event{Type: page.Click, Target: valueTh})
	p.Dispatch(&page.Event{Type: page.Click, Target: valueTh})
	assertColumn(t, table, 1, "4", "30", "200")
}

func TestCustomComparator(t *testing.T) {
	table, _, valueTh := leadsTable([]string{"b", "a", "c"})
	reversed := func(a, b string) int { return strings.Compare(b, a) }
	p := mountSorter(t, dom.Body(table), WithComparator(reversed))

	p.Dispatch(&page.Event{Type: page.Click, Target: valueTh})
	// Descending under a reversed comparator is plain ascending.
	assertColumn(t, table, 1, "a", "b", "c")
}

func TestWithLanguage(t *testing.T) {
	table, _, valueTh := leadsTable([]string{"ö", "z", "a"})
	p := mountSorter(t, dom.Body(table), WithLanguage(language.Swedish))

	p.Dispatch(&page.Event{Type: page.Click, Target: valueTh})
	// Swedish collates ö after z.
	assertColumn(t, table, 1, "ö", "z", "a")
}

func TestHeaderOutsideTableIsIgnored(t *testing.T) {
	stray := dom.Th(dom.Class("sortable"), "Loose")
	p := mountSorter(t, dom.Body(dom.Div(dom.Tr(stray))))
	p.Dispatch(&page.Event{Type: page.Click, Target: stray})
	// Nothing to assert beyond not panicking; no table, no sort.
	if stray.HasAttr(OrderAttr) {
		t.Error("Expected no order persisted without a table")
	}
}

func TestSortEmitsPatches(t *testing.T) {
	table, _, valueTh := leadsTable([]string{"2", "1"})
	p := mountSorter(t, dom.Body(table))

	p.Dispatch(&page.Event{Type: page.Click, Target: valueTh})
	if got := len(p.FlushPatches()); got == 0 {
		t.Error("Expected sort to produce patches")
	}
}

func TestOnSortHook(t *testing.T) {
	table, _, valueTh := leadsTable([]string{"2", "10", "1"})
	col, order := -1, ""
	p := mountSorter(t, dom.Body(table), WithOnSort(func(c int, o string) { col, order = c, o }))

	p.Dispatch(&page.Event{Type: page.Click, Target: valueTh})
	if col != 1 || order != OrderDesc {
		t.Fatalf("hook got (%d, %q), want (1, %q)", col, order, OrderDesc)
	}
}
