// Package sortable reorders table rows when a column header is clicked.
//
// A header activates the sort for its column: rows are compared by the
// trimmed text of the corresponding cell using a locale-aware, numeric-
// aware collator, so "10" sorts after "2". The direction alternates per
// activation and is persisted on the header as data-sort-order; exactly
// one header per row carries an active indicator class at a time.
package sortable

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
)

// Attribute and class names of the sorting contract.
const (
	OrderAttr     = "data-sort-order"
	OrderAsc      = "asc"
	OrderDesc     = "desc"
	ClassSortAsc  = "sorted-asc"
	ClassSortDesc = "sorted-desc"
)

// Comparator compares two cell keys. Negative means a before b.
type Comparator func(a, b string) int

// Option configures the sorter.
type Option func(*Sorter)

// WithComparator replaces the default collator with a custom key
// comparison.
func WithComparator(cmp Comparator) Option {
	return func(s *Sorter) { s.cmp = cmp }
}

// WithLanguage selects the collation language for the default
// comparator. Defaults to English.
func WithLanguage(tag language.Tag) Option {
	return func(s *Sorter) { s.lang = tag }
}

// WithOnSort registers a callback invoked after each applied sort, with
// the column index and the new order.
func WithOnSort(fn func(column int, order string)) Option {
	return func(s *Sorter) { s.onSort = fn }
}

// Sorter is the table-sorting feature. One instance serves all sortable
// headers on a page.
type Sorter struct {
	lang   language.Tag
	cmp    Comparator
	onSort func(int, string)
}

// New creates the sorter.
func New(opts ...Option) *Sorter {
	s := &Sorter{lang: language.English}
	for _, opt := range opts {
		opt(s)
	}
	if s.cmp == nil {
		c := collate.New(s.lang, collate.Numeric)
		s.cmp = c.CompareString
	}
	return s
}

// Name implements page.Mounter.
func (s *Sorter) Name() string { return "sortable" }

// Mount wires a click handler to each sortable header.
func (s *Sorter) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	for _, h := range anchors {
		ctx.Page.On(h, page.Click, func(*page.Event) {
			s.activate(ctx, h)
		})
	}
	return nil
}

// activate sorts the header's table by its column and flips the stored
// order.
func (s *Sorter) activate(ctx *page.MountCtx, header *dom.Node) {
	table := header.Closest("table")
	if table == nil || header.Parent == nil {
		return
	}
	col := header.ElementIndex()
	if col < 0 {
		return
	}

	next := OrderDesc
	if header.Attr(OrderAttr) == OrderDesc {
		next = OrderAsc
	}

	rowsParent, rows := bodyRows(table, header)
	if len(rows) > 1 {
		s.sortRows(rows, col, next)
		// Re-append in sorted order; each append is a move the client
		// replays the same way appendChild does.
		for _, row := range rows {
			rowsParent.AppendChild(row)
		}
	}

	headerRow := header.Parent
	for _, th := range headerRow.ElementChildren() {
		th.RemoveClass(ClassSortAsc, ClassSortDesc)
	}
	if next == OrderAsc {
		header.AddClass(ClassSortAsc)
	} else {
		header.AddClass(ClassSortDesc)
	}
	header.SetAttr(OrderAttr, next)

	if s.onSort != nil {
		s.onSort(col, next)
	}
	ctx.Log.Debug("table sorted", "column", col, "order", next, "rows", len(rows))
}

// bodyRows returns the element holding the data rows and the rows
// themselves, excluding the header's own row.
func bodyRows(table, header *dom.Node) (*dom.Node, []*dom.Node) {
	parent := table.Find("tbody")
	if parent == nil {
		parent = table
	}
	var rows []*dom.Node
	for _, tr := range parent.FindAll("tr") {
		if tr == header.Parent {
			continue
		}
		rows = append(rows, tr)
	}
	// Nested tables are not part of the contract; keep only direct
	// structural rows.
	direct := rows[:0]
	for _, tr := range rows {
		if tr.Parent == parent {
			direct = append(direct, tr)
		}
	}
	return parent, direct
}

// sortRows orders rows by the text of their col-th cell.
func (s *Sorter) sortRows(rows []*dom.Node, col int, order string) {
	keys := make(map[*dom.Node]string, len(rows))
	for _, row := range rows {
		keys[row] = cellKey(row, col)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		c := s.cmp(keys[rows[i]], keys[rows[j]])
		if order == OrderDesc {
			return c > 0
		}
		return c < 0
	})
}

// cellKey returns the trimmed text of the row's col-th cell, "" when
// the row is short.
func cellKey(row *dom.Node, col int) string {
	cells := row.ElementChildren()
	if col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col].TextContent())
}
