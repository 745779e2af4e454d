package search

import (
	"testing"
	"time"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/schedule"
)

type capture struct {
	values []string
	inputs []*dom.Node
}

func (c *capture) query(input *dom.Node, value string) {
	c.inputs = append(c.inputs, input)
	c.values = append(c.values, value)
}

func searchBox() (*dom.Node, *dom.Node) {
	input := dom.Input(dom.Type("text"), dom.Placeholder("Search leads..."))
	return dom.Div(dom.Class("search-box"), input), input
}

func mountSearch(t *testing.T, root *dom.Node, opts ...Option) (*page.Page, *schedule.Manual) {
	t.Helper()
	sched := schedule.NewManual()
	p, err := page.New(dom.NewDocument(root), []page.Binding{
		{Selector: ".search-box input", New: func() page.Mounter { return New(opts...) }},
	}, &page.Config{Scheduler: sched})
	if err != nil {
		t.Fatalf("page.New: %v", err)
	}
	return p, sched
}

func typeInto(p *page.Page, input *dom.Node, value string) {
	p.Dispatch(&page.Event{Type: page.Input, Target: input, Value: value})
}

func TestBurstCollapsesToOneQuery(t *testing.T) {
	box, input := searchBox()
	got := &capture{}
	p, sched := mountSearch(t, dom.Body(box), WithQuery(got.query))

	typeInto(p, input, "a")
	sched.Advance(100 * time.Millisecond)
	typeInto(p, input, "ab")
	sched.Advance(100 * time.Millisecond)
	typeInto(p, input, "abc")

	sched.Advance(250 * time.Millisecond)
	if len(got.values) != 0 {
		t.Fatalf("Expected no query before the window elapses, got %v", got.values)
	}

	sched.Advance(50 * time.Millisecond)
	if len(got.values) != 1 {
		t.Fatalf("Expected exactly 1 query, got %d", len(got.values))
	}
	if got.values[0] != "abc" {
		t.Errorf("query value = %q, want %q", got.values[0], "abc")
	}
	if got.inputs[0] != input {
		t.Error("Expected the query to carry the originating input")
	}
}

func TestQuietPeriodRestartsPerKeystroke(t *testing.T) {
	box, input := searchBox()
	got := &capture{}
	p, sched := mountSearch(t, dom.Body(box), WithQuery(got.query))

	typeInto(p, input, "a")
	sched.Advance(299 * time.Millisecond)
	typeInto(p, input, "ab")
	sched.Advance(299 * time.Millisecond)
	if len(got.values) != 0 {
		t.Fatalf("Expected the window to restart, got %v", got.values)
	}

	sched.Advance(time.Millisecond)
	if len(got.values) != 1 || got.values[0] != "ab" {
		t.Fatalf("queries = %v, want [ab]", got.values)
	}
}

func TestInputsDebounceIndependently(t *testing.T) {
	boxA, inputA := searchBox()
	boxB, inputB := searchBox()
	got := &capture{}
	p, sched := mountSearch(t, dom.Body(boxA, boxB), WithQuery(got.query))

	typeInto(p, inputA, "alice")
	sched.Advance(150 * time.Millisecond)
	typeInto(p, inputB, "bob")

	sched.Advance(150 * time.Millisecond)
	if len(got.values) != 1 || got.values[0] != "alice" {
		t.Fatalf("queries = %v, want [alice]", got.values)
	}

	sched.Advance(150 * time.Millisecond)
	if len(got.values) != 2 || got.values[1] != "bob" {
		t.Fatalf("queries = %v, want [alice bob]", got.values)
	}
	if got.inputs[0] != inputA || got.inputs[1] != inputB {
		t.Error("Expected each query to carry its own input")
	}
}

func TestClearedValueStillFires(t *testing.T) {
	box, input := searchBox()
	got := &capture{}
	p, sched := mountSearch(t, dom.Body(box), WithQuery(got.query))

	typeInto(p, input, "abc")
	sched.Advance(100 * time.Millisecond)
	typeInto(p, input, "")
	sched.Advance(300 * time.Millisecond)

	if len(got.values) != 1 || got.values[0] != "" {
		t.Fatalf("queries = %v, want one empty query", got.values)
	}
}

func TestWithWindow(t *testing.T) {
	box, input := searchBox()
	got := &capture{}
	p, sched := mountSearch(t, dom.Body(box), WithQuery(got.query), WithWindow(50*time.Millisecond))

	typeInto(p, input, "x")
	sched.Advance(49 * time.Millisecond)
	if len(got.values) != 0 {
		t.Fatalf("Expected no query at 49ms, got %v", got.values)
	}
	sched.Advance(time.Millisecond)
	if len(got.values) != 1 {
		t.Fatalf("Expected 1 query at 50ms, got %d", len(got.values))
	}
}

func TestMissingCallbackSkips(t *testing.T) {
	box, _ := searchBox()
	p, _ := mountSearch(t, dom.Body(box))

	rec, ok := p.Report().Lookup("search")
	if !ok {
		t.Fatal("Expected a mount record for search")
	}
	if rec.Status != page.StatusSkipped {
		t.Errorf("status = %v, want skipped", rec.Status)
	}
}

func TestCloseStopsPendingQuery(t *testing.T) {
	box, input := searchBox()
	got := &capture{}
	p, sched := mountSearch(t, dom.Body(box), WithQuery(got.query))

	typeInto(p, input, "abc")
	p.Close()
	sched.Advance(time.Second)

	if len(got.values) != 0 {
		t.Fatalf("Expected no query after close, got %v", got.values)
	}
}
