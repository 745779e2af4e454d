package page

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/glint-go/glint/pkg/dom"
)

// ErrSkip tells the binder a feature declined to mount. Features return
// it (possibly wrapped) when a secondary element they need is absent;
// the binder records a skip instead of a failure.
var ErrSkip = errors.New("page: feature skipped")

// Mounter is a feature module. Mount receives the elements its binding
// selector matched; the feature registers handlers and owns exactly
// those subtrees from then on.
type Mounter interface {
	Name() string
	Mount(ctx *MountCtx, anchors []*dom.Node) error
}

// Binding maps a selector to a feature constructor. The constructor
// runs once per page, so feature state is page-scoped.
type Binding struct {
	Selector string
	New      func() Mounter
}

// MountCtx is what a feature gets to work with while mounting.
type MountCtx struct {
	Page *Page
	Log  *slog.Logger
}

// Find resolves a selector against the page document. It is meant for
// mount-time wiring of secondary elements (a toggle's sidebar); features
// should not re-query the document at event time.
func (c *MountCtx) Find(selector string) []*dom.Node {
	return c.Page.Doc().FindAll(selector)
}

// MountStatus classifies a binding's outcome.
type MountStatus uint8

const (
	StatusMounted MountStatus = iota
	StatusSkipped
	StatusFailed
)

// String returns the status label used in logs and metrics.
func (s MountStatus) String() string {
	switch s {
	case StatusMounted:
		return "mounted"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MountRecord is one binding's outcome.
type MountRecord struct {
	Feature  string
	Selector string
	Status   MountStatus
	Anchors  int
	Err      error
}

// MountReport lists every binding outcome for a page, in binding order.
// A selector that matched nothing is a declared skip, not an error.
type MountReport struct {
	Records []MountRecord
}

// Mounted returns the names of features that mounted.
func (r *MountReport) Mounted() []string {
	return r.withStatus(StatusMounted)
}

// Skipped returns the names of features that declined or had no anchors.
func (r *MountReport) Skipped() []string {
	return r.withStatus(StatusSkipped)
}

// Failed returns the names of features whose Mount returned an error.
func (r *MountReport) Failed() []string {
	return r.withStatus(StatusFailed)
}

func (r *MountReport) withStatus(s MountStatus) []string {
	var out []string
	for _, rec := range r.Records {
		if rec.Status == s {
			out = append(out, rec.Feature)
		}
	}
	return out
}

// Lookup returns the record for a feature name.
func (r *MountReport) Lookup(feature string) (MountRecord, bool) {
	for _, rec := range r.Records {
		if rec.Feature == feature {
			return rec, true
		}
	}
	return MountRecord{}, false
}

// String summarizes the report for logs.
func (r *MountReport) String() string {
	return fmt.Sprintf("mounted=%d skipped=%d failed=%d",
		len(r.Mounted()), len(r.Skipped()), len(r.Failed()))
}

// mountAll runs the binding list against the document.
func (p *Page) mountAll(bindings []Binding) {
	for _, b := range bindings {
		rec := p.mountOne(b)
		p.report.Records = append(p.report.Records, rec)
		switch rec.Status {
		case StatusMounted:
			p.logger.Debug("feature mounted",
				"feature", rec.Feature, "selector", rec.Selector, "anchors", rec.Anchors)
		case StatusSkipped:
			p.logger.Debug("feature skipped",
				"feature", rec.Feature, "selector", rec.Selector)
		case StatusFailed:
			p.logger.Error("feature mount failed",
				"feature", rec.Feature, "selector", rec.Selector, "error", rec.Err)
		}
	}
}

func (p *Page) mountOne(b Binding) MountRecord {
	if b.New == nil {
		return MountRecord{Selector: b.Selector, Status: StatusFailed,
			Err: fmt.Errorf("page: binding %q has no constructor", b.Selector)}
	}
	m := b.New()
	rec := MountRecord{Feature: m.Name(), Selector: b.Selector}

	sel, err := dom.ParseSelector(b.Selector)
	if err != nil {
		rec.Status = StatusFailed
		rec.Err = err
		return rec
	}
	anchors := p.doc.Query(sel)
	rec.Anchors = len(anchors)
	if len(anchors) == 0 {
		rec.Status = StatusSkipped
		return rec
	}

	ctx := &MountCtx{Page: p, Log: p.logger.With("feature", m.Name())}
	if err := m.Mount(ctx, anchors); err != nil {
		if errors.Is(err, ErrSkip) {
			rec.Status = StatusSkipped
			return rec
		}
		rec.Status = StatusFailed
		rec.Err = err
		return rec
	}
	rec.Status = StatusMounted
	p.mounted[m.Name()] = m
	return rec
}
