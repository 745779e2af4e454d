// Package validate intercepts form submission and enforces presence on
// required fields.
//
// Trimmed emptiness is the sole predicate. A failing field gets an
// invalid-state class and one error node in its form group, updated in
// place on repeat attempts, never duplicated. A passing field gets both
// cleared. Validation re-runs in full on every attempt; anything beyond
// presence is the caller's business.
package validate

import (
	"log/slog"
	"strings"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
)

const (
	// ErrorClass marks a field that failed validation.
	ErrorClass = "field-error"

	// MessageClass marks the error node placed in the field's group.
	MessageClass = "field-error-message"

	// DefaultMessage is the error text used when none is configured.
	DefaultMessage = "This field is required."
)

// Option configures a Validator.
type Option func(*Validator)

// WithMessage overrides the error text.
func WithMessage(msg string) Option {
	return func(v *Validator) {
		if msg != "" {
			v.message = msg
		}
	}
}

// WithOnInvalid registers a callback invoked when a submission is
// blocked, with the number of failing fields.
func WithOnInvalid(fn func(form *dom.Node, fields int)) Option {
	return func(v *Validator) {
		v.onInvalid = fn
	}
}

// Validator guards forms marked for validation.
type Validator struct {
	message   string
	onInvalid func(*dom.Node, int)
	log       *slog.Logger

	// errs maps a field to the error node it currently owns.
	errs map[*dom.Node]*dom.Node
}

// New returns a Validator with the default message.
func New(opts ...Option) *Validator {
	v := &Validator{
		message: DefaultMessage,
		errs:    make(map[*dom.Node]*dom.Node),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Name identifies the feature in mount reports.
func (v *Validator) Name() string { return "validate" }

// Mount attaches a submit interceptor to every matched form.
func (v *Validator) Mount(ctx *page.MountCtx, anchors []*dom.Node) error {
	v.log = ctx.Log
	for _, form := range anchors {
		ctx.Page.On(form, page.Submit, func(ev *page.Event) {
			v.submit(form, ev)
		})
	}
	return nil
}

// submit re-validates every required field in the form and suppresses
// the default action when any fail.
func (v *Validator) submit(form *dom.Node, ev *page.Event) {
	invalid := 0
	for _, field := range form.FindAll("[required]") {
		if strings.TrimSpace(fieldValue(field)) == "" {
			invalid++
			v.mark(field)
		} else {
			v.clear(field)
		}
	}
	if invalid == 0 {
		return
	}
	ev.PreventDefault()
	if v.onInvalid != nil {
		v.onInvalid(form, invalid)
	}
	v.log.Debug("submit blocked", "fields", invalid)
}

// fieldValue reads a field's current value. Inputs carry it in the
// value attribute (the page mirrors live edits there); textareas that
// were server-rendered carry it as text content.
func fieldValue(f *dom.Node) string {
	if f.HasAttr("value") {
		return f.Attr("value")
	}
	if f.Tag == "textarea" {
		return f.TextContent()
	}
	return ""
}

// mark flags the field and places or updates its error node.
func (v *Validator) mark(field *dom.Node) {
	field.AddClass(ErrorClass)
	if msg := v.errs[field]; msg != nil && msg.Document() != nil {
		msg.SetText(v.message)
		return
	}
	group := errorHome(field)
	for _, msg := range group.FindAll("." + MessageClass) {
		if v.owned(msg) {
			continue
		}
		msg.SetText(v.message)
		v.errs[field] = msg
		return
	}
	msg := dom.Span(dom.Class(MessageClass), v.message)
	group.AppendChild(msg)
	v.errs[field] = msg
}

// owned reports whether another field already claimed the error node.
// Matters for group-less forms, where errorHome is shared.
func (v *Validator) owned(msg *dom.Node) bool {
	for _, m := range v.errs {
		if m == msg {
			return true
		}
	}
	return false
}

// clear removes the field's flag and error node if present.
func (v *Validator) clear(field *dom.Node) {
	field.RemoveClass(ErrorClass)
	if msg := v.errs[field]; msg != nil {
		msg.Remove()
		delete(v.errs, field)
	}
}

// errorHome is the container the error node lives in: the field's form
// group, or its parent when the form has no group wrappers.
func errorHome(field *dom.Node) *dom.Node {
	if group := field.Closest(".form-group"); group != nil {
		return group
	}
	return field.Parent
}
