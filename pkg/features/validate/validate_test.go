package validate

import (
	"testing"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/schedule"
)

func leadForm() (form, name, email *dom.Node) {
	name = dom.Input(dom.Type("text"), dom.Name("name"), dom.Required())
	email = dom.Input(dom.Type("email"), dom.Name("email"), dom.Required())
	form = dom.Form(dom.Data("validate", ""),
		dom.Div(dom.Class("form-group"), dom.Label(dom.For("name"), "Name"), name),
		dom.Div(dom.Class("form-group"), dom.Label(dom.For("email"), "Email"), email),
		dom.Button(dom.Type("submit"), "Save"),
	)
	return form, name, email
}

func mountValidator(t *testing.T, root *dom.Node, opts ...Option) *page.Page {
	t.Helper()
	p, err := page.New(dom.NewDocument(root), []page.Binding{
		{Selector: "form[data-validate]", New: func() page.Mounter { return New(opts...) }},
	}, &page.Config{Scheduler: schedule.NewManual()})
	if err != nil {
		t.Fatalf("page.New: %v", err)
	}
	return p
}

func fill(p *page.Page, field *dom.Node, value string) {
	p.Dispatch(&page.Event{Type: page.Input, Target: field, Value: value})
}

func submit(p *page.Page, form *dom.Node) bool {
	return p.Dispatch(&page.Event{Type: page.Submit, Target: form})
}

func errorNodes(n *dom.Node) []*dom.Node {
	return n.FindAll("." + MessageClass)
}

func TestEmptyRequiredFieldBlocksSubmit(t *testing.T) {
	form, name, email := leadForm()
	p := mountValidator(t, dom.Body(form))
	fill(p, name, "Ada Lovelace")

	if submit(p, form) {
		t.Fatal("Expected submission to be suppressed")
	}
	if !email.HasClass(ErrorClass) {
		t.Error("Expected field-error class on the empty field")
	}
	if name.HasClass(ErrorClass) {
		t.Error("Filled field should not be flagged")
	}
	emailErrs := errorNodes(email.Closest(".form-group"))
	if len(emailErrs) != 1 {
		t.Fatalf("Expected 1 error node under the empty field, got %d", len(emailErrs))
	}
	if got := emailErrs[0].TextContent(); got != DefaultMessage {
		t.Errorf("error text = %q, want %q", got, DefaultMessage)
	}
	if got := len(errorNodes(name.Closest(".form-group"))); got != 0 {
		t.Errorf("Expected no error node under the filled field, got %d", got)
	}
}

func TestCleanSubmitProceeds(t *testing.T) {
	form, name, email := leadForm()
	p := mountValidator(t, dom.Body(form))
	fill(p, name, "Ada Lovelace")
	fill(p, email, "ada@example.com")

	if !submit(p, form) {
		t.Fatal("Expected submission to proceed")
	}
	if got := len(errorNodes(form)); got != 0 {
		t.Errorf("Expected no error nodes, got %d", got)
	}
}

func TestResubmitAfterFixClears(t *testing.T) {
	form, name, email := leadForm()
	p := mountValidator(t, dom.Body(form))
	fill(p, name, "Ada Lovelace")
	submit(p, form)

	fill(p, email, "ada@example.com")
	if !submit(p, form) {
		t.Fatal("Expected the fixed form to submit")
	}
	if email.HasClass(ErrorClass) {
		t.Error("Expected field-error class to be cleared")
	}
	if got := len(errorNodes(form)); got != 0 {
		t.Errorf("Expected error nodes to be removed, got %d", got)
	}
}

func TestRepeatFailureDoesNotDuplicate(t *testing.T) {
	form, _, email := leadForm()
	p := mountValidator(t, dom.Body(form))

	submit(p, form)
	submit(p, form)
	submit(p, form)

	if got := len(errorNodes(email.Closest(".form-group"))); got != 1 {
		t.Fatalf("Expected 1 error node after repeat submissions, got %d", got)
	}
}

func TestWhitespaceOnlyIsEmpty(t *testing.T) {
	form, name, email := leadForm()
	p := mountValidator(t, dom.Body(form))
	fill(p, name, "   ")
	fill(p, email, "\t\n")

	if submit(p, form) {
		t.Fatal("Expected whitespace-only values to be treated as empty")
	}
	if !name.HasClass(ErrorClass) || !email.HasClass(ErrorClass) {
		t.Error("Expected both fields flagged")
	}
}

func TestValidationRerunsFully(t *testing.T) {
	form, name, email := leadForm()
	p := mountValidator(t, dom.Body(form))

	submit(p, form)
	if got := len(errorNodes(form)); got != 2 {
		t.Fatalf("Expected 2 error nodes, got %d", got)
	}

	fill(p, name, "Ada Lovelace")
	if submit(p, form) {
		t.Fatal("Expected submission still blocked by the email field")
	}
	if name.HasClass(ErrorClass) {
		t.Error("Expected the fixed field to be cleared on re-run")
	}
	if !email.HasClass(ErrorClass) {
		t.Error("Expected the still-empty field to stay flagged")
	}
	if got := len(errorNodes(form)); got != 1 {
		t.Errorf("Expected 1 error node after partial fix, got %d", got)
	}
}

func TestTextareaContentCounts(t *testing.T) {
	notes := dom.Textarea(dom.Name("notes"), dom.Required(), "Call back Tuesday")
	form := dom.Form(dom.Data("validate", ""),
		dom.Div(dom.Class("form-group"), notes),
	)
	p := mountValidator(t, dom.Body(form))

	if !submit(p, form) {
		t.Fatal("Expected a textarea with content to pass")
	}
}

func TestServerRenderedErrorIsAdopted(t *testing.T) {
	form, _, email := leadForm()
	group := email.Closest(".form-group")
	group.AppendChild(dom.Span(dom.Class(MessageClass), "Please enter a valid email."))
	p := mountValidator(t, dom.Body(form))

	submit(p, form)
	errs := errorNodes(group)
	if len(errs) != 1 {
		t.Fatalf("Expected the existing error node to be reused, got %d nodes", len(errs))
	}
	if got := errs[0].TextContent(); got != DefaultMessage {
		t.Errorf("error text = %q, want %q", got, DefaultMessage)
	}
}

func TestGroupLessFormUsesParent(t *testing.T) {
	name := dom.Input(dom.Type("text"), dom.Name("name"), dom.Required())
	email := dom.Input(dom.Type("email"), dom.Name("email"), dom.Required())
	form := dom.Form(dom.Data("validate", ""), name, email)
	p := mountValidator(t, dom.Body(form))

	submit(p, form)
	if got := len(errorNodes(form)); got != 2 {
		t.Fatalf("Expected one error node per field, got %d", got)
	}
}

func TestWithMessage(t *testing.T) {
	form, _, email := leadForm()
	p := mountValidator(t, dom.Body(form), WithMessage("Required."))

	submit(p, form)
	errs := errorNodes(email.Closest(".form-group"))
	if len(errs) != 1 || errs[0].TextContent() != "Required." {
		t.Fatalf("Expected the configured message, got %v", errs)
	}
}

func TestOnInvalidHook(t *testing.T) {
	var gotForm *dom.Node
	gotFields := 0
	form, _, _ := leadForm()
	p := mountValidator(t, dom.Body(form), WithOnInvalid(func(f *dom.Node, n int) {
		gotForm, gotFields = f, n
	}))

	submit(p, form)
	if gotForm != form {
		t.Error("Expected the hook to receive the form")
	}
	if gotFields != 2 {
		t.Errorf("hook fields = %d, want 2", gotFields)
	}
}
