package demo

import (
	"strconv"
	"strings"

	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/features/charts"
	"github.com/glint-go/glint/pkg/format"
	"github.com/glint-go/glint/pkg/page"
	"github.com/glint-go/glint/pkg/server"
)

// ChartName is the slot the dashboard's revenue container declares.
const ChartName = "revenue"

// HiddenClass hides table rows filtered out by the topbar search.
const HiddenClass = "row-hidden"

var money = format.NewFormatter()

// Pages returns every dashboard page keyed by path.
func Pages() map[string]server.PageFunc {
	return map[string]server.PageFunc{
		"/":           Dashboard,
		"/leads":      LeadsPage,
		"/deals":      DealsPage,
		"/contacts":   ContactsPage,
		"/employees":  EmployeesPage,
		"/attendance": AttendancePage,
		"/payroll":    PayrollPage,
		"/settings":   SettingsPage,
	}
}

// FilterRows is the demo's search behavior: hide every table row on the
// page whose text does not contain the query, case-insensitively. An
// empty query restores all rows.
func FilterRows(input *dom.Node, value string) {
	doc := input.Document()
	if doc == nil {
		return
	}
	q := strings.ToLower(strings.TrimSpace(value))
	for _, row := range doc.FindAll("tbody tr") {
		if q == "" || strings.Contains(strings.ToLower(row.TextContent()), q) {
			row.RemoveClass(HiddenClass)
		} else {
			row.AddClass(HiddenClass)
		}
	}
}

// RevenueChart renders the dashboard chart as a bar list, one bar per
// month. A real deployment would swap in a canvas-backed renderer.
func RevenueChart() charts.Renderer {
	return charts.RenderFunc(func(container *dom.Node) error {
		bars := []any{dom.Class("chart-bars")}
		for _, m := range monthlyRevenue {
			bars = append(bars, dom.Li(dom.Class("chart-bar"),
				dom.Span(dom.Class("chart-month"), m.Month),
				dom.Span(dom.Class("chart-total"), money.Currency(m.Total, "USD")),
			))
		}
		container.AppendChild(dom.Ul(bars...))
		return nil
	})
}

var monthlyRevenue = []struct {
	Month string
	Total float64
}{
	{"Mar", 96400},
	{"Apr", 104250},
	{"May", 91800},
	{"Jun", 118600},
	{"Jul", 125300},
	{"Aug", 131950},
}

// Dashboard is the landing page: stat cards, the revenue chart and the
// most recent leads.
func Dashboard(_ page.Location) (*dom.Document, error) {
	leads := Leads()
	var pipeline float64
	fresh := 0
	for _, l := range leads {
		pipeline += l.Value
		if l.Status == "New" {
			fresh++
		}
	}
	recent := leads
	if len(recent) > 5 {
		recent = recent[:5]
	}
	return shell("Dashboard",
		flash("alert-success", "4000", "Weekly digest sent to 4 team members."),
		dom.Section(dom.Class("stat-grid"),
			statCard("Pipeline value", money.Currency(pipeline, "USD")),
			statCard("Open deals", strconv.Itoa(len(Deals()))),
			statCard("New leads", strconv.Itoa(fresh)),
			statCard("Headcount", strconv.Itoa(len(Employees()))),
		),
		card("Revenue", dom.Div(dom.Class("chart"), dom.Data("chart", ChartName))),
		card("Recent leads", leadsTable(recent)),
	), nil
}

// LeadsPage lists the full lead book and the intake form.
func LeadsPage(_ page.Location) (*dom.Document, error) {
	return shell("Leads",
		flash("alert-info", "5000", "3 leads were imported from the webform overnight."),
		card("All leads", leadsTable(Leads())),
		card("New lead", leadForm()),
	), nil
}

// DealsPage lists open opportunities.
func DealsPage(_ page.Location) (*dom.Document, error) {
	rows := make([]any, 0, len(Deals()))
	for _, d := range Deals() {
		rows = append(rows, dom.Tr(
			dom.Td(d.Company),
			dom.Td(d.Stage),
			dom.Td(money.Currency(d.Value, "USD")),
			dom.Td(money.Date(d.Closes)),
			actionsCell(),
		))
	}
	return shell("Deals",
		card("Open deals", dataTable(rows,
			sortableTh("Company"), sortableTh("Stage"), sortableTh("Value"),
			sortableTh("Closes"), dom.Th("Actions"))),
	), nil
}

// ContactsPage lists the address book.
func ContactsPage(_ page.Location) (*dom.Document, error) {
	rows := make([]any, 0, len(Contacts()))
	for _, c := range Contacts() {
		rows = append(rows, dom.Tr(
			dom.Td(c.Name),
			dom.Td(c.Company),
			dom.Td(c.Email),
			dom.Td(c.Phone),
			actionsCell(),
		))
	}
	return shell("Contacts",
		card("Address book", dataTable(rows,
			sortableTh("Name"), sortableTh("Company"), sortableTh("Email"),
			sortableTh("Phone"), dom.Th("Actions"))),
	), nil
}

// EmployeesPage lists the staff roster.
func EmployeesPage(_ page.Location) (*dom.Document, error) {
	rows := make([]any, 0, len(Employees()))
	for _, e := range Employees() {
		rows = append(rows, dom.Tr(
			dom.Td(e.Name),
			dom.Td(e.Department),
			dom.Td(e.Role),
			dom.Td(money.Currency(e.Salary, "USD")),
			dom.Td(money.Date(e.Joined)),
			actionsCell(),
		))
	}
	return shell("Employees",
		card("Staff roster", dataTable(rows,
			sortableTh("Name"), sortableTh("Department"), sortableTh("Role"),
			sortableTh("Salary"), sortableTh("Joined"), dom.Th("Actions"))),
	), nil
}

// AttendancePage lists the current week's timesheet entries.
func AttendancePage(_ page.Location) (*dom.Document, error) {
	rows := make([]any, 0, len(AttendanceLog()))
	for _, a := range AttendanceLog() {
		rows = append(rows, dom.Tr(
			dom.Td(a.Name),
			dom.Td(money.Date(a.Date)),
			dom.Td(statusBadge(a.Status)),
		))
	}
	return shell("Attendance",
		card("This week", dataTable(rows,
			sortableTh("Employee"), sortableTh("Date"), sortableTh("Status"))),
	), nil
}

// PayrollPage lists the latest payroll run.
func PayrollPage(_ page.Location) (*dom.Document, error) {
	rows := make([]any, 0, len(PayrollRun()))
	for _, p := range PayrollRun() {
		rows = append(rows, dom.Tr(
			dom.Td(p.Name),
			dom.Td(p.Month),
			dom.Td(money.Currency(p.Gross, "USD")),
			dom.Td(money.Currency(p.Net, "USD")),
		))
	}
	return shell("Payroll",
		flash("alert-warning", "6000", "July payroll closes for review on Friday."),
		card("July 2026 run", dataTable(rows,
			sortableTh("Employee"), sortableTh("Month"),
			sortableTh("Gross"), sortableTh("Net"))),
	), nil
}

// SettingsPage holds the profile form with the password reveal toggle.
func SettingsPage(_ page.Location) (*dom.Document, error) {
	form := dom.Form(dom.Class("settings-form"), dom.Data("validate", ""),
		formGroup("Display name", dom.Input(dom.Type("text"), dom.Name("display_name"), dom.Value("Jess Moreno"), dom.Required())),
		formGroup("Work email", dom.Input(dom.Type("email"), dom.Name("email"), dom.Value("jess@glint.test"), dom.Required())),
		dom.Div(dom.Class("form-group"),
			dom.Label(dom.For("password"), "New password"),
			dom.Input(dom.Type("password"), dom.ID("password"), dom.Name("password"), dom.Required()),
			dom.Button(dom.Class("password-toggle"), dom.Type("button"), "Show"),
		),
		dom.Button(dom.Type("submit"), dom.Class("btn", "btn-primary"), "Save changes"),
	)
	return shell("Settings", card("Profile", form)), nil
}

// shell wraps page content in the shared chrome: head, topbar, sidebar.
func shell(title string, content ...*dom.Node) *dom.Document {
	main := []any{dom.Class("dashboard-content")}
	for _, n := range content {
		main = append(main, n)
	}
	return dom.NewDocument(dom.Html(dom.Lang("en"),
		dom.Head(
			dom.Meta(dom.Charset("utf-8")),
			dom.Title(title+" | Glint CRM"),
			dom.StyleTag(baseCSS),
		),
		dom.Body(
			topbar(),
			dom.Div(dom.Class("dashboard-wrap"),
				sidebar(),
				dom.Main(main...),
			),
		),
	))
}

func topbar() *dom.Node {
	return dom.Header(dom.Class("topbar"),
		dom.Button(dom.Class("sidebar-toggle"), dom.Type("button"), "Menu"),
		dom.Div(dom.Class("search-box"),
			dom.Input(dom.Type("search"), dom.Placeholder("Search records")),
		),
		dom.Div(dom.Class("topbar-actions"),
			dropdownMenu("alerts", "Alerts (2)",
				menuItem("/leads", "2 leads need follow-up"),
				menuItem("/attendance", "Timesheets close Friday"),
			),
			dropdownMenu("user", "Jess Moreno",
				menuItem("/settings", "Settings"),
				menuItem("#", "Sign out"),
			),
		),
	)
}

var sections = []struct {
	Label string
	Path  string
}{
	{"Dashboard", "/"},
	{"Leads", "/leads"},
	{"Deals", "/deals"},
	{"Contacts", "/contacts"},
	{"Employees", "/employees"},
	{"Attendance", "/attendance"},
	{"Payroll", "/payroll"},
	{"Settings", "/settings"},
}

func sidebar() *dom.Node {
	nav := []any{dom.Class("sidebar-nav")}
	for _, s := range sections {
		nav = append(nav, dom.A(dom.Class("nav-link"), dom.Href(s.Path), s.Label))
	}
	return dom.Aside(dom.Class("dashboard-sidebar"),
		dom.Div(dom.Class("sidebar-brand"), "Glint CRM"),
		dom.Nav(nav...),
	)
}

func dropdownMenu(name, label string, items ...*dom.Node) *dom.Node {
	menu := []any{dom.Class("dropdown-menu")}
	for _, it := range items {
		menu = append(menu, it)
	}
	return dom.Div(dom.Class("dropdown", "dropdown-"+name),
		dom.A(dom.Class("dropdown-toggle"), dom.Href("#"), label),
		dom.Div(menu...),
	)
}

func menuItem(href, label string) *dom.Node {
	return dom.A(dom.Class("dropdown-item"), dom.Href(href), label)
}

func card(title string, body *dom.Node) *dom.Node {
	return dom.Section(dom.Class("card"),
		dom.H2(title),
		body,
	)
}

func flash(kind, delayMillis, text string) *dom.Node {
	return dom.Div(dom.Class("alert", kind), dom.Data("auto-hide", delayMillis), text)
}

func statCard(label, value string) *dom.Node {
	return dom.Div(dom.Class("stat-card"),
		dom.Span(dom.Class("stat-value"), value),
		dom.Span(dom.Class("stat-label"), label),
	)
}

func dataTable(rows []any, headers ...*dom.Node) *dom.Node {
	head := make([]any, 0, len(headers))
	for _, h := range headers {
		head = append(head, h)
	}
	return dom.Table(dom.Class("data-table"),
		dom.THead(dom.Tr(head...)),
		dom.TBody(rows...),
	)
}

func sortableTh(label string) *dom.Node {
	return dom.Th(dom.Class("sortable"), label)
}

func leadsTable(leads []Lead) *dom.Node {
	rows := make([]any, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, dom.Tr(
			dom.Td(l.Name),
			dom.Td(l.Company),
			dom.Td(l.Email),
			dom.Td(money.Currency(l.Value, "USD")),
			dom.Td(statusBadge(l.Status)),
			dom.Td(money.Date(l.Created)),
			actionsCell(),
		))
	}
	t := dataTable(rows,
		sortableTh("Name"), sortableTh("Company"), sortableTh("Email"),
		sortableTh("Value"), sortableTh("Status"), sortableTh("Created"),
		dom.Th("Actions"))
	t.AddClass("leads-table")
	return t
}

func statusBadge(status string) *dom.Node {
	return dom.Span(dom.Class("badge", "badge-"+strings.ToLower(status)), status)
}

func leadForm() *dom.Node {
	return dom.Form(dom.Class("lead-form"), dom.Data("validate", ""),
		formGroup("Name", dom.Input(dom.Type("text"), dom.Name("name"), dom.Required())),
		formGroup("Company", dom.Input(dom.Type("text"), dom.Name("company"), dom.Required())),
		formGroup("Email", dom.Input(dom.Type("email"), dom.Name("email"), dom.Required())),
		formGroup("Notes", dom.Textarea(dom.Name("notes"), dom.Placeholder("Context for the first call"))),
		dom.Button(dom.Type("submit"), dom.Class("btn", "btn-primary"), "Create lead"),
	)
}

// formGroup labels a field, using the field's name attribute as its id.
func formGroup(label string, field *dom.Node) *dom.Node {
	name := field.Attr("name")
	field.SetAttr("id", name)
	return dom.Div(dom.Class("form-group"),
		dom.Label(dom.For(name), label),
		field,
	)
}

func actionsCell() *dom.Node {
	return dom.Td(dom.Class("row-actions"),
		dom.A(dom.Href("#"), dom.Data("tooltip", "Edit record"), "Edit"),
		dom.A(dom.Href("#"), dom.Data("tooltip", "Archive record"), "Archive"),
	)
}
