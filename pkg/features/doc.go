// Package features collects the interaction behaviors a dashboard page
// can bind by CSS selector.
//
// Each subpackage implements page.Mounter for one behavior:
//
//   - sortable: click-to-sort table columns with locale collation
//   - search: debounced input relaying a query callback
//   - toast: stacked notifications with a timed lifecycle
//   - validate: required-field form guarding on submit
//   - tooltip: hover tips positioned from element geometry
//   - chrome: responsive sidebar toggling
//   - dropdown: menu toggling with outside-click dismissal
//   - navmark: current-page highlighting in nav links
//   - reveal: password visibility toggling
//   - alerts: server-rendered flash messages that auto-hide
//   - charts: named renderer slots for chart containers
//
// Features mount against a page.Page through a page.Binding; see the
// glint package for the default binding set that wires all of them.
package features
