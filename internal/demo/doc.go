// Package demo is the dashboard application that ships with the glint
// CLI. It is a small CRM/HRM admin: a sidebar of sections, a topbar
// with search and dropdown menus, sortable record tables, validated
// forms, and a revenue chart. Every page is a deterministic PageFunc,
// so `glint render` produces stable output and tests can drive the
// pages headlessly.
package demo
