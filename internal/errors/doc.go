// Package errors provides structured, actionable error messages for
// the glint CLI.
//
// Each error carries a code, a category, a plain-language message and
// an optional fix suggestion, and formats itself for terminal display.
//
// # Error Categories
//
// Errors are organized into categories:
//   - config: glint.json problems (missing file, invalid JSON, bad values)
//   - page: page registration problems (unknown path)
//   - server: server lifecycle problems (failed to start)
//   - render: page build problems during static rendering
//
// # Error Codes
//
// Each error has a unique code (e.g., "E100") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E100").
//	    WithDetail("No glint.json found in /srv/crm").
//	    WithSuggestion("Run 'glint init' or create glint.json manually")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E100: Configuration file not found
//	//
//	//   No glint.json found in /srv/crm
//	//
//	//   Hint: Run 'glint init' or create glint.json manually
//	//
//	//   Learn more: https://glint-go.dev/docs/errors/E100
package errors
