package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		DocURL:   "https://glint-go.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Configuration file is not valid JSON",
		DocURL:   "https://glint-go.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		DocURL:   "https://glint-go.dev/docs/errors/E102",
	},

	// ============================================
	// Page Errors (E200-E219)
	// ============================================

	"E200": {
		Category: CategoryPage,
		Message:  "Page not registered",
		DocURL:   "https://glint-go.dev/docs/errors/E200",
	},

	// ============================================
	// Server Errors (E220-E239)
	// ============================================

	"E220": {
		Category: CategoryServer,
		Message:  "Server failed to start",
		DocURL:   "https://glint-go.dev/docs/errors/E220",
	},

	// ============================================
	// Render Errors (E240-E259)
	// ============================================

	"E240": {
		Category: CategoryRender,
		Message:  "Page build failed",
		DocURL:   "https://glint-go.dev/docs/errors/E240",
	},
}
