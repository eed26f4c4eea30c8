package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E001-E099)
	// ============================================

	"E001": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Detail:     "No restlight.json was found in the given directory.",
		Suggestion: "Run with --config pointing at a restlight.json, or omit it to use defaults.",
	},
	"E002": {
		Category:   CategoryConfig,
		Message:    "Configuration file is not valid JSON",
		Detail:     "restlight.json exists but could not be parsed.",
		Suggestion: "Check the file for trailing commas or unquoted keys.",
	},
	"E003": {
		Category:   CategoryConfig,
		Message:    "Invalid port",
		Detail:     "The configured port must be between 1 and 65535.",
		Suggestion: "Set \"port\" to a value in range, e.g. 3000.",
	},

	// ============================================
	// Startup Errors (E100-E199)
	// ============================================

	"E100": {
		Category:   CategoryStartup,
		Message:    "Address already in use",
		Detail:     "Another process is listening on the configured host and port.",
		Suggestion: "Stop the other process or change the configured port.",
	},
}
