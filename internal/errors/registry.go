package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Markup Arguments (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryInvalidArgument,
		Message:  "Tag name is required",
		Detail:   "An element builder cannot be created without a tag name.",
	},
	"E002": {
		Category: CategoryInvalidArgument,
		Message:  "Attribute name is required",
		Detail:   "Attributes are merged by name; an empty name cannot be stored.",
	},
	"E003": {
		Category: CategoryInvalidArgument,
		Message:  "Id replacement is required",
		Detail:   "Sanitizing an id needs a replacement for characters that are not valid in HTML ids.",
	},
	"E004": {
		Category: CategoryInvalidArgument,
		Message:  "Unsupported attribute value",
		Detail:   "Attribute values must be strings, booleans, integers or floats.",
	},
	"E010": {
		Category: CategoryInvalidArgument,
		Message:  "Field name is required",
		Detail:   "ListBox and DropDown need a non-empty form field name.",
	},
	"E011": {
		Category: CategoryInvalidArgument,
		Message:  "Invalid render request",
		Detail:   "The render request body could not be decoded.",
	},
	"E012": {
		Category: CategoryInvalidArgument,
		Message:  "Unknown select kind",
		Detail:   "The select kind must be either \"dropdown\" or \"listbox\".",
	},

	// ============================================
	// Config Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The formselect.json file contains invalid configuration.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No formselect.json was found at the given location.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The port number must be between 0 and 65535.",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "The log level must be one of debug, info, warn or error.",
	},

	// ============================================
	// Transport Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryTransport,
		Message:  "WebSocket upgrade failed",
		Detail:   "The live preview connection could not be established.",
	},
	"E061": {
		Category: CategoryTransport,
		Message:  "Server failed",
		Detail:   "The HTTP server stopped with an error.",
	},

	// ============================================
	// Publish Errors (E080-E099)
	// ============================================

	"E080": {
		Category: CategoryPublish,
		Message:  "Invalid destination",
		Detail:   "Destinations are either a file path or an s3://bucket/key URL.",
	},
	"E081": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "The rendered fragment could not be written to its destination.",
	},
	"E082": {
		Category: CategoryPublish,
		Message:  "No store configured",
		Detail:   "A publish key was given but the server has no publish store.",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Cannot read request file",
		Detail:   "The render request file could not be read.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
