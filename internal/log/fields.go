package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldURL        = "url"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldSuccess    = "success"
	FieldError      = "error"
	FieldErrorType  = "error_type"
	FieldOperation  = "operation"
	FieldResource   = "resource"
	FieldID         = "id"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldRoute      = "route"
	FieldTarget     = "target"
	FieldState      = "state"
	FieldSink       = "sink"
	FieldRef        = "ref"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentAPI        = "api"
	ComponentSession    = "session"
	ComponentGuard      = "guard"
	ComponentStore      = "store"
	ComponentStorage    = "storage"
	ComponentAMQP       = "amqp"
	ComponentExport     = "export"
	ComponentCollection = "collection"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpPay      = "pay"
	OpRefresh  = "refresh"
	OpLogin    = "login"
	OpLogout   = "logout"
	OpExport   = "export"
	OpPublish  = "publish"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeDatabase      = "database_error"
	ErrorTypeNetwork       = "network_error"
	ErrorTypeAuth          = "auth_error"
	ErrorTypeAPI           = "api_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

func (f LogFields) WithRequestID(requestID string) LogFields {
	f[FieldRequestID] = requestID
	return f
}

func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithErrorType(t string) LogFields {
	f[FieldErrorType] = t
	return f
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithResource adds the resource name and, when known, its id
func (f LogFields) WithResource(resource string, id int64) LogFields {
	f[FieldResource] = resource
	if id != 0 {
		f[FieldID] = id
	}
	return f
}

func (f LogFields) WithRequest(method, url string) LogFields {
	f[FieldMethod] = method
	f[FieldURL] = url
	return f
}

func (f LogFields) WithResponse(statusCode int, durationMs int64) LogFields {
	f[FieldStatusCode] = statusCode
	f[FieldDuration] = durationMs
	f[FieldSuccess] = statusCode >= 200 && statusCode < 300
	return f
}

// ToSlice converts LogFields to a slice for slog. The component key is
// left out because Logger adds its own.
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		if k == FieldComponent {
			continue
		}
		slice = append(slice, k, v)
	}
	return slice
}
