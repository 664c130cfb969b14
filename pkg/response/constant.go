package response

const (
	// DateTimeFormat is the wire format for DateTime fields.
	DateTimeFormat = "2006-01-02 15:04:05"

	// CodeSuccess is the error_code for successful responses.
	CodeSuccess = 0
	// CodeInternal is the error_code for unmapped internal errors.
	CodeInternal = 500
	// CodeUnauthorized is the error_code for authentication failures.
	CodeUnauthorized = 401
)
