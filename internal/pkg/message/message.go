package message

const (
	InvalidInput     = "Invalid input."
	UnknownField     = "Unknown field in payload."
	PayloadTooLarge  = "Payload too large."
	InternalError    = "An unexpected error occurred."
	RequestTimeout   = "Request cancelled or timeout."
	TooManyRequests  = "Too many requests. Please try again later."
	EnvErrFmt        = "environment variable is not set: %s"
	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
