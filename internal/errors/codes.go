package errors

// Common error codes
const (
	// System errors
	ErrInvalidArgument ErrorCode = "invalid_argument"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "invalid_configuration"
	ErrBindFlags     ErrorCode = "bind_flags_failed"
	ErrParseFlags    ErrorCode = "parse_flags_failed"
	ErrReadConfig    ErrorCode = "read_config_failed"
	ErrInvalidRange  ErrorCode = "invalid_range"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Input errors
	ErrInputClosed ErrorCode = "input_closed"
	ErrReadInput   ErrorCode = "read_input_failed"

	// Guess errors
	ErrInvalidFormat ErrorCode = "invalid_format"
	ErrOutOfRange    ErrorCode = "out_of_range"

	// Temperature errors
	ErrNumericFormat ErrorCode = "numeric_format"
	ErrUnknownUnit   ErrorCode = "unknown_unit"

	// Lifecycle errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Operation errors
	ErrCanceled ErrorCode = "operation_canceled"

	// Stats errors
	ErrWriteStats ErrorCode = "write_stats_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInvalidArgument: "Invalid argument provided",
	ErrInvalidConfig:   "Invalid configuration",
	ErrBindFlags:       "Failed to bind flags",
	ErrParseFlags:      "Failed to parse flags",
	ErrReadConfig:      "Failed to read configuration",
	ErrInvalidRange:    "Invalid number range",
	ErrInvalidLogLevel: "Invalid log level",
	ErrInputClosed:     "Input closed",
	ErrReadInput:       "Failed to read input",
	ErrInvalidFormat:   "Input is not a whole number",
	ErrOutOfRange:      "Number out of range",
	ErrNumericFormat:   "Invalid temperature value",
	ErrUnknownUnit:     "Unknown temperature unit",
	ErrInitFailed:      "Initialization failed",
	ErrShutdownFailed:  "Shutdown failed",
	ErrCanceled:        "Operation canceled",
	ErrWriteStats:      "Failed to write stats",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
