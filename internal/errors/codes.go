package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidBackend  ErrorCode = "invalid_backend"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Command errors
	ErrUnknownCategory ErrorCode = "unknown_category"
	ErrInvalidValue    ErrorCode = "invalid_value"

	// Operation errors
	ErrTimeout ErrorCode = "operation_timeout"

	// Journal errors
	ErrInitJournal   ErrorCode = "init_journal_failed"
	ErrRecordJournal ErrorCode = "record_journal_failed"
	ErrReportJournal ErrorCode = "report_journal_failed"
	ErrCloseJournal  ErrorCode = "close_journal_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:        "Internal error occurred",
	ErrInvalidArgument: "Invalid argument provided",
	ErrInvalidConfig:   "Invalid configuration",
	ErrBindFlags:       "Failed to bind flags",
	ErrReadConfig:      "Failed to read configuration",
	ErrInvalidBackend:  "Unknown error code backend",
	ErrInvalidLogLevel: "Invalid log level",
	ErrUnknownCategory: "Unknown error category",
	ErrInvalidValue:    "Invalid error code value",
	ErrTimeout:         "Operation timed out",
	ErrInitJournal:     "Failed to initialize journal",
	ErrRecordJournal:   "Failed to record error code",
	ErrReportJournal:   "Failed to read journal",
	ErrCloseJournal:    "Failed to close journal",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
