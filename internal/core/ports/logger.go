package ports

// Logger is the abstraction for application logging.
// Errors are reported through the Error method and never escalated further;
// the whole tool degrades to log output on failure.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a low-importance trace message.
	Debug(msg string)

	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error with its cause chain.
	Error(err error)
}
