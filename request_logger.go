package ggapi

// RequestLogger is the interface used by [Session] for logging HTTP requests,
// token refreshes and errors. It matches the logger contract of the
// underlying resty client, which receives the same implementation. Supply it
// via [WithRequestLogger].
//
// Access and refresh tokens are never passed to the logger by this package.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
