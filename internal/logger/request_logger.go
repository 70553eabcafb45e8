package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

// RequestLogger forwards ggapi and resty log lines to a zerolog logger.
type RequestLogger struct {
	log zerolog.Logger
}

func NewRequestLogger(log zerolog.Logger) *RequestLogger {
	return &RequestLogger{log: log.With().Str("component", "ggapi").Logger()}
}

func (l *RequestLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(trim(format), v...)
}

func (l *RequestLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(trim(format), v...)
}

func (l *RequestLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(trim(format), v...)
}

// resty terminates its log formats with a newline.
func trim(format string) string {
	return strings.TrimRight(format, "\n")
}
