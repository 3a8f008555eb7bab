package pgtrace

import "github.com/rs/zerolog"

// zerologLogger adapts a zerolog.Logger to Logger, the same shape as the
// teacher's log/zerologadapter.Logger.
type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger wraps logger with the "module" field set to "pgwire".
func NewZerologLogger(logger zerolog.Logger) Logger {
	return &zerologLogger{logger: logger.With().Str("module", "pgwire").Logger()}
}

func (l *zerologLogger) Log(level Level, msg string, data map[string]any) {
	var zlevel zerolog.Level
	switch level {
	case LevelNone:
		zlevel = zerolog.NoLevel
	case LevelError:
		zlevel = zerolog.ErrorLevel
	case LevelWarn:
		zlevel = zerolog.WarnLevel
	case LevelInfo:
		zlevel = zerolog.InfoLevel
	case LevelDebug:
		zlevel = zerolog.DebugLevel
	case LevelTrace:
		zlevel = zerolog.TraceLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	evt := l.logger.With().Fields(data).Logger()
	evt.WithLevel(zlevel).Msg(msg)
}
