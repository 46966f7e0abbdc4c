package logger

import (
	"io"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
)

type ZeroLogger struct {
	mu            sync.RWMutex
	writer        io.Writer
	level         Level
	defaultFields Fields
	zl            zerolog.Logger
}

var _ Logger = (*ZeroLogger)(nil)

// CallerHook adds the source location of the log call to error and fatal
// events.
type CallerHook struct{}

func (h CallerHook) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	if level < zerolog.ErrorLevel {
		return
	}
	if _, file, line, ok := runtime.Caller(4); ok {
		e.Str("file", file)
		e.Int("line", line)
	}
}

// NewZeroLogger return a configured instance of ZeroLogger
func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	if defaultFields == nil {
		defaultFields = Fields{}
	}
	zeroLogger := &ZeroLogger{writer: writer, level: level, defaultFields: defaultFields}
	zeroLogger.configureLogger()
	return zeroLogger
}

func toZerologLevel(level Level) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelOff:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZeroLogger) configureLogger() {
	props := make(map[string]interface{}, len(l.defaultFields))
	for k, v := range l.defaultFields {
		props[k] = v
	}

	l.zl = zerolog.New(l.writer).
		With().Fields(props).Timestamp().Logger().
		Level(toZerologLevel(l.level)).
		Hook(CallerHook{})
}

func (l *ZeroLogger) logger() *zerolog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	zl := l.zl
	return &zl
}

// Info only logs information
func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.logger().Info().Fields(properties).Msg(message)
}

// Warn logs conditions that are unexpected but handled
func (l *ZeroLogger) Warn(message string, properties map[string]interface{}) {
	l.logger().Warn().Fields(properties).Msg(message)
}

// Error reports all error at error level
func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	l.logger().Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal write the log to output and stop the process
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.logger().Fatal().Fields(properties).Err(err).Msg(err.Error())
}

// Debug is for diagnostics that are off in production
func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.logger().Debug().Fields(properties).Msg(message)
}

func (l *ZeroLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.configureLogger()
}
