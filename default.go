package logs

import (
	"io"

	"go.uber.org/atomic"
)

var std atomic.Pointer[Service]

func init() {
	std.Store(&Service{})
}

// Default returns the process-wide Service used by the package-level functions.
func Default() *Service {
	return std.Load()
}

// SetDefault replaces the process-wide Service. A nil s is ignored.
func SetDefault(s *Service) {
	if s != nil {
		std.Store(s)
	}
}

func SetMinLevel(level Level) { Default().SetMinLevel(level) }
func SetOutput(w io.Writer) { Default().SetOutput(w) }
func SetOutputDefault() { Default().SetOutputDefault() }
func Mute(mute bool) { Default().Mute(mute) }
func EnableMutex(name string) error { return Default().EnableMutex(name) }
func DisableMutex(name string) error { return Default().DisableMutex(name) }

func Log(level Level, owner, format string, args ...any) {
	Default().Log(level, owner, format, args...)
}

func Trace(owner, format string, args ...any) { Default().Trace(owner, format, args...) }
func Debug(owner, format string, args ...any) { Default().Debug(owner, format, args...) }
func Info(owner, format string, args ...any) { Default().Info(owner, format, args...) }
func Warn(owner, format string, args ...any) { Default().Warn(owner, format, args...) }
func Error(owner, format string, args ...any) { Default().Error(owner, format, args...) }

// Fatal writes at LevelFatal on the default Service. It does not exit.
func Fatal(owner, format string, args ...any) { Default().Fatal(owner, format, args...) }
