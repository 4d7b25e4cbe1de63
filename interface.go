package logs

// Logger is the printf-style logging surface. An empty or blank owner is
// replaced by the current OS user name.
type Logger interface {
	Log(level Level, owner, format string, args ...any)
	Trace(owner, format string, args ...any)
	Debug(owner, format string, args ...any)
	Info(owner, format string, args ...any)
	Warn(owner, format string, args ...any)
	Error(owner, format string, args ...any)
	// Fatal writes at LevelFatal. It does not exit or panic.
	Fatal(owner, format string, args ...any)
}

var _ Logger = (*Service)(nil)
