package logs

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/valyala/bytebufferpool"
)

// Log writes one line at level for owner. It never fails visibly: calls below
// the minimum level are dropped, and write errors go to Diagnostics only.
// With a named mutex enabled, Log blocks until the mutex is acquired.
func (s *Service) Log(level Level, owner, format string, args ...any) {
	if s == nil || !level.Valid() || level < s.MinLevel() {
		return
	}
	owner = s.resolveOwner(owner)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sem != nil {
		if err := s.sem.Acquire(); err != nil {
			withErrorChain(s.diag().Error(), err).Str("name", s.semName).Msg("named mutex acquire failed")
		} else {
			defer s.release()
		}
	}

	profile := s.Profile()
	for _, w := range s.writers() {
		s.emit(w, level, profile, owner, format, args)
	}
}

// Trace writes at LevelTrace.
func (s *Service) Trace(owner, format string, args ...any) {
	s.Log(LevelTrace, owner, format, args...)
}

// Debug writes at LevelDebug.
func (s *Service) Debug(owner, format string, args ...any) {
	s.Log(LevelDebug, owner, format, args...)
}

// Info writes at LevelInfo.
func (s *Service) Info(owner, format string, args ...any) {
	s.Log(LevelInfo, owner, format, args...)
}

// Warn writes at LevelWarning.
func (s *Service) Warn(owner, format string, args ...any) {
	s.Log(LevelWarning, owner, format, args...)
}

// Error writes at LevelError.
func (s *Service) Error(owner, format string, args ...any) {
	s.Log(LevelError, owner, format, args...)
}

// Fatal writes at LevelFatal. Unlike most loggers it does not exit.
func (s *Service) Fatal(owner, format string, args ...any) {
	s.Log(LevelFatal, owner, format, args...)
}

func (s *Service) resolveOwner(owner string) string {
	if isBlank(owner) {
		return defaultOwner(s.Identity)
	}
	return owner
}

func (s *Service) release() {
	if err := s.sem.Release(); err != nil {
		withErrorChain(s.diag().Error(), err).Str("name", s.semName).Msg("named mutex release failed")
	}
}

// emit renders one line with a fresh timestamp and writes it with a single
// Write call.
func (s *Service) emit(w io.Writer, level Level, profile Profile, owner, format string, args []any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendLine(buf, s.now(), level.Label(profile), owner, format, args)
	if _, err := w.Write(buf.B); err != nil {
		withErrorChain(s.diag().Error(), err).
			Str("level", level.String()).
			Str("owner", owner).
			Msg("log write failed")
	}
}

// appendLine renders
//
//	[DD-MM-YYYY HH:MM:SS] | [LABEL] | [owner (pid)] | message\n
func appendLine(buf *bytebufferpool.ByteBuffer, ts time.Time, label, owner, format string, args []any) {
	buf.B = append(buf.B, '[')
	buf.B = ts.AppendFormat(buf.B, timestampLayout)
	buf.B = append(buf.B, ']')
	buf.B = append(buf.B, fieldSeparator...)
	buf.B = append(buf.B, '[')
	buf.B = append(buf.B, label...)
	buf.B = append(buf.B, ']')
	buf.B = append(buf.B, fieldSeparator...)
	buf.B = append(buf.B, '[')
	buf.B = append(buf.B, owner...)
	buf.B = append(buf.B, " ("...)
	buf.B = strconv.AppendInt(buf.B, int64(pid), 10)
	buf.B = append(buf.B, ")]"...)
	buf.B = append(buf.B, fieldSeparator...)
	_, _ = fmt.Fprintf(buf, format, args...)
	buf.B = append(buf.B, '\n')
}
