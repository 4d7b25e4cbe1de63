package logs

import (
	"io"
	"os"
	"reflect"
)

// writers returns the streams a passing call writes to, in order. A
// redirected output is preceded by a standard error mirror unless muted or
// the output is itself a standard stream.
func (s *Service) writers() []io.Writer {
	stderr := s.stderr()
	primary := s.Output()
	if primary == nil {
		return []io.Writer{stderr}
	}
	if s.mute.Load() || s.isStdStream(primary) {
		return []io.Writer{primary}
	}
	return []io.Writer{stderr, primary}
}

func (s *Service) isStdStream(w io.Writer) bool {
	return sameWriter(w, s.stderr()) ||
		sameWriter(w, s.stdout()) ||
		sameWriter(w, os.Stderr) ||
		sameWriter(w, os.Stdout)
}

// sameWriter compares writers without panicking on uncomparable dynamic types.
func sameWriter(a, b io.Writer) bool {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
