package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDefault(t *testing.T) (*Service, *threadSafeBuffer) {
	t.Helper()
	prev := Default()
	s, stderr := newTestService(t)
	SetDefault(s)
	t.Cleanup(func() { SetDefault(prev) })
	return s, stderr
}

func TestDefault_IsUsable(t *testing.T) {
	require.NotNil(t, Default())
	SetDefault(nil)
	require.NotNil(t, Default())
}

func TestDefault_PackageFunctions(t *testing.T) {
	s, stderr := useDefault(t)

	Info("App", "value=%d", 42)
	assert.Equal(t, expectedLine("  INFO   ", "App", "value=42"), stderr.String())

	SetMinLevel(LevelError)
	assert.Equal(t, LevelError, s.MinLevel())
	Trace("App", "t")
	Debug("App", "d")
	Warn("App", "w")
	Error("App", "e")
	Fatal("App", "f")
	Log(LevelFatal, "App", "l")
	assert.Len(t, stderr.Lines(), 4)

	var out threadSafeBuffer
	SetOutput(&out)
	Mute(true)
	Error("App", "redirected")
	assert.Len(t, out.Lines(), 1)
	assert.Len(t, stderr.Lines(), 4)

	SetOutputDefault()
	assert.Nil(t, s.Output())
}

func TestDefault_MutexFunctions(t *testing.T) {
	useDefault(t)

	require.NoError(t, EnableMutex("/default"))
	Info("App", "guarded")
	require.NoError(t, DisableMutex("/default"))

	err := DisableMutex("/default")
	require.Error(t, err)
	assert.Equal(t, ErrNoMutex, ErrorKind(err))
}
