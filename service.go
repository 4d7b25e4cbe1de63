package logs

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Service is a write-through logger. The zero value is ready to use: minimum
// level Trace, output to standard error, no mirror mute, no named mutex.
// Initialize applies Config on top of those defaults.
type Service struct {
	// Config is applied by Initialize. Nil means DefaultConfig.
	Config *Config

	// Identity resolves the default owner. Nil means CurrentUser.
	Identity IdentityFunc
	// Clock returns the local wall-clock time. Nil means time.Now.
	Clock func() time.Time
	// Stderr and Stdout are the standard streams. Nil means os.Stderr / os.Stdout.
	Stderr io.Writer
	Stdout io.Writer
	// Backend provides named mutexes. Nil means FileLockBackend.
	Backend MutexBackend
	// Diagnostics receives the service's own lifecycle and failure events.
	// Nil discards them.
	Diagnostics *zerolog.Logger

	minLevel atomic.Int32
	profile  atomic.Int32
	mute     atomic.Bool
	target   atomic.Pointer[sink]

	// mu guards the named mutex and the owned output file. Writers hold it
	// shared for the whole guarded write.
	mu       sync.RWMutex
	sem      Semaphore
	semName  string
	semOwned bool
	outFile  *os.File
}

// sink wraps an io.Writer so it can be stored atomically.
type sink struct {
	w io.Writer
}

var pid = os.Getpid()

// NewService creates a Service from cfg (nil means DefaultConfig) and
// initializes it.
func NewService(cfg *Config) (*Service, error) {
	s := &Service{Config: cfg}
	if err := s.Initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Initialize applies s.Config. It enables the named mutex and opens the output
// file when configured. Calling it again re-applies the config. On error the
// service keeps its previous settings and holds nothing new.
func (s *Service) Initialize() error {
	const op errors.Op = "logs.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	cfg := DefaultConfig()
	if s.Config != nil {
		cfg = *s.Config
	}
	if err := validateConfig(&cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	level := LevelTrace
	if cfg.Level != emptyString {
		l, err := ParseLevel(cfg.Level)
		if err != nil {
			return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
		}
		level = l
	}
	profile, err := ParseProfile(cfg.Profile)
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	if cfg.SemaphoreDir != emptyString && s.Backend == nil {
		s.Backend = FileLockBackend{Dir: cfg.SemaphoreDir}
	}

	enabled := false
	if cfg.SemaphoreName != emptyString {
		s.mu.RLock()
		active := s.sem != nil && s.semOwned && s.semName == cfg.SemaphoreName
		s.mu.RUnlock()
		if !active {
			if err = s.EnableMutex(cfg.SemaphoreName); err != nil {
				return err
			}
			enabled = true
		}
	}

	if cfg.OutputFile != emptyString {
		if err = s.openOutputFile(cfg.OutputFile); err != nil {
			if enabled {
				_ = s.DisableMutex(cfg.SemaphoreName)
			}
			return errors.New(op).Err(err).Msg(errMsgOutputFile)
		}
	}

	s.SetMinLevel(level)
	s.SetProfile(profile)
	s.Mute(cfg.MuteStdStreams)

	return nil
}

func (s *Service) openOutputFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}

	s.mu.Lock()
	prev := s.outFile
	s.outFile = f
	s.target.Store(&sink{w: f})
	s.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	s.diag().Debug().Str("path", path).Msg("log output file opened")
	return nil
}

// Close releases the named mutex (unlinking it when this service created it)
// and closes an output file opened from Config. It's safe to call Close
// multiple times.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	if s.sem != nil {
		if s.semOwned {
			firstErr = s.disableMutexLocked("logs.Service.Close", s.semName)
		} else {
			firstErr = s.detachMutexLocked("logs.Service.Close")
		}
	}

	if s.outFile != nil {
		if cur := s.target.Load(); cur != nil && cur.w == io.Writer(s.outFile) {
			s.target.Store(nil)
		}
		if err := s.outFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.outFile = nil
	}

	return firstErr
}

// SetMinLevel sets the minimum level written. Calls below it are no-ops.
func (s *Service) SetMinLevel(level Level) {
	s.minLevel.Store(int32(level))
}

// MinLevel returns the current minimum level.
func (s *Service) MinLevel() Level {
	return Level(s.minLevel.Load())
}

// SetProfile selects the level labels.
func (s *Service) SetProfile(p Profile) {
	s.profile.Store(int32(p))
}

// Profile returns the current level label profile.
func (s *Service) Profile() Profile {
	return Profile(s.profile.Load())
}

// SetOutput redirects the primary output. A nil writer resets it to
// standard error.
func (s *Service) SetOutput(w io.Writer) {
	if w == nil {
		s.target.Store(nil)
		return
	}
	s.target.Store(&sink{w: w})
}

// SetOutputDefault resets the primary output to standard error.
func (s *Service) SetOutputDefault() {
	s.SetOutput(nil)
}

// Output returns the configured primary output, or nil when writing to
// standard error by default.
func (s *Service) Output() io.Writer {
	if t := s.target.Load(); t != nil {
		return t.w
	}
	return nil
}

// Mute suppresses (true) or restores (false) the standard error mirror that
// accompanies writes to a non-standard output.
func (s *Service) Mute(mute bool) {
	s.mute.Store(mute)
}

// Muted reports whether the standard error mirror is suppressed.
func (s *Service) Muted() bool {
	return s.mute.Load()
}

func (s *Service) stderr() io.Writer {
	if s.Stderr != nil {
		return s.Stderr
	}
	return os.Stderr
}

func (s *Service) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *Service) backend() MutexBackend {
	if s.Backend != nil {
		return s.Backend
	}
	return FileLockBackend{}
}

func (s *Service) diag() *zerolog.Logger {
	if s.Diagnostics != nil {
		return s.Diagnostics
	}
	nop := zerolog.Nop()
	return &nop
}
