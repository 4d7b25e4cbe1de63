package logs

import (
	"github.com/Station-Manager/errors"
)

// EnableMutex creates the named mutex and holds it around every subsequent
// write. It fails with ErrMutexCreate if the name already exists, if another
// mutex is active on this service, or if the platform call fails. The caller
// must call DisableMutex (or Close) to remove the name.
func (s *Service) EnableMutex(name string) error {
	const op errors.Op = "logs.Service.EnableMutex"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sem != nil {
		return mutexError(op, ErrMutexCreate, name, nil, errMsgMutexActive)
	}
	sem, err := s.backend().Create(name)
	if err != nil {
		return mutexError(op, ErrMutexCreate, name, err, errMsgMutexCreate)
	}
	s.sem, s.semName, s.semOwned = sem, name, true

	s.diag().Debug().Str("name", name).Msg("named mutex enabled")
	return nil
}

// AttachMutex opens a named mutex created elsewhere, typically by another
// process. Failures are reported as ErrMutexCreate.
func (s *Service) AttachMutex(name string) error {
	const op errors.Op = "logs.Service.AttachMutex"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sem != nil {
		return mutexError(op, ErrMutexCreate, name, nil, errMsgMutexActive)
	}
	sem, err := s.backend().Open(name)
	if err != nil {
		return mutexError(op, ErrMutexCreate, name, err, errMsgMutexOpen)
	}
	s.sem, s.semName, s.semOwned = sem, name, false

	s.diag().Debug().Str("name", name).Msg("named mutex attached")
	return nil
}

// DisableMutex closes the active mutex and unlinks name. It returns
// ErrNoMutex when no mutex is active, ErrMutexClose when closing the handle
// fails, and ErrMutexUnlink when removing the name fails. The handle is
// released in every case except ErrNoMutex.
func (s *Service) DisableMutex(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disableMutexLocked("logs.Service.DisableMutex", name)
}

// DetachMutex closes the active mutex without unlinking its name.
func (s *Service) DetachMutex() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detachMutexLocked("logs.Service.DetachMutex")
}

// MutexName returns the name of the active mutex, or "" if none.
func (s *Service) MutexName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sem == nil {
		return emptyString
	}
	return s.semName
}

func (s *Service) disableMutexLocked(op errors.Op, name string) error {
	if err := s.detachMutexLocked(op); err != nil {
		return err
	}
	if err := s.backend().Unlink(name); err != nil {
		s.reportMutexFailure(name, err)
		return mutexError(op, ErrMutexUnlink, name, err, errMsgMutexUnlink)
	}
	s.diag().Debug().Str("name", name).Msg("named mutex disabled")
	return nil
}

func (s *Service) detachMutexLocked(op errors.Op) error {
	if s.sem == nil {
		return mutexError(op, ErrNoMutex, emptyString, nil, errMsgNoMutex)
	}
	sem, name := s.sem, s.semName
	s.sem, s.semName, s.semOwned = nil, emptyString, false

	if err := sem.Close(); err != nil {
		s.reportMutexFailure(name, err)
		return mutexError(op, ErrMutexClose, name, err, errMsgMutexClose)
	}
	return nil
}

func (s *Service) reportMutexFailure(name string, err error) {
	withErrorChain(s.diag().Warn(), err).Str("name", name).Msg("named mutex release failed")
}
