package logs

import (
	stderrs "errors"
	"fmt"

	smerrors "github.com/Station-Manager/errors"
)

// Error kinds returned by the mutex configuration operations. Use ErrorKind
// to recover the kind from a returned error.
var (
	ErrMutexCreate = stderrs.New("mutex create error")
	ErrMutexClose  = stderrs.New("mutex close error")
	ErrMutexUnlink = stderrs.New("mutex unlink error")
	ErrNoMutex     = stderrs.New("no mutex error")
)

// MutexError records a failed named-mutex operation.
type MutexError struct {
	Kind error
	Name string
	Err  error
}

func (e *MutexError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("%v: %q: %v", e.Kind, e.Name, e.Err)
}

func (e *MutexError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ErrorKind returns the kind (ErrMutexCreate, ErrMutexClose, ErrMutexUnlink
// or ErrNoMutex) carried by err, or nil if err is not a mutex error.
func ErrorKind(err error) error {
	const maxDepth = 50
	for depth := 0; err != nil && depth < maxDepth; depth++ {
		var me *MutexError
		if stderrs.As(err, &me) {
			return me.Kind
		}
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			err = dErr.Cause()
			continue
		}
		err = stderrs.Unwrap(err)
	}
	return nil
}

func mutexError(op smerrors.Op, kind error, name string, cause error, msg string) error {
	return smerrors.New(op).Err(&MutexError{Kind: kind, Name: name, Err: cause}).Msg(msg)
}
