package logs

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// buildErrorChain walks an error's cause chain and returns:
//   - chain: outermost -> innermost error messages
//   - ops: operation identifiers for DetailedError links ("" if not available)
//   - root: the innermost error message
//   - rootOp: the innermost operation identifier if available
//
// DetailedError.Cause() is preferred over stdlib errors.Unwrap. Depth and
// repeated messages are bounded to avoid cycles.
func buildErrorChain(err error) (chain []string, ops []string, root string, rootOp string) {
	const maxDepth = 50
	seen := map[string]bool{}

	for visited := 0; err != nil && visited < maxDepth; visited++ {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, dErr.Error())
			ops = append(ops, string(dErr.Op()))
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		ops = append(ops, emptyString)
		err = stderrs.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	if len(ops) > 0 {
		rootOp = ops[len(ops)-1]
	}
	return
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}

// withErrorChain attaches err and its cause chain to a diagnostics event.
func withErrorChain(e *zerolog.Event, err error) *zerolog.Event {
	if e == nil || err == nil {
		return e
	}
	e = e.Err(err)
	chain, ops, root, rootOp := buildErrorChain(err)
	if len(chain) == 0 {
		return e
	}
	e = e.Strs("error_chain", chain).
		Str("error_root", root).
		Str("error_history", joinChain(chain)).
		Strs("error_ops", ops)
	if rootOp != emptyString {
		e = e.Str("error_root_op", rootOp)
	}
	return e
}
