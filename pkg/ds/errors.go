package ds

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInsufficientCapacity also matches ErrInvalidArgument.
	ErrInsufficientCapacity = errors.WithMessage(ErrInvalidArgument, "insufficient capacity")
	ErrOutOfRange           = errors.New("index out of range")
	ErrInconsistent         = errors.New("index and ordered storage disagree")
	ErrClosed               = errors.New("set is closed")
)

// InconsistencyError is raised, as a panic, when the hash index and the
// ordered storage of a set no longer describe the same elements. It is never
// returned as an ordinary error: a set in this state cannot be trusted.
type InconsistencyError struct {
	Op         string
	IndexLen   int
	OrderedLen int
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("ds: %s: %v (index=%d, ordered=%d)", e.Op, ErrInconsistent, e.IndexLen, e.OrderedLen)
}

func (e *InconsistencyError) Unwrap() error {
	return ErrInconsistent
}

func inconsistent(log *logrus.Entry, op string, indexLen, orderedLen int) *InconsistencyError {
	err := &InconsistencyError{Op: op, IndexLen: indexLen, OrderedLen: orderedLen}
	log.WithField("op", op).Error(err)
	return err
}
