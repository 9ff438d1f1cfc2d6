package infra

import (
	"errors"

	"venue-booking-api/internal/pkg/errs"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindConflict     RepositoryErrorKind = "CONFLICT"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindStaleWrite   RepositoryErrorKind = "STALE_WRITE"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
)

type RepositoryError struct {
	Kind   RepositoryErrorKind
	Detail string // constraint violation detail passed through for diagnostics
	msg    string
	err    error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

func NewRepoErrDetail(kind RepositoryErrorKind, msg, detail string) error {
	return RepositoryError{Kind: kind, msg: msg, Detail: detail}
}

func WrapRepoErr(kind RepositoryErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ErrDetail extracts the diagnostic detail if err is a RepositoryError.
func ErrDetail(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Detail
	}
	return ""
}
