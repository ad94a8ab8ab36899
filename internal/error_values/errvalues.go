package errorvalues

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrValidation        = errors.New("validation error")
	ErrBlockNotFound     = errors.New("schedule block not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrTransientStore    = errors.New("store unavailable")
	ErrPartialFailure    = errors.New("operation partially applied")
	ErrResetNotConfirmed = errors.New("reset requires explicit confirmation")
)

// StoreError wraps a failure returned by the remote store.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return e.Op + " error: " + e.Err.Error()
}

func (e *StoreError) Unwrap() []error {
	return []error{ErrTransientStore, e.Err}
}

type ResetStep string

const (
	ResetStreaks    ResetStep = "streaks"
	ResetBlocks     ResetStep = "schedule_blocks"
	ResetActivities ResetStep = "activities"
)

// ResetError lists the reset sub-operations that failed. Steps not present succeeded.
type ResetError struct {
	Steps map[ResetStep]error
}

func (e *ResetError) Failed(step ResetStep) bool {
	_, ok := e.Steps[step]
	return ok
}

func (e *ResetError) Error() string {
	names := make([]string, 0, len(e.Steps))
	for step, err := range e.Steps {
		names = append(names, string(step)+": "+err.Error())
	}
	sort.Strings(names)
	return "reset partially failed: " + strings.Join(names, "; ")
}

func (e *ResetError) Unwrap() []error {
	errs := []error{ErrPartialFailure}
	for _, err := range e.Steps {
		errs = append(errs, err)
	}
	return errs
}
