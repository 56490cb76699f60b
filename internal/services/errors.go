package services

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrNoQuestions  = errors.New("no questions available")
	ErrTxConflict   = errors.New("transaction conflict, retries exhausted")
)

// ValidationError 携带可直接返回给前端的提示，errors.Is 时等同 ErrInvalidInput
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
