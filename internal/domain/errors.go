package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// FieldErrors maps a form field to the messages reported for it.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

func (f FieldErrors) Empty() bool { return len(f) == 0 }
