// Package errs is a thin facade over cockroachdb/errors so callers get
// nil-safe wrapping and sentinel marking without importing it everywhere.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the original stack. Nil stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark ties err to a sentinel so errors.Is matches the sentinel.
// A nil err collapses to the sentinel itself.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}
