package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMatcherArity    = errors.New("capture group count does not match field count")
	ErrInvalidPattern  = errors.New("invalid matcher pattern")
	ErrInputNotFound   = errors.New("input file not found")
	ErrOutputExists    = errors.New("output file exists")
	ErrMalformedNumber = errors.New("malformed numeric field")
	ErrFilterInvalid   = errors.New("invalid filter expression")
	ErrConfigInvalid   = errors.New("invalid configuration")
	ErrNotImplemented  = errors.New("not implemented")
)

func NewMatcherArityError(pattern string, groups, fields int) error {
	return fmt.Errorf("%w: pattern=%q groups=%d fields=%d", ErrMatcherArity, pattern, groups, fields)
}

func NewPatternError(pattern string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
}

func NewInputError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, reason)
}

func NewOutputExistsError(path string) error {
	return fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, path)
}

func NewNumberError(field string, value string, err error) error {
	return fmt.Errorf("%w: field=%s value=%q: %v", ErrMalformedNumber, field, value, err)
}

func NewFilterError(expression string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrFilterInvalid, expression, err)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}
