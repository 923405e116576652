package util

import (
	"errors"
	"fmt"
	"sort"
)

// CacheError is a failure of an operation on one cache.
type CacheError struct {
	Cache string
	Err   error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s: %v", e.Cache, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// Errors collects the failures of an operation run over several caches.
type Errors []*CacheError

func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	if len(es) == 1 {
		return es[0].Error()
	}
	return fmt.Sprintf("multiple (%d) errors: %s", len(es), es[0].Error())
}

// Sorted returns the errors ordered by cache name.
func (es Errors) Sorted() Errors {
	out := append(Errors(nil), es...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cache < out[j].Cache })
	return out
}

// ErrOrNil returns nil for an empty collection so it can be returned as an error.
func (es Errors) ErrOrNil() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

// AsErrors tries to transform err to Errors and return it with true.
// If it is not possible nil and false is returned.
func AsErrors(err error) (Errors, bool) {
	t := new(Errors)
	if errors.As(err, t) {
		return *t, true
	}
	return nil, false
}
