package commands

import (
	"fmt"

	"fsops/internal/domain"
	fserrors "fsops/internal/errors"
)

// ResultError turns a failed result into an error for the CLI exit status.
type ResultError struct {
	Result domain.Result
}

func (e *ResultError) Error() string {
	if e.Result.Target != "" {
		return fmt.Sprintf("%s %s -> %s failed: %v", e.Result.Op, e.Result.Path, e.Result.Target, e.Result.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Result.Op, e.Result.Path, e.Result.Err)
}

func (e *ResultError) Unwrap() error {
	return e.Result.Err
}

// Failures collects the failed results into one error, or nil if all succeeded.
func Failures(results ...domain.Result) error {
	var errs []error
	for _, res := range results {
		if !res.OK() {
			errs = append(errs, &ResultError{Result: res})
		}
	}
	return fserrors.Join(errs...)
}
