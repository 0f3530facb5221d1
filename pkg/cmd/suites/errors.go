package suites

import (
	"fmt"
	"strings"
)

// ErrSuitesFailed is returned when one or more selected suite groups
// fail, so callers can distinguish suite failures from usage errors.
type ErrSuitesFailed struct {
	Groups []string
}

// Error implements the error interface.
func (e ErrSuitesFailed) Error() string {
	return fmt.Sprintf("suite group(s) failed: %s", strings.Join(e.Groups, ", "))
}

// Is enables errors.Is checks without comparing group lists.
func (e ErrSuitesFailed) Is(target error) bool {
	_, ok := target.(ErrSuitesFailed)
	return ok
}
