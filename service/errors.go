package service

import (
	"errors"
	"fmt"
)

// ErrInvalidScenario is returned for inputs no calculation can be made from:
// a non-positive loan amount or term, a negative rate, and similar.
var ErrInvalidScenario = errors.New("invalid scenario")

func invalidScenario(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidScenario, fmt.Sprintf(format, args...))
}
