package selx

import (
	"errors"
	"fmt"
)

// ErrUnknownIdentity reports a routed message naming an identity with no live
// instance. The registry logs and drops such messages; the sentinel exists for
// hosts that want to detect the condition explicitly.
var ErrUnknownIdentity = errors.New("selx: unknown component identity")

// InvalidOptionShapeError reports a malformed entry in a raw options batch.
// Normalization is all-or-nothing: the whole batch is rejected and the
// previous (last valid) option list stays in place.
type InvalidOptionShapeError struct {
	Index int    // position of the offending entry within the batch
	Shape string // description of what was found instead of a valid shape
}

func (e *InvalidOptionShapeError) Error() string {
	return fmt.Sprintf("selx: invalid option shape at index %d: %s", e.Index, e.Shape)
}

// ConfigurationError reports an invalid mount configuration. Mounting fails
// entirely; there is no degraded mode.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("selx: invalid config field %s: %s", e.Field, e.Reason)
}
