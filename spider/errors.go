package spider

import "fmt"

// ConfigurationError reports an invalid drawing configuration:
// an unknown body plan token, an unknown background or
// inconsistent dimensions. It is always fatal.
type ConfigurationError struct {
	Field  string // the offending setting
	Value  interface{}
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("spider: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}
