package models

import "fmt"

// DataValidationError reports input that cannot be deserialized into a
// record: a missing required field, a wrong-typed value, or a body that is
// not a mapping at all.
type DataValidationError struct {
	Message string
}

func (e *DataValidationError) Error() string { return e.Message }

func NewDataValidationError(format string, args ...any) *DataValidationError {
	return &DataValidationError{Message: fmt.Sprintf(format, args...)}
}

func stringField(fields map[string]any, kind, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", NewDataValidationError("invalid %s: missing %s", kind, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", NewDataValidationError("invalid %s: %s must be a string", kind, key)
	}
	return s, nil
}
