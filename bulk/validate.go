package bulk

// ValidationError indicates a batch item is missing a required field. Only
// the first missing field of an item is reported.
type ValidationError struct {
	Field string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// ValidateRequired checks that every required field is set in v, in the
// given order, and returns a ValidationError for the first one that is
// missing. A field is missing when its key is absent or its value is nil;
// empty strings and zero values are considered set.
func ValidateRequired(v Values, required []string) error {
	for _, field := range required {
		if val, ok := v[field]; !ok || val == nil {
			return &ValidationError{Field: field}
		}
	}
	return nil
}
