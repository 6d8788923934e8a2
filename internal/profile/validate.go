package profile

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field.Label(), e.Message)
}

// Validate checks a profile before submission. Required fields must be
// non-blank and enumerated fields must hold one of their option values.
// All failures are returned joined.
func Validate(p UserProfile) error {
	var errs []error
	for _, f := range Fields() {
		v, _ := p.Value(f)
		if strings.TrimSpace(v) == "" {
			if f.Required() {
				errs = append(errs, &FieldError{Field: f, Message: "is required"})
			}
			continue
		}
		if OptionsFor(f) != nil && !isOption(f, v) {
			errs = append(errs, &FieldError{Field: f, Message: fmt.Sprintf("%q is not a valid option", v)})
		}
	}
	return errors.Join(errs...)
}

// FieldErrors unpacks the per-field errors from a Validate result.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var out []*FieldError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			var fe *FieldError
			if errors.As(e, &fe) {
				out = append(out, fe)
			}
		}
		return out
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		out = append(out, fe)
	}
	return out
}
