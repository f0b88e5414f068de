package encode

import "fmt"

// UnsupportedValueError reports a value in the tree that cannot be
// represented as JSON. It is produced at serialization time.
type UnsupportedValueError struct {
	Value any
	Err   error
}

func (e *UnsupportedValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unsupported value %T: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("unsupported value %T", e.Value)
}

func (e *UnsupportedValueError) Unwrap() error {
	return e.Err
}
