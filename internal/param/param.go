// Where: cli/internal/param/param.go
// What: Parameter declarations, records, and type coercion.
// Why: Keep the supported CloudFormation parameter types a closed, typed set.
package param

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Type tags the coercion applied to a collected raw value.
type Type string

// The supported CloudFormation parameter types.
const (
	TypeString             Type = "String"
	TypeNumber             Type = "Number"
	TypeCommaDelimitedList Type = "CommaDelimitedList"
)

// ErrUnsupportedType reports a declaration whose type tag has no coercion.
var ErrUnsupportedType = errors.New("unsupported parameter type")

// CoercionError reports a raw value that cannot be converted to its declared type.
type CoercionError struct {
	Name string
	Raw  string
	Type Type
	Err  error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("parameter %q: %q is not a valid %s", e.Name, e.Raw, e.Type)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// Declaration is one named entry of the Parameters section. It is immutable
// once parsed; the operator-supplied value lives in a Record.
type Declaration struct {
	Name        string
	Type        Type
	Description string
}

// Record pairs a declaration with the raw value supplied by the operator.
type Record struct {
	Declaration Declaration
	Raw         string
}

// Value coerces the raw value per the declared type. Coercion runs at read
// time, never during collection, so an invalid value only fails once the
// summary or the output file needs it.
func (r Record) Value() (any, error) {
	switch r.Declaration.Type {
	case TypeString:
		return r.Raw, nil
	case TypeNumber:
		number, err := strconv.ParseFloat(r.Raw, 64)
		if err != nil {
			return nil, &CoercionError{Name: r.Declaration.Name, Raw: r.Raw, Type: TypeNumber, Err: err}
		}
		return number, nil
	case TypeCommaDelimitedList:
		return strings.Split(r.Raw, ","), nil
	default:
		return nil, fmt.Errorf("parameter %q: %w: %s", r.Declaration.Name, ErrUnsupportedType, r.Declaration.Type)
	}
}
