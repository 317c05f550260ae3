package orders

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidForm    = errors.New("invalid form")
	ErrNoSelection    = errors.New("no service selected")
	ErrUnknownService = errors.New("unknown service")
	ErrNoOrder        = errors.New("no order to send")
	ErrUnknownField   = errors.New("unknown field")
)

// ValidationError trae las anotaciones de todos los campos inválidos.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return ErrInvalidForm.Error() + ": " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidForm }
