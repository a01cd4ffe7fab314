package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("dataset not found")
	ErrSchemaInvalid = errors.New("dataset schema invalid")
)

// NotFoundError: la referencia no resuelve a un archivo/tabla legible.
type NotFoundError struct {
	Ref string
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("dataset not found: %s", e.Ref)
	}
	return fmt.Sprintf("dataset not found: %s: %v", e.Ref, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// SchemaError: faltan columnas requeridas.
type SchemaError struct {
	Ref     string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset schema invalid: %s: missing columns: %s", e.Ref, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchemaInvalid }

// NotFound es un helper para adapters.
func NotFound(ref string, err error) error {
	return &NotFoundError{Ref: ref, Err: err}
}
