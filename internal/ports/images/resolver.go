package images

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnavailable = errors.New("image unavailable")

// Cause distingue el motivo de un ErrUnavailable.
// La UI muestra el mismo aviso para todas; queda para logs y para la API.
type Cause string

const (
	CauseNotFound Cause = "not_found"
	CauseNetwork  Cause = "network"
	CauseTimeout  Cause = "timeout"
	CauseDecode   Cause = "decode"
)

// UnavailableError envuelve cualquier falla al abrir/descargar/decodificar una imagen.
type UnavailableError struct {
	Ref   string
	Cause Cause
	Err   error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("image unavailable (%s): %s", e.Cause, e.Ref)
	}
	return fmt.Sprintf("image unavailable (%s): %s: %v", e.Cause, e.Ref, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// CauseOf extrae la Cause de err, o "" si no es un UnavailableError.
func CauseOf(err error) Cause {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return ue.Cause
	}
	return ""
}

// Image es una imagen ya decodificada al menos una vez (sabemos que es mostrable).
type Image struct {
	Ref         string
	Format      string // png, jpeg, gif
	ContentType string
	Width       int
	Height      int
	Data        []byte
}

// Resolver abre una referencia (path local o URL) y devuelve la imagen.
// Toda falla se reporta como *UnavailableError.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (Image, error)
}
