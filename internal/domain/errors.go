package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrIntegrity    = errors.New("verifique los datos relacionados")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// ValidationError regla de negocio violada; el mensaje se devuelve tal cual al cliente.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite comparar contra ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError construye un ValidationError con formato.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type notFoundError struct{ msg string }

func (e *notFoundError) Error() string        { return e.msg }
func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound devuelve un error con el mensaje indicado ("venta no encontrada") que cumple
// errors.Is(err, ErrNotFound).
func NotFound(msg string) error {
	return &notFoundError{msg: msg}
}
