package http

import (
	"errors"

	"github.com/caguayo/inventario-api/internal/application/dto"
	"github.com/caguayo/inventario-api/internal/domain"
	"github.com/caguayo/inventario-api/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

const msgIntegridad = "verifique los datos relacionados"

// requestError error de entrada detectado antes de llegar al caso de uso.
type requestError struct {
	code    string
	message string
	details any
}

func (e *requestError) Error() string { return e.message }

func badRequest(code, message string) error {
	return &requestError{code: code, message: message}
}

// ErrorHandler traduce los errores devueltos por los handlers a respuestas JSON:
//   - entrada inválida / regla de negocio -> 400 con el mensaje concreto
//   - violación de integridad             -> 400 "verifique los datos relacionados"
//   - recurso inexistente                 -> 404
//   - resto                               -> 500, registrado con el request id
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			reqErr *requestError
			valErr *domain.ValidationError
			fbErr  *fiber.Error
		)
		switch {
		case errors.As(err, &reqErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: reqErr.code, Message: reqErr.message, Details: reqErr.details,
			})
		case errors.As(err, &valErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: valErr.Message})
		case errors.Is(err, domain.ErrIntegrity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INTEGRITY", Message: msgIntegridad})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.As(err, &fbErr):
			return c.Status(fbErr.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fbErr.Message})
		}

		log.Error().
			Err(err).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "error interno del servidor",
			Details: err.Error(),
		})
	}
}
