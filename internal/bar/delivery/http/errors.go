package http

import (
	"errors"
	"net/http"

	"autonomous-barman/internal/bar"
	pkgErrors "autonomous-barman/pkg/errors"
)

const msgChatFailed = "Error procesando el mensaje"

var (
	errMessageRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "El mensaje es requerido")
	errLLMUnavailable  = pkgErrors.NewHTTPError(http.StatusBadGateway, "El asistente no está disponible, inténtalo de nuevo")
	errChatFailed      = pkgErrors.NewHTTPError(http.StatusInternalServerError, msgChatFailed)
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors never leak their text to the client.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, bar.ErrEmptyMessage):
		return errMessageRequired
	case errors.Is(err, bar.ErrLLMUnavailable):
		return errLLMUnavailable
	default:
		return errChatFailed
	}
}
