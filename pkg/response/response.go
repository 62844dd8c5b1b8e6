package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/thanha17/online-shop/pkg/errs"
)

// Envelope is the uniform response shape: EC is 0 on success and non-zero on
// failure, EM carries a human readable message and DT the payload.
type Envelope struct {
	EC int         `json:"EC"`
	EM string      `json:"EM"`
	DT interface{} `json:"DT"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{
		EC: 0,
		EM: message,
		DT: data,
	})
}

func WriteCreatedResponse(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{
		EC: 0,
		EM: message,
		DT: data,
	})
}

// WriteErrorResponse translates a sentinel error into the envelope. Unexpected
// errors are reported with an opaque message; the cause is logged server-side.
func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)

	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		log.Error().Err(err).Str("endpoint", c.Path()).Msg("unexpected error")
		message = errs.ErrInternalServer.Error()
	}

	return c.JSON(statusCode, Envelope{
		EC: 1,
		EM: message,
		DT: nil,
	})
}
