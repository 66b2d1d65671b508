package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mohammadpnp/contact-book/internal/domain/failure"
)

type paging struct {
	CurrentPage int64 `json:"current_page"`
	TotalPage   int64 `json:"total_page"`
	Size        int64 `json:"size"`
}

type webResponse struct {
	StatusCode int     `json:"statusCode"`
	Message    string  `json:"message"`
	Data       any     `json:"data,omitempty"`
	Errors     string  `json:"errors,omitempty"`
	Paging     *paging `json:"paging,omitempty"`
}

func writeData(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, webResponse{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// writeFailure is the single place failure kinds turn into HTTP status
// codes. Anything unclassified is reported as 500 with a fixed message; its
// text only appears in the errors field.
func writeFailure(c echo.Context, err error) error {
	f := failure.FromError(err)
	status := statusFor(f.Kind)

	return c.JSON(status, webResponse{
		StatusCode: status,
		Message:    f.Message,
		Errors:     f.Detail,
	})
}

func statusFor(kind failure.Kind) int {
	switch kind {
	case failure.Unauthorized:
		return http.StatusUnauthorized
	case failure.Validation:
		return http.StatusBadRequest
	case failure.NotFound:
		return http.StatusNotFound
	case failure.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
