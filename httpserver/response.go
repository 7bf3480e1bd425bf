package httpserver

import (
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ReviewersResponse struct {
	Users []string `json:"users"`
}

func RespondSuccess(c echo.Context, status int, result interface{}) error {
	return c.JSON(status, result)
}

func RespondError(c echo.Context, status int, detail string) error {
	if c.Request().Method == "HEAD" {
		return c.NoContent(status)
	}
	return c.JSON(status, ErrorResponse{Detail: detail})
}
