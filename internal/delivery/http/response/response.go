// Package response defines the wire format shared by every endpoint.
package response

import (
	"github.com/labstack/echo/v4"
)

// Body is the unified API response envelope. Every endpoint answers with ok
// and message; the remaining fields appear only on the operations that use
// them, so they are dropped from the JSON when empty.
type Body struct {
	OK          bool   `json:"ok"`
	Message     string `json:"message"`
	Tk          string `json:"tk,omitempty"`
	Information any    `json:"information,omitempty"`
	BottlesWeek any    `json:"bottles_week,omitempty"`
}

// Token answers with a freshly signed session token.
func Token(c echo.Context, statusCode int, message, token string) error {
	return c.JSON(statusCode, Body{OK: true, Message: message, Tk: token})
}

// Information answers with an information payload.
func Information(c echo.Context, statusCode int, message string, information any) error {
	return c.JSON(statusCode, Body{OK: true, Message: message, Information: information})
}

// Profile answers with account information plus the current week's bottle
// counts. bottlesWeek may be nil when no bottles were logged this week.
func Profile(c echo.Context, statusCode int, message string, information, bottlesWeek any) error {
	return c.JSON(statusCode, Body{OK: true, Message: message, Information: information, BottlesWeek: bottlesWeek})
}

// Fail answers with a failure envelope carrying only the message.
func Fail(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Body{OK: false, Message: message})
}
