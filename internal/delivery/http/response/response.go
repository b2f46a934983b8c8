// Package response centralizes the JSON bodies the API emits. The shapes
// are fixed by the clients already in the field, so handlers never build
// ad-hoc maps.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the plain body most endpoints answer with.
type MessageBody struct {
	Message string `json:"message"`
}

// Message writes a plain {"message": ...} body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// LoginBody is the success body of the login endpoint.
type LoginBody struct {
	Message string `json:"message"`
	User    any    `json:"user"`
	Token   string `json:"token"`
}

// Login writes the login success body.
func Login(c echo.Context, statusCode int, message string, user any, token string) error {
	return c.JSON(statusCode, LoginBody{Message: message, User: user, Token: token})
}
