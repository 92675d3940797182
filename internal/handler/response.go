// Package handler contains the HTTP handlers for the public API and the
// admin back office. Every endpoint responds with the same envelope:
// {"success": bool, "message": string, "data": ...}.
package handler

import (
	"github.com/labstack/echo/v4"
)

func jsonOK(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, echo.Map{"success": true, "message": message, "data": data})
}

func jsonErr(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": false, "message": message})
}

// currentUserID reads the authenticated user injected by the JWT
// middleware. Zero means the route was not wrapped by it.
func currentUserID(c echo.Context) uint64 {
	id, _ := c.Get("user_id").(uint64)
	return id
}
