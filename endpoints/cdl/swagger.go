package cdl

import (
	"net/http"

	_ "CDL/docs"

	echoSwagger "github.com/Simolater/echo-swagger"
	"github.com/labstack/echo/v5"
)

// registerSwaggerEndpoint serves the generated API documentation.
func registerSwaggerEndpoint(e *echo.Group, _ Env) error {
	_, err := e.AddRoute(echo.Route{
		Method:  http.MethodGet,
		Path:    "/swagger/*",
		Handler: echoSwagger.WrapHandler,
	})
	return err
}
