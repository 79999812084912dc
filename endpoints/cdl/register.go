package cdl

import (
	"CDL/demonlist"
	"CDL/middlewares"

	"github.com/labstack/echo/v5"
)

const pathPrefix = "/api/cdl"

// Env bundles what every endpoint needs: the document store and the list
// configuration. Each request runs its own fetch-and-compute cycle against
// the store, there is no shared cache between requests.
type Env struct {
	Store    demonlist.Store
	ListData demonlist.ListData
}

// RegisterEndpoints registers all routes that are under pathPrefix
func RegisterEndpoints(e *echo.Echo, env Env) error {
	group := e.Group(pathPrefix, middlewares.RequestLogger())
	for _, registerFunc := range []func(*echo.Group, Env) error{
		registerLevelsEndpoint,
		registerLevelEndpoint,
		registerLeaderboardEndpoint,
		registerPackEndpoint,
		registerEditorsEndpoint,
		registerSwaggerEndpoint,
	} {
		if err := registerFunc(group, env); err != nil {
			return err
		}
	}
	return nil
}
