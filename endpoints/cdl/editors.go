package cdl

import (
	"net/http"

	"CDL/demonlist"

	"github.com/labstack/echo/v5"
	"github.com/sirupsen/logrus"
)

// registerEditorsEndpoint godoc
//
//	@Summary		List editors
//	@Description	Gives the staff roster. The document is optional, a missing roster yields an empty list.
//	@Tags			cdl
//	@Schemes		http https
//	@Produce		json
//	@Success		200	{object}	[]demonlist.Editor
//	@Router			/cdl/editors [get]
func registerEditorsEndpoint(e *echo.Group, env Env) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodGet,
		Path:   "/editors",
		Handler: func(c echo.Context) error {
			editors, err := demonlist.LoadEditors(c.Request().Context(), env.Store, env.ListData)
			if err != nil {
				logrus.WithError(err).Warn("Editors unavailable")
				editors = []demonlist.Editor{}
			}
			return c.JSON(http.StatusOK, editors)
		},
	})
	return err
}
