package cdl

import (
	"net/http"

	"CDL/demonlist"
	"CDL/util"

	"github.com/labstack/echo/v5"
)

// registerPackEndpoint godoc
//
//	@Summary		Cdl packs
//	@Description	Gives a list of all packs with their computed rewards. Member levels are ordered by rank.
//	@Description	A pack that is disqualified from granting points carries a warning instead of a reward.
//	@Tags			cdl
//	@Schemes		http https
//	@Produce		json
//	@Success		200	{object}	[]demonlist.Pack
//	@Failure		400	{object}	util.ErrorResponse
//	@Router			/cdl/packs [get]
func registerPackEndpoint(e *echo.Group, env Env) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodGet,
		Path:   "/packs",
		Handler: func(c echo.Context) error {
			snapshot, err := demonlist.LoadSnapshot(c.Request().Context(), env.Store, env.ListData)
			if err != nil {
				return util.NewErrorResponse(err, "Failed to load demonlist data")
			}
			if !snapshot.Packs.Available {
				return c.JSON(http.StatusOK, []demonlist.Pack{})
			}
			return c.JSON(http.StatusOK, snapshot.Packs.Packs)
		},
	})
	return err
}
