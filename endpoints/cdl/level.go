package cdl

import (
	"net/http"

	"CDL/demonlist"
	"CDL/middlewares"
	"CDL/util"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v5"
)

type LevelDetail struct {
	demonlist.Level
	Points float64 `json:"points"`
}

// registerLevelEndpoint godoc
//
//	@Summary		Level details
//	@Description	Gives one level by its store path, including its records and the points a completion earns.
//	@Tags			cdl
//	@Param			path	path	string	true	"level store path"
//	@Schemes		http https
//	@Produce		json
//	@Success		200	{object}	LevelDetail
//	@Failure		400	{object}	util.ErrorResponse
//	@Failure		404	{object}	util.ErrorResponse
//	@Router			/cdl/levels/{path} [get]
func registerLevelEndpoint(e *echo.Group, env Env) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodGet,
		Path:   "/levels/:path",
		Middlewares: []echo.MiddlewareFunc{
			middlewares.LoadParam(middlewares.LoadData{
				"path": middlewares.LoadString(true, validation.Length(1, 128)),
			}),
		},
		Handler: func(c echo.Context) error {
			path := c.Get("path").(string)
			snapshot, err := demonlist.LoadSnapshot(c.Request().Context(), env.Store, env.ListData)
			if err != nil {
				return util.NewErrorResponse(err, "Failed to load demonlist data")
			}
			for _, slot := range snapshot.List {
				if slot.Level == nil || slot.Level.Path != path {
					continue
				}
				return c.JSON(http.StatusOK, LevelDetail{
					Level:  *slot.Level,
					Points: snapshot.Scorer.Score(slot.Level.Rank, 100, slot.Level.PercentToQualify),
				})
			}
			return util.NewNotFoundResponse(nil, "No level with that path")
		},
	})
	return err
}
