package cdl

import (
	"net/http"

	"CDL/demonlist"
	"CDL/util"

	"github.com/labstack/echo/v5"
)

type ListEntry struct {
	Position int     `json:"position"`
	Path     string  `json:"path,omitempty"`
	Name     string  `json:"name,omitempty"`
	Points   float64 `json:"points,omitempty"`
	Legacy   bool    `json:"legacy,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// registerLevelsEndpoint godoc
//
//	@Summary		Full simple list
//	@Description	Gives every placed level ordered by position with its completion points.
//	@Description	Slots whose level document failed to load keep their position and carry an error key instead.
//	@Tags			cdl
//	@Schemes		http https
//	@Produce		json
//	@Success		200	{object}	[]ListEntry
//	@Failure		400	{object}	util.ErrorResponse
//	@Router			/cdl/levels [get]
func registerLevelsEndpoint(e *echo.Group, env Env) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodGet,
		Path:   "/levels",
		Handler: func(c echo.Context) error {
			snapshot, err := demonlist.LoadSnapshot(c.Request().Context(), env.Store, env.ListData)
			if err != nil {
				return util.NewErrorResponse(err, "Failed to load demonlist data")
			}
			list := make([]ListEntry, 0, len(snapshot.List))
			for i, slot := range snapshot.List {
				if slot.Err != "" {
					list = append(list, ListEntry{Position: i + 1, Error: slot.Err})
					continue
				}
				level := slot.Level
				list = append(list, ListEntry{
					Position: level.Rank,
					Path:     level.Path,
					Name:     level.Name,
					Points:   snapshot.Scorer.Score(level.Rank, 100, level.PercentToQualify),
					Legacy:   level.Legacy,
				})
			}
			return c.JSON(http.StatusOK, list)
		},
	})
	return err
}
