package cdl

import (
	"net/http"
	"strings"

	"CDL/demonlist"
	"CDL/middlewares"
	"CDL/util"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v5"
	"modernc.org/mathutil"
)

type Leaderboard struct {
	List   []RankedEntry `json:"list"`
	Page   int           `json:"page"`
	Pages  int           `json:"pages"`
	Errors []string      `json:"errors,omitempty"`
}

type RankedEntry struct {
	Rank int `json:"rank"`
	demonlist.UserScoreEntry
}

// registerLeaderboardEndpoint godoc
//
//	@Summary		Cdl leaderboard
//	@Description	Gives the leaderboard as a paged list ordered by total points.
//	@Description	Errors lists the levels that could not be loaded, meaning the totals may be incomplete.
//	@Tags			cdl
//	@Param			page		query	int		false	"select page"	default(1)	minimum(1)
//	@Param			per_page	query	int		false	"number of results per page"	default(40)	minimum(1)	maximum(200)
//	@Param			name_filter	query	string	false	"filters names to only contain the given substring"
//	@Schemes		http https
//	@Produce		json
//	@Success		200	{object}	Leaderboard
//	@Failure		400	{object}	util.ErrorResponse
//	@Router			/cdl/leaderboard [get]
func registerLeaderboardEndpoint(e *echo.Group, env Env) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodGet,
		Path:   "/leaderboard",
		Middlewares: []echo.MiddlewareFunc{
			middlewares.LoadParam(middlewares.LoadData{
				"page":        middlewares.AddDefault(1, middlewares.LoadInt(false, validation.Min(1))),
				"per_page":    middlewares.AddDefault(40, middlewares.LoadInt(false, validation.Min(1), validation.Max(200))),
				"name_filter": middlewares.LoadString(false),
			}),
		},
		Handler: func(c echo.Context) error {
			page := c.Get("page").(int)
			perPage := c.Get("per_page").(int)
			snapshot, err := demonlist.LoadSnapshot(c.Request().Context(), env.Store, env.ListData)
			if err != nil {
				return util.NewErrorResponse(err, "Failed to load demonlist data")
			}
			entries, errs := snapshot.Leaderboard()
			ranked := make([]RankedEntry, 0, len(entries))
			for i, entry := range entries {
				if c.Get("name_filter") != nil &&
					!strings.Contains(strings.ToLower(entry.User), strings.ToLower(c.Get("name_filter").(string))) {
					continue
				}
				ranked = append(ranked, RankedEntry{Rank: i + 1, UserScoreEntry: entry})
			}
			result := Leaderboard{
				Page:   page,
				Pages:  mathutil.Max((len(ranked)+perPage-1)/perPage, 1),
				Errors: errs,
			}
			offset := mathutil.Min((page-1)*perPage, len(ranked))
			result.List = ranked[offset:mathutil.Min(offset+perPage, len(ranked))]
			return c.JSON(http.StatusOK, result)
		},
	})
	return err
}
