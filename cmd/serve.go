package cmd

import (
	"fmt"
	"net/http"
	"time"

	"CDL/demonlist"
	"CDL/endpoints/cdl"

	"github.com/labstack/echo/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CDL API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		listData := demonlist.Cdl()
		if formula := viper.GetString("formula"); formula != "" {
			listData.PointFormula = formula
		}

		var store demonlist.Store
		switch {
		case viper.GetString("data-dir") != "":
			store = demonlist.NewFileStore(viper.GetString("data-dir"))
		case viper.GetString("data-url") != "":
			store = demonlist.NewHTTPStore(viper.GetString("data-url"))
		default:
			return fmt.Errorf("either data-dir or data-url must be set")
		}

		e := echo.New()
		if err := cdl.RegisterEndpoints(e, cdl.Env{Store: store, ListData: listData}); err != nil {
			return err
		}

		listen := viper.GetString("listen")
		logrus.WithField("addr", listen).Info("Starting CDL API server")
		server := &http.Server{
			Addr:              listen,
			Handler:           e,
			ReadHeaderTimeout: 10 * time.Second,
		}
		return server.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", ":8090", "HTTP listen address")
	serveCmd.Flags().String("data-url", "", "Base URL of the static data host (fetches {url}/{key}.json)")
	serveCmd.Flags().String("data-dir", "", "Local directory holding the list data files")
	serveCmd.Flags().String("formula", "", "Override the point formula, an expression over x (the list position)")
	_ = viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	_ = viper.BindPFlag("data-url", serveCmd.Flags().Lookup("data-url"))
	_ = viper.BindPFlag("data-dir", serveCmd.Flags().Lookup("data-dir"))
	_ = viper.BindPFlag("formula", serveCmd.Flags().Lookup("formula"))
}
