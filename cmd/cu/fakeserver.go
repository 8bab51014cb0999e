package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/clickup-go/clickup/internal/fakeservice"
	"github.com/clickup-go/clickup/internal/server"
)

var fakeServerCmd = &cobra.Command{
	Use:    "fake-server",
	Short:  "Serve an in-memory ClickUp API for local testing",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		logger, err := newLogger(true)
		if err != nil {
			return err
		}
		defer logger.Sync()
		log := logger.Sugar()

		svc := fakeservice.NewDemo(fakeservice.WithLogger(log))
		srv := server.New(addr, svc.Handler(), log)

		creds := fakeservice.DemoCredentials
		fmt.Fprintf(cmd.OutOrStdout(), "Demo credentials: email=%s password=%s api_key=%s\n",
			creds.Email, creds.Password, creds.APIKey)

		if err := srv.ListenAndServe(cmd.Context()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fakeServerCmd)
	fakeServerCmd.Flags().String("addr", server.DefaultAddress, "Listen address")
}
