package cli

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pbvote/cstv/internal/applog"
	"github.com/pbvote/cstv/internal/server"
	"github.com/pbvote/cstv/internal/store"
)

var serveFlags struct {
	Addr string
	DSN  string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP/websocket election API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.Addr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveFlags.DSN, "database-url", "", "Postgres DSN for run persistence (overrides config; omit to run without a store)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := applog.For("cli")

	addr := serveFlags.Addr
	dsn := serveFlags.DSN
	if loadedConfig != nil {
		if addr == "" {
			addr = loadedConfig.Server.Addr
		}
		if dsn == "" {
			dsn = loadedConfig.Database.URL
		}
	}
	if addr == "" {
		addr = ":8080"
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var st *store.Store
	if dsn != "" {
		var err error
		st, err = store.Connect(ctx, dsn)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.InitSchema(ctx); err != nil {
			return err
		}
	}

	router, _ := server.NewRouter(st)
	log.Info("listening", "addr", addr, "storeEnabled", st != nil)
	return http.ListenAndServe(addr, router)
}
