package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/andyxwarren/factory-architect-sub002/internal/config"
	"github.com/andyxwarren/factory-architect-sub002/internal/engine"
	"github.com/andyxwarren/factory-architect-sub002/internal/format"
	"github.com/andyxwarren/factory-architect-sub002/internal/httpapi"
	"github.com/andyxwarren/factory-architect-sub002/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the question generation HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTPAddr = addr
		}

		dbPath := cfg.DBPath
		if dbPath == "" {
			var err error
			dbPath, err = resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		srv := httpapi.NewServer(cfg, engine.New(format.Deps{}), st)
		log.Printf("factory-architect listening on %s (db %s)", cfg.HTTPAddr, dbPath)
		return http.ListenAndServe(cfg.HTTPAddr, srv.Router(cfg.CORSOrigins))
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides FACTORY_HTTP_ADDR env var)")
}
