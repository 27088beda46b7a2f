// Command seed loads the starter catalog into the configured database.
//
// Usage:
//
//	seed          insert the starter books that do not exist yet
//	seed -clear   delete every row first and reset the id counters
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ferdiebergado/bookstore/internal/config"
	"github.com/ferdiebergado/bookstore/internal/pkg/logging"
	"github.com/ferdiebergado/bookstore/internal/platform/db"
	"github.com/ferdiebergado/bookstore/internal/seed"
	"github.com/ferdiebergado/gopherkit/env"
)

func main() {
	wipe := flag.Bool("clear", false, "delete all data before seeding")
	cfgFile := flag.String("config", "config.json", "path to the config file")
	flag.Parse()

	if err := run(context.Background(), *cfgFile, *wipe); err != nil {
		slog.Error("Seeding failed.", "reason", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgFile string, wipe bool) error {
	if _, err := os.Stat(".env"); err == nil && os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	opts, err := config.New(cfgFile)
	if err != nil {
		return err
	}

	logging.SetupLogger(opts.App.Env, opts.App.LogLevel, os.Stdout)

	conn, err := db.NewConnection(ctx, opts.DB)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn, opts.DB.Driver); err != nil {
		return err
	}

	txMgr := db.NewSQLTxManager(conn)
	return txMgr.RunInTx(ctx, func(ctx context.Context) error {
		exec := db.ExecutorFromContext(ctx, conn)
		if wipe {
			if err := seed.Clear(ctx, exec, opts.DB.Driver); err != nil {
				return err
			}
		}

		_, err := seed.Books(ctx, exec, seed.Catalog, seed.DefaultQuantity)
		return err
	})
}
