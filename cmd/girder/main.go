package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mustafashaheen1/girder/internal/cli"
	"github.com/mustafashaheen1/girder/internal/db"
	"github.com/mustafashaheen1/girder/internal/gateway"
	"github.com/mustafashaheen1/girder/internal/repository"
	"github.com/mustafashaheen1/girder/internal/schedule"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := gateway.LoadConfig()

	// A configured API URL selects the remote gateway; otherwise the
	// schedule lives in a local SQLite database.
	var gw schedule.Gateway
	if cfg.BaseURL != "" {
		var observer gateway.Observer = gateway.NoopObserver{}
		if cfg.LogCalls {
			observer = gateway.NewLogObserver(os.Stderr)
		}
		gw = gateway.NewClient(cfg, observer)
	} else {
		dbPath := os.Getenv("GIRDER_DB")
		if dbPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			dbPath = filepath.Join(home, ".girder", "girder.db")
		}
		database, err := db.OpenDB(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		gw = repository.NewLocalGateway(database)
	}

	app := &cli.App{
		Store:     schedule.NewStore(gw),
		ProjectID: os.Getenv("GIRDER_PROJECT"),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
