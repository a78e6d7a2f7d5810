package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/vncsmyrnk/mealpoll/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/mealpoll/internal/config"
)

func main() {
	var (
		action string
		steps  int
	)

	flag.StringVar(&action, "action", "up", "Migration action: up, down, force, version")
	flag.IntVar(&steps, "steps", 0, "Number of steps for up/down, or the version for force")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dialect, err := sqlstore.ParseDialect(cfg.Database.Driver)
	if err != nil {
		log.Fatal(err)
	}

	m, err := sqlstore.NewMigrator(dialect, cfg.Database.URL)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	switch action {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	case "force":
		err = m.Force(steps)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("No migrations applied")
			return
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Version: %d, Dirty: %v\n", version, dirty)
		return
	default:
		log.Fatalf("unknown action: %s", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}

	fmt.Printf("Migration %s executed successfully.\n", action)
}
