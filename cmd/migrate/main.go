package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/lenslot/LS-BookingService/internal/config"
)

// Применяет миграции из migrations/ к базе из config.toml.
// Использование: migrate [-config path] [-path dir] up|down
func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	migrationsPath := flag.String("path", "migrations", "path to migrations directory")
	flag.Parse()

	direction := flag.Arg(0)
	if direction != "up" && direction != "down" {
		fmt.Println("usage: migrate [-config path] [-path dir] up|down")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	m, err := migrate.New("file://"+*migrationsPath, "postgres://"+cfg.Database.User+":"+cfg.Database.Password+
		"@"+fmt.Sprintf("%s:%d", cfg.Database.Host, cfg.Database.Port)+"/"+cfg.Database.DBName+
		"?sslmode="+cfg.Database.SSLMode)
	if err != nil {
		fmt.Printf("Failed to initialize migrations: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("No migrations to apply")
			return
		}
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migrations applied successfully")
}
