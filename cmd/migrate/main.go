package main

import (
	"context"
	"flag"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-insights-api/infrastructure/migration"
	"github.com/vfg2006/inventory-insights-api/internal/config"
)

func main() {
	configureLogger()

	command := flag.String("command", "up", "Migration command: up, down or status")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Error loading the application configuration")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}
	defer conn.Close()

	switch *command {
	case "up":
		if err := migration.Up(conn.DB); err != nil {
			logrus.WithError(err).Fatal("Error applying migrations")
		}
		logrus.Info("Migrations applied")
	case "down":
		if err := migration.Down(conn.DB); err != nil {
			logrus.WithError(err).Fatal("Error rolling back the last migration")
		}
		logrus.Info("Migration rolled back")
	case "status":
		if err := migration.Status(conn.DB); err != nil {
			logrus.WithError(err).Fatal("Error reading migration status")
		}
	default:
		logrus.Fatalf("Unknown command: %s. Accepted values: up, down, status", *command)
	}
}

// configureLogger sets the log format and behavior
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
