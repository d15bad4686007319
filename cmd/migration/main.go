package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/migration"
	"flag"
	"log"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration instead of applying pending ones")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer func() { _ = zapLogger.Sync() }()

	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	if *down {
		n, err := migrate.ExecMax(db, "postgres", migration.Source(), migrate.Down, 1)
		if err != nil {
			zapLogger.Fatal("Error rolling back migration", zap.Error(err))
		}
		log.Printf("Rolled back %d migration(s)", n)
		return
	}

	n, err := migration.Run(db, zapLogger, migrate.Up)
	if err != nil {
		zapLogger.Fatal("Error executing migration", zap.Error(err))
	}
	log.Printf("Applied %d migration(s)", n)
}
