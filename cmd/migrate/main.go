package main

import (
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/ordering"
	"github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/config"
	"github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/logger"
	"github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Creates or updates the schema for all domain entities. The unique
// indexes this installs back the code, name and email dedup guarantees.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(&cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	log.Info("Running migrations", zap.String("database", cfg.Database.DBName))

	if err := db.DB.AutoMigrate(
		&catalog.Company{},
		&catalog.Category{},
		&catalog.Product{},
		&catalog.Price{},
		&ordering.Customer{},
		&ordering.Order{},
		&ordering.OrderItem{},
	); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migrations completed")
}
