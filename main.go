package main

import (
	"context"
	"log"

	"wedding-planner/cmd"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/wire"
	"wedding-planner/pkg/database"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.Log, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(context.Background(), config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
