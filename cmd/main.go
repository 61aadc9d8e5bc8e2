package main

import (
	"context"
	"os"
	"time"

	"github.com/lshigami/studyaid/config"
	"github.com/lshigami/studyaid/database"
	"github.com/lshigami/studyaid/internal/logger"
	"github.com/lshigami/studyaid/internal/model"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

// @title StudyAid API
// @version 1.0
// @description AI-generated quizzes and study notes from textbook chapters, with scoring, saved content and performance history.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:          "studyaid",
		Short:        "StudyAid API server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.NewConfig(); err != nil {
				return err
			}
			logger.Init(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(appOptions(cfg))
			if err := app.Start(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("Failed to start application")
				return err
			}

			<-app.Done()
			log.Info().Msg("Application shutting down gracefully...")
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return app.Stop(stopCtx)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.NewDatabase(cfg)
			if err != nil {
				log.Error().Err(err).Msg("Failed to connect to database")
				return err
			}
			return AutoMigrateDB(db)
		},
	})

	return root
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(model.Models()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
