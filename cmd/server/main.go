package main

import (
	"fmt"
	"os"

	"ychet/internal/config"
	"ychet/internal/database"
	"ychet/internal/handlers"
	"ychet/internal/server"
	"ychet/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// bootstrap подключается к БД, создаёт схему и при необходимости заливает демо-данные.
func bootstrap(cfg *config.Config, log *logrus.Logger, seed bool) (*gorm.DB, error) {
	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, cfg); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	log.Info("database schema is up to date")

	if seed {
		if err := database.Seed(db, log); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return db, nil
}

func serve(cfg *config.Config, log *logrus.Logger) error {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := bootstrap(cfg, log, true)
	if err != nil {
		return err
	}
	defer database.Close(db)

	h := handlers.New(store.New(db), log)
	r, err := server.NewRouter(cfg, h, log)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.WithField("addr", addr).Info("starting server")
	return r.Run(addr)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ychet",
		Short:         "Учёт клиентов и заказов",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cfg, newLogger(cfg))
		},
	}

	var seed bool
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Создать схему БД и демо-данные без запуска сервера",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := bootstrap(cfg, newLogger(cfg), seed)
			if err != nil {
				return err
			}
			return database.Close(db)
		},
	}
	migrateCmd.Flags().BoolVar(&seed, "seed", true, "заполнить пустую базу демо-клиентами и заказами")

	root.AddCommand(migrateCmd)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
